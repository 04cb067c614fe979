package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Zachkp/portfolio/internal/scrollspy"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// navMessage is sent by the page: "scroll" on every scroll/resize event,
// "navigate" when a nav link is clicked and "menu" for the mobile toggle.
// Tops holds each mounted section's top relative to the viewport.
type navMessage struct {
	Type   string             `json:"type"`
	Offset float64            `json:"offset"`
	Tops   map[string]float64 `json:"tops"`
	Anchor string             `json:"anchor"`
}

// navReply is either a "state" update or a "scrollTo" command.
type navReply struct {
	Type   string           `json:"type"`
	State  *scrollspy.State `json:"state,omitempty"`
	Anchor string           `json:"anchor,omitempty"`
	Smooth bool             `json:"smooth,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// handleNavSocket runs one Navigator per connection. Messages are handled
// strictly in arrival order.
func (s *Server) handleNavSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-finished:
		}
	}()

	var writeErr error
	send := func(r navReply) {
		if writeErr == nil {
			writeErr = conn.WriteJSON(r)
		}
	}
	nav, err := scrollspy.New(s.site.Nav, scrollspy.MapMeasure(nil), scrollspy.ScrollerFunc(func(anchor string, smooth bool) {
		send(navReply{Type: "scrollTo", Anchor: anchor, Smooth: smooth})
	}))
	if err != nil {
		log.Printf("server: navigator: %v", err)
		return
	}

	sendState := func() {
		st := nav.State()
		send(navReply{Type: "state", State: &st})
	}
	sendState()

	for writeErr == nil {
		var msg navMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}
		switch msg.Type {
		case "scroll":
			// Tops are viewport-relative, so every scroll carries a fresh
			// snapshot. A missing map means no section is mounted.
			nav.SetMeasure(scrollspy.MapMeasure(msg.Tops))
			if _, changed := nav.OnScroll(msg.Offset); changed {
				sendState()
			}
		case "navigate":
			if msg.Tops != nil {
				nav.SetMeasure(scrollspy.MapMeasure(msg.Tops))
			}
			nav.Navigate(msg.Anchor)
			sendState()
		case "menu":
			nav.ToggleMenu()
			sendState()
		default:
			send(navReply{Type: "error", Error: "unknown message type " + msg.Type})
		}
	}
	log.Printf("server: websocket write: %v", writeErr)
}

type activeRequest struct {
	Previous string             `json:"previous"`
	Offset   float64            `json:"offset"`
	Tops     map[string]float64 `json:"tops" binding:"required"`
}

// handleActiveSection is the stateless form of the scroll spy for clients
// that keep their own state.
func (s *Server) handleActiveSection(c *gin.Context) {
	var req activeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active, ok := scrollspy.Select(s.site.Nav, scrollspy.MapMeasure(req.Tops), scrollspy.Threshold)
	if !ok {
		active = s.site.Nav[0].Anchor
		for _, it := range s.site.Nav {
			if it.Anchor == req.Previous {
				active = req.Previous
				break
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"active":   active,
		"scrolled": req.Offset > scrollspy.ScrolledOffset,
	})
}

package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const contactSentEvent = "contact-sent"

type contactForm struct {
	Name    string `form:"name" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,max=5000"`
}

// handleContact validates the form and pretends to send it. Nothing is
// delivered or stored.
func (s *Server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	ctx := c.Request.Context()
	sent := make(chan struct{})
	t := s.sched.AfterFunc(s.cfg.ContactDelay, func() { close(sent) })
	select {
	case <-sent:
	case <-ctx.Done():
		t.Stop()
		return
	}

	log.Printf("contact: simulated message from %s", form.Name)
	// The page clears the form on this event; error fragments leave it filled.
	c.Header("HX-Trigger", contactSentEvent)
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"title":   "Message sent!",
		"success": "Thank you for reaching out. I'll get back to you soon.",
	})
}

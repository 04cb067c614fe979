package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/theme"
)

const (
	visitorCookie = "visitor_id"
	visitorKey    = "visitor"
	visitorMaxAge = 3600 * 24 * 365
)

// visitorMiddleware gives every browser a random id so its theme can be
// remembered. No other visitor data is kept.
func visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(visitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(visitorCookie, id, visitorMaxAge, "/", "", false, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

func visitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}

func themeOrDefault(t theme.Theme) theme.Theme {
	if t == "" {
		return theme.Default
	}
	return t
}

func (s *Server) handleGetTheme(c *gin.Context) {
	th, err := s.themes.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		log.Printf("server: loading theme: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": th})
}

func (s *Server) handleToggleTheme(c *gin.Context) {
	th, err := s.themes.Toggle(c.Request.Context(), visitorID(c))
	if err != nil {
		log.Printf("server: toggling theme: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": th})
}

package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleIndex(c *gin.Context) {
	th, err := s.themes.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		log.Printf("server: loading theme: %v", err)
	}
	category := c.DefaultQuery("category", "All")
	c.HTML(http.StatusOK, "index.html", gin.H{
		"site":       s.site,
		"theme":      themeOrDefault(th),
		"active":     s.site.Nav[0].Anchor,
		"firstRole":  s.site.Roles[0],
		"categories": s.site.Categories(),
		"category":   category,
		"projects":   s.site.ProjectsIn(category),
		"year":       time.Now().Year(),
	})
}

// handleProjects returns the project grid filtered by ?category=.
func (s *Server) handleProjects(c *gin.Context) {
	category := c.DefaultQuery("category", "All")
	c.HTML(http.StatusOK, "projects.html", gin.H{
		"categories": s.site.Categories(),
		"category":   category,
		"projects":   s.site.ProjectsIn(category),
	})
}

func (s *Server) handleProjectDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid project id")
		return
	}
	p, ok := s.site.Project(id)
	if !ok {
		c.String(http.StatusNotFound, "project not found")
		return
	}
	c.HTML(http.StatusOK, "project-detail.html", gin.H{"project": p})
}

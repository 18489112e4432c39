package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AboutAuthor godoc
// @Summary      About the author
// @Tags         about
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /about/author/ [get]
func (h *Handler) AboutAuthor(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"author": "Автор проекта - Лара Павлова.",
		"github": "https://github.com/lerapraga",
	})
}

// AboutTech godoc
// @Summary      About the technology
// @Tags         about
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /about/tech/ [get]
func (h *Handler) AboutTech(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tech": "Go, gin, gorm, PostgreSQL, Redis page cache, S3 image storage.",
	})
}

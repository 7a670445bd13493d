package server

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"Omikuji/internal/logger"
)

// NewRouter wires middleware, the page and the JSON API.
func NewRouter(h *Handler, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(log.With("component", "http")))
	router.SetHTMLTemplate(template.Must(template.New("index").Parse(indexTemplate)))

	router.GET("/healthz", h.Healthz)

	// Page
	router.GET("/", h.Index)
	router.POST("/draw", h.DrawForm)
	router.POST("/clear", h.ClearForm)

	// API
	api := router.Group("/api")
	{
		api.POST("/draw", h.Draw)
		api.GET("/history", h.History)
		api.DELETE("/history", h.ClearHistory)
		api.GET("/clock", h.Clock)
		api.GET("/advice/:level", h.Advice)
	}

	return router
}

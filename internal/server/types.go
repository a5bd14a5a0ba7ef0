package server

import (
	"net/http"

	"github.com/osa911/giraffecloud-portal/internal/config"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	cfg        *config.Config
	httpServer *http.Server
}

package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/LIT-Intel/logistics-intel-sub002/internal/api"
	"github.com/LIT-Intel/logistics-intel-sub002/internal/config"
	"github.com/LIT-Intel/logistics-intel-sub002/internal/store"
)

// Server is the HTTP front of the extraction service.
type Server struct {
	router *gin.Engine
	store  *store.Store
}

// NewServer assembles the router, store and API handler.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	st, err := store.New(filepath.Join(dataDir, "litquote.db"))
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	s := &Server{
		router: gin.Default(),
		store:  st,
	}

	maxUpload := cfg.Upload.MaxSizeMB * 1024 * 1024
	handler := api.NewHandler(st, maxUpload)

	s.setupRoutes(handler)

	return s
}

func (s *Server) setupRoutes(handler *api.Handler) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	group := s.router.Group("/api")
	{
		handler.RegisterRoutes(group)
	}
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the store.
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore exposes the store for tests.
func (s *Server) GetStore() *store.Store {
	return s.store
}

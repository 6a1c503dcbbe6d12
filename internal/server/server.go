package server

import (
	"net/http"
	"os"

	"github.com/DannyahIA/profile-metrics/internal/storage"
	"github.com/gin-gonic/gin"
)

// Server is the read-only preview server over generated dashboard files.
// It serves rendered assets and echoes the JSON snapshots; nothing is
// ever written through it.
type Server struct {
	store     *storage.Store
	assetsDir string
	router    *gin.Engine
}

// AssetInfo describes one file in the assets directory
type AssetInfo struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

// New creates the server with its routes registered
func New(store *storage.Store, assetsDir string) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		store:     store,
		assetsDir: assetsDir,
		router:    router,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Static("/assets", s.assetsDir)

	api := s.router.Group("/api")
	api.GET("/status", s.handleStatus)
	api.GET("/metrics", s.handleMetrics)
	api.GET("/rankings", s.handleRankings)
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts listening on the given port
func (s *Server) Run(port string) error {
	return s.router.Run(":" + port)
}

func (s *Server) handleStatus(c *gin.Context) {
	assets := []AssetInfo{}
	entries, err := os.ReadDir(s.assetsDir)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			assets = append(assets, AssetInfo{
				Name:     entry.Name(),
				Size:     info.Size(),
				Modified: info.ModTime().UTC().Format("2006-01-02 15:04:05"),
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"assets": assets,
	})
}

func (s *Server) handleMetrics(c *gin.Context) {
	metrics, err := s.store.LoadMetrics()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "metrics not collected yet"})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func (s *Server) handleRankings(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.LoadRankings())
}

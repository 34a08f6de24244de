package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yt-dashboard/internal/config"
	"github.com/yt-dashboard/internal/models"
)

const (
	msgNotFound     = "No channel found. Please check your Channel ID."
	msgMissingInput = "Enter a Channel ID to begin."
	msgInvalidLimit = "limit must be between 1 and 50"
	msgUpstream     = "Failed to fetch data from YouTube. Please try again later."
	msgPressRefresh = "Press refresh to load channel data."
	msgFetched      = "Data fetched successfully!"
)

// Server represents the API server
type Server struct {
	router    *gin.Engine
	source    ChannelSource
	dashboard *DashboardService
	cfg       *config.Config
}

type channelQuery struct {
	ChannelID string `form:"channelId" binding:"required"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

type limitQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

type dashboardResponse struct {
	ChannelID string            `json:"channelId"`
	Fetched   bool              `json:"fetched"`
	Message   string            `json:"message"`
	Dashboard *models.Dashboard `json:"dashboard,omitempty"`
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, source ChannelSource) *Server {
	router := gin.Default()

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Pragma"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server := &Server{
		router:    router,
		source:    source,
		dashboard: NewDashboardService(source),
		cfg:       cfg,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Channel endpoints
	s.router.GET("/channel/:id", s.getChannel)
	s.router.GET("/channel/:id/top-videos", s.getTopVideos)

	// Dashboard endpoints
	s.router.GET("/dashboard", s.getDashboard)
	s.router.POST("/dashboard/refresh", s.refreshDashboard)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// getChannel handles requests to get channel by ID
func (s *Server) getChannel(c *gin.Context) {
	channelID, err := ResolveChannelID(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	channel, err := s.source.LookupChannel(c.Request.Context(), channelID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, channel)
}

// getTopVideos handles requests for a channel's most viewed uploads
func (s *Server) getTopVideos(c *gin.Context) {
	var q limitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidLimit, "kind": "invalid_input"})
		return
	}

	channelID, err := ResolveChannelID(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	channel, err := s.source.LookupChannel(c.Request.Context(), channelID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	videos, err := s.source.TopVideos(c.Request.Context(), channel.UploadsCollectionID, s.limit(q.Limit))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

// getDashboard handles the initial page load. It only queries YouTube when
// fetch on load is enabled.
func (s *Server) getDashboard(c *gin.Context) {
	var q channelQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.respondBindError(c, err)
		return
	}

	if !s.cfg.FetchOnLoad {
		c.JSON(http.StatusOK, dashboardResponse{
			ChannelID: q.ChannelID,
			Fetched:   false,
			Message:   msgPressRefresh,
		})
		return
	}

	s.serveDashboard(c, q)
}

// refreshDashboard always fetches fresh data
func (s *Server) refreshDashboard(c *gin.Context) {
	var q channelQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.respondBindError(c, err)
		return
	}

	s.serveDashboard(c, q)
}

func (s *Server) serveDashboard(c *gin.Context, q channelQuery) {
	dashboard, err := s.dashboard.Build(c.Request.Context(), q.ChannelID, s.limit(q.Limit))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboardResponse{
		ChannelID: dashboard.Channel.ID,
		Fetched:   true,
		Message:   msgFetched,
		Dashboard: dashboard,
	})
}

func (s *Server) limit(requested int) int {
	if requested > 0 {
		return requested
	}
	if s.cfg.TopVideosLimit > 0 {
		return s.cfg.TopVideosLimit
	}
	return DefaultTopVideosLimit
}

func (s *Server) respondBindError(c *gin.Context, err error) {
	log.Printf("Invalid dashboard query: %v", err)
	if c.Query("channelId") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingInput, "kind": "invalid_input"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidLimit, "kind": "invalid_input"})
}

// respondError renders one user facing message per outcome. The kind is kept
// so callers can tell categories apart.
func (s *Server) respondError(c *gin.Context, err error) {
	kind := errorKind(err)

	switch {
	case errors.Is(err, ErrChannelNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound, "kind": kind})
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": kind})
	case errors.Is(err, ErrUpstreamQuota):
		log.Printf("YouTube API quota error: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgUpstream, "kind": kind})
	default:
		log.Printf("Error fetching data from YouTube API: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": msgUpstream, "kind": kind})
	}
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}

package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/dirkit/internal/api/middleware"
	"github.com/GriffinCanCode/dirkit/internal/config"
	"github.com/GriffinCanCode/dirkit/internal/logging"
	wsProvider "github.com/GriffinCanCode/dirkit/internal/providers/workspace"
	"github.com/GriffinCanCode/dirkit/internal/service"
	"github.com/GriffinCanCode/dirkit/internal/types"
	"github.com/GriffinCanCode/dirkit/internal/workspace"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router    *gin.Engine
	registry  *service.Registry
	workspace *workspace.Workspace
	logger    *logging.Logger
	config    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing workspace server",
		zap.String("port", cfg.Server.Port),
		zap.String("root", cfg.Workspace.Root),
	)

	var ws *workspace.Workspace
	var err error
	if cfg.Workspace.Root != "" {
		ws, err = workspace.At(cfg.Workspace.Root, logger)
	} else {
		ws, err = workspace.New(logger)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace: %w", err)
	}
	logger.Info("Workspace opened", zap.String("path", ws.Path()))

	registry := service.NewRegistry()
	if err := registry.Register(wsProvider.NewProvider(ws, logger)); err != nil {
		return nil, fmt.Errorf("failed to register workspace provider: %w", err)
	}

	stats := registry.Stats()
	logger.Info("Service providers registered",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	srv := &Server{
		router:    router,
		registry:  registry,
		workspace: ws,
		logger:    logger,
		config:    cfg,
	}

	router.GET("/", srv.root)
	router.GET("/health", srv.health)
	router.GET("/services", srv.listServices)
	router.POST("/services/execute", srv.executeService)

	logger.Info("Server initialized successfully")
	return srv, nil
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close flushes buffered log entries.
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	_ = s.logger.Sync()
	return nil
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Workspace Service (Go)",
		"version": "0.1.0",
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"workspace":        gin.H{"path": s.workspace.Path()},
		"service_registry": s.registry.Stats(),
	})
}

func (s *Server) listServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": s.registry.List(category),
		"stats":    s.registry.Stats(),
	})
}

func (s *Server) executeService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := &types.Context{}
	if id := c.GetHeader("X-Request-ID"); id != "" {
		ctx.RequestID = &id
	}

	result, err := s.registry.Execute(req.ToolID, req.Params, ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

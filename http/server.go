// Package http provides the HTTP API for the question answering service.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/fwojciec/deptbrain"
)

// shutdownTimeout bounds graceful shutdown after a termination signal.
const shutdownTimeout = 5 * time.Second

// Server serves the question answering API.
type Server struct {
	config    deptbrain.Config
	catalog   *deptbrain.Catalog
	answerer  deptbrain.Answerer
	retrieval *deptbrain.Retrieval
	generator *deptbrain.Generator
	logger    *slog.Logger

	router *gin.Engine
}

// NewServer creates a Server with its routes and middleware wired up.
func NewServer(
	config deptbrain.Config,
	catalog *deptbrain.Catalog,
	answerer deptbrain.Answerer,
	retrieval *deptbrain.Retrieval,
	generator *deptbrain.Generator,
	logger *slog.Logger,
) *Server {
	s := &Server{
		config:    config,
		catalog:   catalog,
		answerer:  answerer,
		retrieval: retrieval,
		generator: generator,
		logger:    logger,
	}
	s.buildRouter()
	return s
}

func (s *Server) buildRouter() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(s.logger))

	router.GET("/health", s.handleHealth)
	router.GET("/ready", s.handleReady)

	limiter := NewClientLimiter(s.config.RateLimitRequests, s.config.RateLimitWindowSeconds)
	protected := router.Group("/", APIKeyAuth(s.config.ServiceAPIKey), RateLimit(limiter))
	protected.POST("/ingest", s.handleIngest)
	protected.POST("/query", s.handleQuery)

	s.router = router
}

// Handler returns the underlying handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on the configured address until ctx is canceled or a
// termination signal arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.logger.Info("server listening", "addr", s.config.ListenAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// QueryRequest is the POST /query payload.
type QueryRequest struct {
	Question string `json:"question" binding:"required,min=2"`
}

// IngestResponse is the POST /ingest response body.
type IngestResponse struct {
	Message    string `json:"message"`
	ChunkCount int    `json:"chunk_count"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleReady(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": gin.H{
			"data_loaded":    len(s.catalog.Faculty()) > 0,
			"rag_enabled":    s.retrieval.Available(),
			"llm_configured": s.generator.Configured(),
		},
	})
}

func (s *Server) handleIngest(c *gin.Context) {
	count, err := s.retrieval.Ingest(c.Request.Context(), s.catalog.Faculty(), s.catalog.Notes())
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, IngestResponse{Message: "Knowledge base ingested.", ChunkCount: count})
}

func (s *Server) handleQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, deptbrain.Errorf(deptbrain.EINVALID, "question is required and must be at least 2 characters"))
		return
	}
	if utf8.RuneCountInString(req.Question) > s.config.MaxQuestionChars {
		s.error(c, deptbrain.Errorf(deptbrain.EINVALID, "Question exceeds max length of %d characters.", s.config.MaxQuestionChars))
		return
	}

	answer, err := s.answerer.Answer(c.Request.Context(), req.Question)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

// error renders the error payload for err, hiding internal detail.
func (s *Server) error(c *gin.Context, err error) {
	code := deptbrain.ErrorCode(err)
	detail := deptbrain.ErrorMessage(err)
	if code == deptbrain.EINTERNAL {
		detail = "Internal server error"
	}

	status := statusFromCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", RequestID(c), "err", err)
	}

	c.AbortWithStatusJSON(status, gin.H{
		"detail":     detail,
		"request_id": RequestID(c),
	})
}

// statusFromCode maps application error codes to HTTP status codes.
func statusFromCode(code string) int {
	switch code {
	case deptbrain.EINVALID, deptbrain.EUNAVAILABLE:
		return http.StatusBadRequest
	case deptbrain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case deptbrain.ENOTFOUND:
		return http.StatusNotFound
	case deptbrain.ERATELIMIT:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Package server exposes an advisor session over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chessAdvisor/advisor"
	"chessAdvisor/render"
)

// Server serialises requests onto a single session; the engine behind it
// answers one query at a time.
type Server struct {
	mu      sync.Mutex
	session *advisor.Session
	logger  *zap.Logger
}

func New(session *advisor.Session, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{session: session, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.HealthHandler())
	v1 := r.Group("/v1")
	v1.POST("/ask", s.AskHandler())
	v1.POST("/analyze", s.AnalyzeHandler())
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// HealthHandler reports liveness and the engine in use.
func (s *Server) HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "engine": s.session.EngineName()})
	}
}

type askRequest struct {
	FEN      string `json:"fen"`
	Question string `json:"question"`
}

// AskResponse carries the structured answer and its text rendering.
type AskResponse struct {
	Raw       *advisor.Response `json:"raw"`
	Formatted string            `json:"formatted"`
}

// AskHandler answers a free-text question about a position.
func (s *Server) AskHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req askRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		s.mu.Lock()
		resp, err := s.session.Handle(req.FEN, req.Question)
		s.mu.Unlock()
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, AskResponse{Raw: resp, Formatted: render.Format(resp)})
	}
}

type analyzeRequest struct {
	FEN string `json:"fen"`
}

// AnalyzeHandler returns the goal tiers and best plan for a position.
func (s *Server) AnalyzeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req analyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		s.mu.Lock()
		analysis, err := s.session.Analyze(req.FEN)
		s.mu.Unlock()
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, analysis)
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// StatusFor maps advisor errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, advisor.ErrInvalidPosition):
		return http.StatusBadRequest
	case errors.Is(err, advisor.ErrSessionClosed):
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

// Package server exposes the execution controller over HTTP: the A2A surface
// used for agent-to-agent calls and a chat surface used by UI clients. Both
// map 1:1 onto the same executor.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/zava-ai/zava"
	"github.com/zava-ai/zava/execution"
	"github.com/zava-ai/zava/slogger"
)

// Options for creating a server.
type Options struct {
	Executor *execution.Executor
	Card     *zava.AgentCard
	Host     string
	Port     int
	Logger   slogger.Logger
}

// Server serves the A2A and chat surfaces over one executor.
type Server struct {
	executor *execution.Executor
	card     *zava.AgentCard
	host     string
	port     int
	logger   slogger.Logger
	engine   *gin.Engine
}

// New creates a server. The executor is required; the agent card is built
// from host and port when not supplied.
func New(opts Options) (*Server, error) {
	if opts.Executor == nil {
		return nil, fmt.Errorf("executor is required")
	}
	if opts.Host == "" {
		opts.Host = "0.0.0.0"
	}
	if opts.Port == 0 {
		opts.Port = 8001
	}
	if opts.Card == nil {
		opts.Card = zava.NewAgentCard(opts.Host, opts.Port)
	}
	if opts.Logger == nil {
		opts.Logger = slogger.DefaultLogger
	}
	s := &Server{
		executor: opts.Executor,
		card:     opts.Card,
		host:     opts.Host,
		port:     opts.Port,
		logger:   opts.Logger,
	}
	s.engine = s.buildEngine()
	return s, nil
}

func (s *Server) buildEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/agent-card", s.handleAgentCard)
	engine.POST("/execute", s.handleExecute)
	engine.POST("/cancel/:execution_id", s.handleCancel)
	engine.GET("/status/:execution_id", s.handleStatus)
	engine.GET("/executions", s.handleListExecutions)
	engine.GET("/health", s.handleHealth)

	engine.POST("/chat/message", s.handleChatMessage)
	engine.GET("/chat/status/:execution_id", s.handleChatStatus)
	engine.POST("/chat/cancel/:execution_id", s.handleChatCancel)
	engine.GET("/chat/executions", s.handleChatListExecutions)
	engine.GET("/chat/agent-info", s.handleChatAgentInfo)
	return engine
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.host, s.port)
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Addr(),
		Handler: s.engine,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening",
			"addr", srv.Addr,
			"agent_id", s.card.AgentID)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

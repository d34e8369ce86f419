package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"

	"github.com/emergent-grounds/guardian/moderation/classifier"
	"github.com/emergent-grounds/guardian/moderation/completion"
	"github.com/emergent-grounds/guardian/moderation/engine"
	"github.com/emergent-grounds/guardian/moderation/rescache"
)

type Server struct {
	logger *slog.Logger
	engine *engine.Engine
	echo   *echo.Echo
	httpd  *http.Server
}

type Config struct {
	Logger                    *slog.Logger
	PerspectiveAPIKey         string
	PerspectiveRateLimit      int
	OpenAIAPIKey              string
	CompletionModel           string
	ClassifierThreshold       float64
	CacheCapacity             int
	SuggestionCooldown        time.Duration
	SuggestionHealthThreshold float64
	FixedReflectionInterval   bool
}

func NewServer(config Config) (*Server, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	var cls classifier.Classifier
	if config.PerspectiveAPIKey != "" {
		cls = classifier.NewPerspectiveClient(config.PerspectiveAPIKey, config.PerspectiveRateLimit, logger)
	} else {
		logger.Info("no classifier API key configured, using local pattern matching")
		cls = &classifier.PatternClassifier{}
	}

	var gen completion.Generator
	if config.OpenAIAPIKey != "" {
		gen = completion.NewOpenAIClient(config.OpenAIAPIKey, config.CompletionModel, logger)
	} else {
		logger.Info("no completion API key configured, using static reflection pools")
	}

	cache, err := rescache.NewMemResponseCache(config.CacheCapacity)
	if err != nil {
		return nil, fmt.Errorf("initializing response cache: %w", err)
	}

	cfg := engine.DefaultConfig()
	if config.ClassifierThreshold > 0 {
		cfg.ClassifierThreshold = config.ClassifierThreshold
	}
	if config.SuggestionCooldown > 0 {
		cfg.SuggestionCooldown = config.SuggestionCooldown
	}
	if config.SuggestionHealthThreshold > 0 {
		cfg.SuggestionHealthThreshold = config.SuggestionHealthThreshold
	}
	cfg.FixedReflectionInterval = config.FixedReflectionInterval

	eng := engine.NewEngine(logger, cls, gen, cache, cfg)

	s := &Server{
		logger: logger,
		engine: eng,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))
	e.HTTPErrorHandler = s.errorHandler

	e.GET("/_health", s.HandleHealthCheck)
	e.POST("/rooms/:room/messages", s.HandleEvaluateMessage)
	e.POST("/rooms/:room/welcome", s.HandleWelcome)
	e.POST("/rooms/:room/participants/:participant/starters", s.HandleRequestStarters)
	e.POST("/rooms/:room/participants/:participant/starter-used", s.HandleStarterUsed)
	e.DELETE("/rooms/:room", s.HandleEndConversation)

	s.echo = e
	return s, nil
}

func (s *Server) RunMetrics(listen string) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(listen, nil)
}

func (s *Server) RunAPI(listen string) error {
	s.httpd = &http.Server{
		Handler:        s.echo,
		Addr:           listen,
		WriteTimeout:   30 * time.Second,
		ReadTimeout:    30 * time.Second,
		MaxHeaderBytes: 1 * (1024 * 1024),
	}

	go func() {
		s.logger.Info("starting moderation API", "bind", listen)
		if err := s.httpd.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("HTTP server shutting down unexpectedly", "err", err)
			}
		}
	}()

	quit := make(chan struct{})
	exitSignals := make(chan os.Signal, 1)
	signal.Notify(exitSignals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-exitSignals
		s.logger.Info("received OS exit signal", "signal", sig)
		if err := s.echo.Close(); err != nil {
			s.logger.Error("HTTP server shutdown error", "err", err)
		}
		close(quit)
	}()
	<-quit
	s.logger.Info("graceful shutdown complete")
	return nil
}

type GenericStatus struct {
	Daemon  string `json:"daemon"`
	Status  string `json:"status"`
	Message string `json:"msg,omitempty"`
}

func (s *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	var errorMessage string
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		errorMessage = fmt.Sprintf("%s", he.Message)
	}
	if code >= 500 {
		s.logger.Warn("guardian-http-internal-error", "err", err)
	}
	if !c.Response().Committed {
		c.JSON(code, GenericStatus{Daemon: "guardian", Status: "error", Message: errorMessage})
	}
}

func (s *Server) HandleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, GenericStatus{Daemon: "guardian", Status: "ok"})
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ramsey-B/sage/config"
	"github.com/Ramsey-B/sage/pkg/audit"
	"github.com/Ramsey-B/sage/pkg/httpclient"
	"github.com/Ramsey-B/sage/pkg/llm"
	"github.com/Ramsey-B/sage/pkg/middleware"
	"github.com/Ramsey-B/sage/pkg/persons"
	"github.com/Ramsey-B/sage/pkg/rag"
	"github.com/Ramsey-B/sage/pkg/routes/consult"
	"github.com/Ramsey-B/sage/pkg/routes/health"
	"github.com/Ramsey-B/sage/pkg/startup"
	"github.com/Ramsey-B/sage/pkg/tracing"
	"github.com/Ramsey-B/sage/pkg/tracing/exporters"
	"github.com/Ramsey-B/sage/pkg/validation"
)

func main() {
	// Load .env if present; environment variables win
	_ = godotenv.Load()

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		fmt.Printf("Failed to load config: %s\n", err)
		os.Exit(1)
	}

	zapLogger, err := newZapLogger(cfg)
	if err != nil {
		fmt.Printf("Failed to create logger: %s\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync() // nolint: errcheck

	logger := zapadapter.NewZapEctoLogger(zapLogger, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := httpclient.NewClient(httpclient.DefaultConfig(), logger)

	personsClient := persons.NewClient(persons.Config{
		URL:     cfg.PersonsServiceURL,
		Timeout: cfg.PersonsTimeout,
	}, httpClient, logger)

	llmClient := llm.NewClient(llm.Config{
		URL:         cfg.LLMAPIURL,
		APIKey:      cfg.LLMAPIKey,
		Model:       cfg.LLMModel,
		MaxTokens:   cfg.LLMMaxTokens,
		Temperature: cfg.LLMTemperature,
		Timeout:     cfg.LLMTimeout,
	}, httpClient, logger)

	auditRecorder := audit.NewRecorder(audit.Config{
		URL:     cfg.LogsServiceURL,
		Service: cfg.AppName,
		Timeout: cfg.LogsTimeout,
		Enabled: cfg.LogLLMResponses,
	}, httpClient, logger)

	ragService := rag.NewService(logger, personsClient, llmClient, auditRecorder, rag.Config{
		MaxContextPersons: cfg.MaxContextPersons,
	})

	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		logger.WithError(err).Error("Failed to create DI container")
		os.Exit(1)
	}
	if err := ectoinject.RegisterInstance[*rag.Service](container, ragService); err != nil {
		logger.WithError(err).Error("Failed to register consult service")
		os.Exit(1)
	}
	if err := ectoinject.RegisterInstance[*llm.Client](container, llmClient); err != nil {
		logger.WithError(err).Error("Failed to register completion client")
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.Error(logger)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))

	consult.Register(e)

	checker := health.NewChecker(httpClient, personsClient.URL(), llmClient.Configured(), os.Getenv("APP_VERSION"))
	checker.RegisterRoutes(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		ReadTimeout:       time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	boot := startup.NewStartup(logger, cfg.StartupMaxAttempts)

	if cfg.TracingEnabled {
		var shutdownTracing func(context.Context) error
		boot.AddDependency(&startup.Func{
			Name: "tracing",
			StartFn: func(ctx context.Context) error {
				var err error
				shutdownTracing, err = tracing.Init(ctx, cfg.AppName, exporters.OTLPConfig{
					Endpoint: cfg.TracingEndpoint,
					Protocol: cfg.TracingProtocol,
					Insecure: cfg.TracingInsecure,
				})
				return err
			},
			StopFn: func(ctx context.Context) error {
				if shutdownTracing == nil {
					return nil
				}
				return shutdownTracing(ctx)
			},
		})
	}

	// Audit delivery runs detached from requests; drain it after the server
	// stops accepting traffic (stop order is reverse of registration)
	boot.AddDependency(&startup.Func{
		Name: "audit_recorder",
		StopFn: func(ctx context.Context) error {
			auditRecorder.Wait()
			return nil
		},
	})

	boot.AddDependency(&startup.Func{
		Name: "http_server",
		StartFn: func(ctx context.Context) error {
			go func() {
				if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
					logger.WithError(err).Error("HTTP server stopped unexpectedly")
					os.Exit(1)
				}
			}()
			checker.SetReady(true)
			return nil
		},
		StopFn: func(ctx context.Context) error {
			checker.SetReady(false)
			return e.Shutdown(ctx)
		},
	})

	if err := boot.Start(ctx); err != nil {
		logger.WithError(err).Error("Startup failed")
		os.Exit(1)
	}

	logger.WithField("port", cfg.Port).Infof("%s listening on port %d", cfg.AppName, cfg.Port)

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := boot.Stop(shutdownCtx); err != nil {
		logger.WithError(err).Error("Shutdown did not complete cleanly")
	}
}

func newZapLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.PrettyLogs {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

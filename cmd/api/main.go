package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"tasktracker/internal/adapter/auth"
	dbadapter "tasktracker/internal/adapter/db"
	httpadapter "tasktracker/internal/adapter/http"
	"tasktracker/internal/adapter/http/handlers"
	httpmiddleware "tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/notifier"
	appservice "tasktracker/internal/app/service"
	"tasktracker/internal/config"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/translator"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	if err := translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}); err != nil {
		logger.Warn("error messages will not be translated", zap.Error(err))
	}

	cfg := config.LoadConfig()

	authenticator, err := auth.NewJWTAuthenticator(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		logger.Fatal("invalid auth configuration", zap.Error(err))
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}

	shutdownOps := map[string]gfshutdown.Operation{
		"mysql": func(ctx context.Context) error {
			return db.Close()
		},
	}

	var taskNotifier ports.TaskNotifier = notifier.LogNotifier{}
	healthHandler := handlers.NewHealthHandler(db, nil)
	if cfg.NatsURL != "" {
		conn, err := notifier.Connect(cfg.NatsURL)
		if err != nil {
			logger.Fatal("failed to connect to nats", zap.Error(err))
		}
		listener, err := notifier.StartListener(conn, cfg.NatsTaskCreatedSubject)
		if err != nil {
			logger.Fatal("failed to start notification listener", zap.Error(err))
		}

		taskNotifier = notifier.NewNATSNotifier(conn, cfg.NatsTaskCreatedSubject)
		healthHandler = handlers.NewHealthHandler(db, conn)
		shutdownOps["nats"] = func(ctx context.Context) error {
			if err := listener.Stop(); err != nil {
				logger.Warn("failed to drain notification listener", zap.Error(err))
			}
			return conn.Drain()
		}
	}

	transactor := dbadapter.NewTransactor(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	membershipRepository := dbadapter.NewMembershipRepository(db)
	subtaskRepository := dbadapter.NewSubtaskRepository(db)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.Use(
		gin.Recovery(),
		httpmiddleware.RequestIDMiddleware(),
		httpmiddleware.GinZapMiddleware(logger),
	)
	if len(cfg.CorsAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CorsAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "Accept-Language", httpmiddleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", httpmiddleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	httpadapter.RegisterRoutes(r, authenticator, httpadapter.Handlers{
		Health:     healthHandler,
		Task:       handlers.NewTaskHandler(appservice.NewTaskService(taskRepository, membershipRepository, transactor, taskNotifier)),
		Subtask:    handlers.NewSubtaskHandler(appservice.NewSubtaskService(subtaskRepository, membershipRepository)),
		Membership: handlers.NewMembershipHandler(appservice.NewMembershipService(membershipRepository)),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	// The http server stops first so in-flight requests can still reach
	// mysql and nats.
	wait := gfshutdown.GracefulShutdown(context.Background(), cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"http": func(ctx context.Context) error {
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			for name, op := range shutdownOps {
				if err := op(ctx); err != nil {
					logger.Warn("shutdown step failed", zap.String("step", name), zap.Error(err))
				}
			}
			return nil
		},
	})

	exitCode := <-wait
	logger.Info("server exited", zap.Int("exit_code", exitCode))
	_ = logger.Sync()
	os.Exit(exitCode)
}

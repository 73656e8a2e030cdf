package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inotebook/config"
	"inotebook/handler"
	"inotebook/logger"
	"inotebook/middleware"
	"inotebook/repository"
	"inotebook/services"
	"inotebook/usecase"
	"inotebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routerDeps struct {
	Log          *slog.Logger
	Users        *usecase.UserService
	Notes        *usecase.NotesService
	Gate         *middleware.AuthGate
	MaxBodyBytes int64
}

func setupRouter(deps routerDeps) *gin.Engine {
	router := gin.New()
	log := deps.Log

	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(deps.MaxBodyBytes))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "iNoteBook")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(middleware.NoStoreMiddleware())

	auth := api.Group("/auth")
	{
		auth.POST("/create-user", func(c *gin.Context) {
			handler.CreateUserHandler(c, deps.Users, log)
		})
		auth.POST("/login", func(c *gin.Context) {
			handler.LoginHandler(c, deps.Users, log)
		})
		auth.GET("/get-user", deps.Gate.Middleware(), func(c *gin.Context) {
			handler.GetUserHandler(c, deps.Users, log)
		})
		auth.POST("/logout", deps.Gate.Middleware(), func(c *gin.Context) {
			handler.LogoutHandler(c, deps.Users, log)
		})
	}

	notes := api.Group("/notes")
	notes.Use(deps.Gate.Middleware())
	{
		notes.GET("/fetch-all-notes", func(c *gin.Context) {
			handler.FetchAllNotesHandler(c, deps.Notes, log)
		})
		notes.POST("/add-note", func(c *gin.Context) {
			handler.AddNoteHandler(c, deps.Notes, log)
		})
		notes.PUT("/update-note/:id", func(c *gin.Context) {
			handler.UpdateNoteHandler(c, deps.Notes, log)
		})
		notes.DELETE("/delete-note/:id", func(c *gin.Context) {
			handler.DeleteNoteHandler(c, deps.Notes, log)
		})
	}

	router.NoRoute(func(c *gin.Context) {
		utils.NotFound(c, "Endpoint not found")
	})

	return router
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	utils.InitValidator()
	utils.RegisterSystemMetrics(prometheus.DefaultRegisterer)

	client, err := utils.NewMongoClient(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error("disconnect mongodb", slog.Any("err", err))
		}
	}()

	db := client.Database(cfg.Database.DatabaseName)
	if err := repository.SetupIndexes(ctx, db, log); err != nil {
		return err
	}

	tokens := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenTTL)

	var (
		revoker usecase.TokenRevoker
		checker middleware.RevocationChecker
	)
	if cfg.Redis.URL != "" {
		blacklist, err := services.NewTokenBlacklist(ctx, cfg.Redis.URL, cfg.Redis.RevocationTTL)
		if err != nil {
			return err
		}
		defer blacklist.Close()
		revoker, checker = blacklist, blacklist
		log.Info("token revocation enabled")
	}

	router := setupRouter(routerDeps{
		Log:          log,
		Users:        usecase.NewUserService(repository.NewUsersRepo(db), tokens, revoker),
		Notes:        usecase.NewNotesService(repository.NewNotesRepo(db)),
		Gate:         middleware.NewAuthGate(tokens, checker, log),
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server exited", slog.Any("err", err))
		os.Exit(1)
	}
}

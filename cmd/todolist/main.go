package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/todolist/internal/config"
	"github.com/xxxsen/todolist/internal/handler"
	"github.com/xxxsen/todolist/internal/middleware"
	"github.com/xxxsen/todolist/internal/repo"
	"github.com/xxxsen/todolist/internal/service"
)

const tokenTTL = time.Hour

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "todolist",
		Short: "todolist backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run todolist server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)

			db, err := repo.Open(cfg.Database.Driver, cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()
			if err := repo.ApplyMigrations(db); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, db)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json (optional, env vars override)")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, db *repo.DB) error {
	logutil.GetLogger(context.Background()).Info("starting server",
		zap.Int("port", cfg.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	userRepo := repo.NewUserRepo(db)
	todoRepo := repo.NewTodoRepo(db)

	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), tokenTTL)
	todoService := service.NewTodoService(todoRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.CORS(cfg.CORSOrigins),
		gzip.Gzip(gzip.DefaultCompression),
	)
	handler.RegisterRoutes(router, handler.RouterDeps{
		Auth:      handler.NewAuthHandler(authService),
		Todos:     handler.NewTodoHandler(todoService),
		JWTSecret: []byte(cfg.JWTSecret),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logutil.GetLogger(context.Background()).Warn("http shutdown", zap.Error(err))
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/potatolake/internal/config"
	"github.com/potatolake/internal/db"
	"github.com/potatolake/internal/logging"
	"github.com/potatolake/internal/objectstore"
	"github.com/potatolake/internal/router"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var envFile string

// rootCmd serves the site when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "server",
	Short:         "Potato Lake Association website",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before the configuration")
	rootCmd.AddCommand(serveCmd)
}

// bootstrap 加载配置、初始化日志与数据库。
func bootstrap() (config.AppConfig, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.AppConfig{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return config.AppConfig{}, err
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(ginMode(cfg.GinMode))

	if err := db.Init(cfg.DatabasePath, cfg.DatabaseURL); err != nil {
		return config.AppConfig{}, fmt.Errorf("initialize database: %w", err)
	}
	driver := "sqlite"
	if cfg.UsesPostgres() {
		driver = "postgres"
	}
	logging.Info().Str("driver", driver).Msg("database ready")
	return cfg, nil
}

func ginMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case gin.DebugMode:
		return gin.DebugMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}

func runServe(ctx context.Context) error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}

	created, err := db.EnsureUser(db.DB, cfg.AdminUserName, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("ensure admin user: %w", err)
	}
	if created {
		logging.Info().Str("username", cfg.AdminUserName).Msg("admin user created")
	}

	store, err := objectstore.New(cfg)
	if err != nil {
		return err
	}

	uploadDir := ""
	if cfg.BlobDriver == "local" {
		uploadDir = cfg.UploadDir
	}
	engine, err := router.SetupRouter(db.DB, router.Options{
		SessionSecret:      cfg.SessionSecret,
		SecureCookie:       strings.HasPrefix(cfg.SiteBaseURL, "https://") && ginMode(cfg.GinMode) == gin.ReleaseMode,
		Store:              store,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		SiteBaseURL:        cfg.SiteBaseURL,
		UploadDir:          uploadDir,
		UploadURLPath:      cfg.UploadURLPath,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.ListenAddr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("run server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewServerCommand builds the standalone development API command
func NewServerCommand() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := a.newServeCommand()
	cmd.Use = "server"
	cmd.SilenceUsage = true

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.foodapp.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	cobra.CheckErr(a.v.BindPFlag("log_level", flags.Lookup("log-level")))

	return cmd
}

func (a *app) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development food API",
		Long: `serve runs an in-memory food API compatible with the json-server
backend the app was built against. Data is lost on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("port", "", "port to listen on")
	flags.String("seed-file", "", "YAML or JSON catalog to serve instead of the built-in one")
	flags.Int("fake-foods", 0, "number of generated foods to add to the catalog")

	cobra.CheckErr(a.v.BindPFlag("server.port", flags.Lookup("port")))
	cobra.CheckErr(a.v.BindPFlag("seed.file", flags.Lookup("seed-file")))
	cobra.CheckErr(a.v.BindPFlag("seed.fake_foods", flags.Lookup("fake-foods")))
	return cmd
}

// newStore loads the configured catalog into a fresh store
func newStore(cfg *config.Config, log *slog.Logger) (*repository.InMemoryStore, error) {
	catalog, err := repository.LoadCatalog(cfg.Seed.File)
	if err != nil {
		return nil, err
	}
	repository.AddFakeFoods(&catalog, cfg.Seed.FakeFoods)

	log.Info("catalog loaded",
		"categories", len(catalog.Categories),
		"foods", len(catalog.Foods),
		"fake_foods", cfg.Seed.FakeFoods,
	)
	return repository.NewInMemoryStore(catalog), nil
}

func serve(cfg *config.Config) error {
	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting food ordering api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	store, err := newStore(cfg, log)
	if err != nil {
		log.Error("failed to load catalog", "file", cfg.Seed.File, "error", err)
		return err
	}
	if len(cfg.Auth.APIKeys) == 0 {
		log.Warn("no api keys configured, mutating routes are open")
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handlers.NewRouter(store, cfg.Auth, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		log.Error("server failed to start", "error", err)
		return err
	case <-quit:
	}

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

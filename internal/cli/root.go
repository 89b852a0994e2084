// Package cli implements the foodapp command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/api"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/tui"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by every command
type app struct {
	v       *viper.Viper
	cfgFile string
}

// NewRootCommand builds the foodapp command tree
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "foodapp",
		Short: "Order food from the GoRestaurant API",
		Long: `foodapp browses the GoRestaurant menu, manages favorites and places orders.
Without a subcommand it opens the terminal app.`,
		SilenceUsage: true,
		RunE:         a.runTUI,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.foodapp.yaml)")
	flags.String("api-url", "", "base URL of the food API")
	flags.String("api-key", "", "API key sent with favorite and order requests")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	cobra.CheckErr(a.v.BindPFlag("api.base_url", flags.Lookup("api-url")))
	cobra.CheckErr(a.v.BindPFlag("api.api_key", flags.Lookup("api-key")))
	cobra.CheckErr(a.v.BindPFlag("log_level", flags.Lookup("log-level")))

	root.AddCommand(
		a.newCategoriesCommand(),
		a.newFoodsCommand(),
		a.newFoodCommand(),
		a.newOrdersCommand(),
		a.newServeCommand(),
	)
	return root
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		return 1
	}
	return 0
}

func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.FromViper(a.v, a.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// session is what a client command needs after loading configuration
type session struct {
	cfg    *config.Config
	client *api.Client
	format *money.Formatter
	log    *slog.Logger
}

func (a *app) newSession(logOut io.Writer) (*session, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(cfg.LogLevel, logOut)

	client, err := api.NewClient(cfg.API.BaseURL,
		api.WithAPIKey(cfg.API.APIKey),
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	format, err := money.NewFormatter(cfg.Display.Locale, cfg.Display.Currency)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, client: client, format: format, log: log}, nil
}

// runTUI opens the terminal app. Logs go to the configured file since
// the screen owns the terminal.
func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	logOut := io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	s, err := a.newSession(logOut)
	if err != nil {
		return err
	}

	s.log.Info("starting terminal app", "api_url", s.cfg.API.BaseURL)
	return tui.Run(commandContext(cmd), s.client, s.format, s.log)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

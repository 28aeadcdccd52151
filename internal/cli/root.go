// Package cli is the operator command line: the interactive page plus
// scriptable search, list, delete and import commands.
package cli

import (
	"fmt"
	"strings"

	"bitacora_materiales/internal/client/apiclient"
	"bitacora_materiales/internal/config"
	"bitacora_materiales/internal/infrastructure/logging"
	"bitacora_materiales/internal/tui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type App struct {
	ConfigFile string
	Config     config.Config

	v      *viper.Viper
	client *apiclient.Client
}

func NewRootCmd() *cobra.Command {
	app := &App{v: config.New()}

	cmd := &cobra.Command{
		Use:          "bitacora",
		Short:        "Registro de materiales de una bitácora",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the materials page for logbook 42 in cart mode
  bitacora --bitacora 42 --mode cart

  # Scriptable commands
  bitacora search "cable fo" --origen cicsa
  bitacora list --bitacora 42
  bitacora delete 0b6f... --yes
  bitacora import --file catalogo.xlsx --origen claro
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive page.
			if app.Config.Bitacora == "" {
				return userErr(errMissingBitacora)
			}
			return tui.Run(cmd.Context(), app.client, tui.Options{
				BitacoraID: app.Config.Bitacora,
				Origin:     app.Config.Origen,
				Cart:       app.Config.Mode == config.ModeCart,
				Debounce:   app.Config.Debounce,
				Timeout:    app.Config.Timeout,
			})
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.v, app.ConfigFile)
		if err != nil {
			return userErr(err)
		}
		app.Config = cfg
		if _, err := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
			return userErr(err)
		}
		app.client = apiclient.New(cfg.APIURL, cfg.Timeout)
		zap.L().Named("cli").Debug("config loaded", zap.String("command", cmd.CommandPath()), zap.String("api_url", cfg.APIURL))
		return nil
	}

	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigFile, "config", "", "Config file (yaml, toml or json)")
	pf.String("api-url", "", "Base URL of the materials API")
	pf.String("bitacora", "", "Logbook id")
	pf.String("origen", "", "Catalog origin (claro|cicsa)")
	pf.String("mode", "", "Page mode (single|cart)")
	pf.Duration("timeout", 0, "Request timeout")
	pf.Duration("debounce", 0, "Search debounce window")
	pf.String("log-file", "", "Log file")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	for key, flag := range map[string]string{
		config.KeyAPIURL:   "api-url",
		config.KeyBitacora: "bitacora",
		config.KeyOrigen:   "origen",
		config.KeyMode:     "mode",
		config.KeyTimeout:  "timeout",
		config.KeyDebounce: "debounce",
		config.KeyLogFile:  "log-file",
		config.KeyLogLevel: "log-level",
	} {
		if err := app.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind %s: %v", flag, err))
		}
	}

	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newImportCmd(app))

	return cmd
}

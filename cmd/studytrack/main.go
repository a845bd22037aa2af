package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"studytrack/internal/bootstrap"
	"studytrack/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir, configPath string

	root := &cobra.Command{
		Use:           "studytrack",
		Short:         "Shared study timeline tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", ".studytrack", "data directory")
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (overrides --data)")

	root.AddCommand(newServeCmd(&dataDir, &configPath))
	root.AddCommand(newWatchCmd(&dataDir, &configPath))
	return root
}

func loadConfig(dataDir, configPath string) (config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.New(dataDir)
}

func newServeCmd(dataDir, configPath *string) *cobra.Command {
	var addr string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*dataDir, *configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			app, err := bootstrap.New(cfg)
			if err != nil {
				return err
			}
			defer app.DB.Close()
			return bootstrap.RunServer(cfg, app)
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return serve
}

func newWatchCmd(dataDir, configPath *string) *cobra.Command {
	var interval time.Duration
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Watch the live feed of active studiers in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*dataDir, *configPath)
			if err != nil {
				return err
			}
			app, err := bootstrap.New(cfg)
			if err != nil {
				return err
			}
			defer app.DB.Close()
			return bootstrap.RunFeedWatch(app, interval)
		},
	}
	watch.Flags().DurationVar(&interval, "interval", 5*time.Second, "poll interval")
	return watch
}

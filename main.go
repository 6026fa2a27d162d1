package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(loadConfig()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json or console)")
	cmd.PersistentFlags().StringVar(&cfg.ContentPath, "content", cfg.ContentPath, "YAML content file replacing the built-in content")

	cmd.AddCommand(newServeCmd(&cfg))
	cmd.AddCommand(newBuildCmd(&cfg))
	return cmd
}

func newServeCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, content, renderer, err := setup(*cfg)
			if err != nil {
				return err
			}
			if os.Getenv(gin.EnvGinMode) == "" {
				gin.SetMode(gin.ReleaseMode)
			}
			router, err := newRouter(content, renderer, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, net.JoinHostPort("", cfg.Port), router, log)
		},
	}
	cmd.Flags().StringVarP(&cfg.Port, "port", "p", cfg.Port, "Port to listen on")
	return cmd
}

func newBuildCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the portfolio to static files",
		Long: `The build command renders the page once per theme variant
(index.html for dark, light.html for light) and copies the stylesheet
into the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, content, renderer, err := setup(*cfg)
			if err != nil {
				return err
			}
			return buildSite(cfg.OutDir, content, renderer, log)
		},
	}
	cmd.Flags().StringVarP(&cfg.OutDir, "out", "o", cfg.OutDir, "Output directory")
	return cmd
}

func setup(cfg Config) (*Logger, *Content, *Renderer, error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, nil, err
	}
	log, err := cfg.logger()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create logger: %w", err)
	}
	content, err := LoadContentFile(cfg.ContentPath)
	if err != nil {
		return nil, nil, nil, err
	}
	renderer, err := NewRenderer()
	if err != nil {
		return nil, nil, nil, err
	}
	log.With(map[string]any{
		"skills":   len(content.Skills),
		"projects": len(content.Projects),
	}).Debug("content loaded")
	return log, content, renderer, nil
}

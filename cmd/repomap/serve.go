package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dejo1307/repomap/internal/server"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the repomap tool over MCP on stdio",
		Long: "serve starts a Model Context Protocol server on stdin/stdout exposing the repomap tool " +
			"and the " + server.LastReportURI + " resource. Logs go to stderr.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Log)

			srv, err := server.New(newEngine(cfg, logger, false), cfg, version, logger)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
}

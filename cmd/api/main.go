package main

import (
	"fmt"
	"os"

	"clinic-records/internal/platform/config"
	"clinic-records/internal/platform/logger"

	"github.com/spf13/cobra"
)

// @title Clinic Records API
// @version 0.1.0
// @description Prontuario consolidado y estadísticas de gasto por paciente.
// @BasePath /
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	envFile string
	cfg     *config.Config
	log     logger.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "clinic-records",
		Short:         "Prontuario y estadísticas de pacientes de la clínica",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.envFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.LogLevel),
				Format: logger.ParseFormat(cfg.LogFormat),
				App:    cfg.AppName,
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
		// Sin subcomando se comporta como antes: levanta el server.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "archivo .env opcional")

	root.AddCommand(serveCmd(a))
	root.AddCommand(recordCmd(a))
	root.AddCommand(statsCmd(a))
	root.AddCommand(tokenCmd(a))
	return root
}

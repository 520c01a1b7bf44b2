//go:generate swag init --dir ./,../../internal/handler --generalInfo main.go --output ../../docs --outputTypes go

package main

import (
	"os"

	_ "vglist/backend/docs"
	"vglist/backend/internal/config"
	"vglist/backend/internal/logger"

	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root command has run.
type app struct {
	envDir string
	cfg    *config.Config
	log    *logger.Logger
}

// @title           vglist API
// @version         1.0
// @description     Game tracking, rating and review API.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "vglist",
		Short:         "vglist backend",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.envDir)
			if err != nil {
				return err
			}
			log, err := logger.New(logger.Config{
				Level:       cfg.LogLevel,
				Environment: cfg.Environment,
				ServiceName: "vglist",
			})
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.envDir, "env-dir", ".", "directory containing an optional .env file")

	root.AddCommand(newServeCmd(a), newSeedCmd(a), newTokenCmd(a))
	return root
}

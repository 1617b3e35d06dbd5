package cmd_radix

import (
	"github.com/spf13/cobra"

	"github.com/rskv-p/radix/pkg/x_log"
	"github.com/rskv-p/radix/servs/s_radix/radix_api"
	"github.com/rskv-p/radix/servs/s_radix/radix_cfg"
	"github.com/rskv-p/radix/servs/s_radix/radix_serv"
)

var configPath string

// serveCmd runs the radix service in the foreground
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the radix store service",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := radix_cfg.Load(configPath); err != nil {
			return err
		}
		cfg := radix_cfg.C()

		x_log.InitWithConfig(&x_log.Config{
			Level:     cfg.LogLevel,
			ToConsole: true,
			ToFile:    cfg.LogToFile,
			LogFile:   cfg.LogFile,
		}, cfg.ServiceName)

		serv := radix_serv.New(cfg.ServiceName)
		return radix_api.ServeREST(cfg.HTTPAddr, serv)
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	RootCmd.AddCommand(serveCmd)
}

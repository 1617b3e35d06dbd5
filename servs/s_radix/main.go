package main

import (
	"os"

	"github.com/rskv-p/radix/pkg/x_log"
	"github.com/rskv-p/radix/servs/s_radix/radix_api"
	"github.com/rskv-p/radix/servs/s_radix/radix_cfg"
	"github.com/rskv-p/radix/servs/s_radix/radix_serv"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// Load config
	if err := radix_cfg.Load(path); err != nil {
		x_log.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}
	cfg := radix_cfg.C()

	x_log.InitWithConfig(&x_log.Config{
		Level:     cfg.LogLevel,
		ToConsole: true,
		ToFile:    cfg.LogToFile,
		LogFile:   cfg.LogFile,
	}, cfg.ServiceName)

	serv := radix_serv.New(cfg.ServiceName)

	x_log.Info().Str("addr", cfg.HTTPAddr).Msg("starting radix service")
	if err := radix_api.ServeREST(cfg.HTTPAddr, serv); err != nil {
		x_log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/telasecia/vitrine/internal/interfaces/console"
	"github.com/telasecia/vitrine/pkg/config"
	"github.com/telasecia/vitrine/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuração:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	app, err := console.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao montar o cliente")
	}

	if err := console.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}

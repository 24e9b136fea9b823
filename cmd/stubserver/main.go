package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/telasecia/vitrine/internal/infrastructure/localfs"
	"github.com/telasecia/vitrine/internal/stubserver"
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

	baseURL := fmt.Sprintf("http://localhost:%d/uploads", cfg.Stub.Port)
	arquivos := localfs.New(cfg.Stub.UploadDir, baseURL)

	srv := stubserver.New(cfg.Stub, arquivos, log)
	app := srv.App()

	go func() {
		log.Info().Str("addr", cfg.Stub.Addr()).Msg("backend stub escutando")
		if err := app.Listen(cfg.Stub.Addr()); err != nil {
			log.Fatal().Err(err).Msg("falha ao subir o servidor")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("encerrando")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("encerramento forçado")
	}
}

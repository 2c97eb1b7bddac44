// path: cmd/server/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"shogi_kifu/internal/httpx"
)

type config struct {
	Addr            string        `env:"SHOGI_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHOGI_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	// Flags override the environment.
	addr := flag.String("addr", cfg.Addr, "listen address")
	flag.Parse()

	srv := httpx.NewServer()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Close(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := srv.Listen(*addr); err != nil {
		log.Fatal(err)
	}
}

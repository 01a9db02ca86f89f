package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photon-ca/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	if cfg.Listen == "" {
		if err := app.Run(engine, cfg, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	logger := log.New(os.Stdout, "[emca] ", log.LstdFlags|log.Lmicroseconds)
	handler, err := app.NewHTTPHandler(engine, logger)
	if err != nil {
		logger.Fatalf("handler: %v", err)
	}
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx2)
	}()

	logger.Printf("%s listening on %s", engine.Name(), cfg.Listen)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("ListenAndServe: %v", err)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tempo/internal/assistant"
	"tempo/internal/config"
	"tempo/internal/model"
	"tempo/internal/observability"
	"tempo/internal/server"
	"tempo/internal/snapshot"
	"tempo/internal/store"
)

func main() {
	_ = godotenv.Load()

	log := observability.WithFields("component", "server")

	cfg, err := config.Load("tempo.yaml")
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}
	cfg = config.FromEnv(cfg)

	snaps := snapshot.Open(cfg.DataDir)
	initial := snaps.Load()

	st := store.New(initial, cfg.Placement.Rules(), store.RealClock{})
	st.OnChange(func(next model.AppState) {
		if err := snaps.Save(next); err != nil {
			log.Error("save snapshot", "err", err)
		}
	})

	client := assistant.NewClient(cfg.AssistantURL)
	srv := server.New(st, client)

	mux := http.NewServeMux()
	server.Register(mux, srv)

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.WithLogging(mux),
	}

	go func() {
		log.Info("tempo listening", "addr", httpSrv.Addr, "assistant", cfg.AssistantURL)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("serve", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	// The backgrounding write: persist whatever the store holds now.
	if err := snaps.Save(st.State()); err != nil {
		log.Error("save snapshot on shutdown", "err", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)
	log.Info("tempo stopped")
}

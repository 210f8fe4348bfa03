package main

import (
	_ "github.com/lib/pq"

	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/inekruz/dserver/internal/api"
	"github.com/inekruz/dserver/internal/database"
)

func main() {
	cfg, err := api.LoadEnvConfig(".env")
	if err != nil {
		slog.Error("конфигурация не загружена: " + err.Error())
		os.Exit(1)
	}

	db, err := database.NewDatabase(cfg.DBURL())
	if err != nil {
		slog.Error("ошибка инициализации пула соединений: " + err.Error())
		os.Exit(1)
	}
	defer db.Close()
	cfg.UseStore(db)

	dserver := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.SetupMux(cfg),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// start server
	slog.Info("Сервер работает на https://" + cfg.Addr())
	if err := dserver.ListenAndServeTLS(cfg.TLSCert(), cfg.TLSKey()); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"net/http"

	"transcript-scorer/internal/api"
	"transcript-scorer/internal/config"
	"transcript-scorer/internal/db"
	"transcript-scorer/internal/logx"
)

func main() {
	envFile := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		logx.Log.Fatal().Err(err).Msg("config")
	}

	logx.Configure(cfg.Log.Level)

	database, err := db.New(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
	)
	if err != nil {
		logx.Log.Fatal().Err(err).Msg("database")
	}
	defer database.Close()

	if err := database.CreateTables(); err != nil {
		logx.Log.Fatal().Err(err).Msg("create tables")
	}
	logx.Log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).
		Msg("connected to MariaDB")

	router := api.NewRouter(cfg, database)

	logx.Log.Info().Str("addr", cfg.Server.Addr).Str("suites", cfg.Data.Dir).
		Msg("server starting")

	if err := http.ListenAndServe(cfg.Server.Addr, router); err != nil {
		logx.Log.Fatal().Err(err).Msg("server")
	}
}

// Command migrate imports the legacy document-store snapshot (db.json) into
// Postgres. It upserts every record keyed by its legacy id, so the import can
// be re-run safely, and exits non-zero if the snapshot file is missing.
package main

import (
	"flag"
	"log/slog"
	"os"

	"eventflow/internal/config"
	"eventflow/internal/lib/auth/password"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/lib/snapshot"
	"eventflow/internal/migrations"
	"eventflow/internal/storage/postgres"
)

func main() {
	var snapshotPath string
	flag.StringVar(&snapshotPath, "file", "data/db.json", "path to the legacy db.json snapshot")
	flag.Parse()

	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	log.Info("starting migration from JSON snapshot", slog.String("file", snapshotPath))

	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		log.Error("failed to read snapshot", sl.Err(err))
		os.Exit(1)
	}

	store, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close postgres connection", sl.Err(err))
		}
	}()

	if err = migrations.Run(store.DB, cfg.MigrationsPath); err != nil {
		log.Error("failed to apply schema migrations", sl.Err(err))
		os.Exit(1)
	}

	log.Info("migrating users", slog.Int("count", len(snap.Users)))
	for _, u := range snap.Users {
		hash, err := password.Hash(u.Password)
		if err != nil {
			log.Error("failed to hash password", slog.Int64("id", u.ID), sl.Err(err))
			os.Exit(1)
		}
		if err = store.ImportUser(u, hash); err != nil {
			log.Error("failed to import user", sl.Err(err))
			os.Exit(1)
		}
	}

	log.Info("migrating events", slog.Int("count", len(snap.Events)))
	for _, e := range snap.Events {
		if err = store.ImportEvent(e); err != nil {
			log.Error("failed to import event", sl.Err(err))
			os.Exit(1)
		}
	}

	log.Info("migrating vendors", slog.Int("count", len(snap.Vendors)))
	for _, v := range snap.Vendors {
		if err = store.ImportVendor(v); err != nil {
			log.Error("failed to import vendor", sl.Err(err))
			os.Exit(1)
		}
	}

	log.Info("migrating tasks", slog.Int("count", len(snap.Tasks)))
	for _, t := range snap.Tasks {
		if err = store.ImportTask(t); err != nil {
			log.Error("failed to import task", sl.Err(err))
			os.Exit(1)
		}
	}

	if snap.Stats != nil {
		log.Info("migrating stats")
		if err = store.ImportStats(*snap.Stats); err != nil {
			log.Error("failed to import stats", sl.Err(err))
			os.Exit(1)
		}
	}

	if err = store.ResetSequences(); err != nil {
		log.Error("failed to reset id sequences", sl.Err(err))
		os.Exit(1)
	}

	log.Info("migration completed successfully")
}

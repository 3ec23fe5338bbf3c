package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventflow/internal/config"
	"eventflow/internal/http-server/handlers/auth/login"
	"eventflow/internal/http-server/handlers/auth/register"
	"eventflow/internal/http-server/handlers/contact/sendMessage"
	"eventflow/internal/http-server/handlers/event/createEvent"
	"eventflow/internal/http-server/handlers/event/deleteEvent"
	"eventflow/internal/http-server/handlers/event/getAllEvents"
	"eventflow/internal/http-server/handlers/event/updateEvent"
	"eventflow/internal/http-server/handlers/health/healthCheck"
	"eventflow/internal/http-server/handlers/stats/getStats"
	"eventflow/internal/http-server/handlers/task/createTask"
	"eventflow/internal/http-server/handlers/task/deleteTask"
	"eventflow/internal/http-server/handlers/task/getAllTasks"
	"eventflow/internal/http-server/handlers/task/updateTask"
	"eventflow/internal/http-server/handlers/vendorhandlers/createVendor"
	"eventflow/internal/http-server/handlers/vendorhandlers/deleteVendor"
	"eventflow/internal/http-server/handlers/vendorhandlers/getAllVendors"
	"eventflow/internal/http-server/handlers/vendorhandlers/updateVendor"
	"eventflow/internal/http-server/middleware/mwlogger"
	"eventflow/internal/lib/auth/password"
	"eventflow/internal/lib/logger/handlers/slogpretty"
	"eventflow/internal/lib/logger/sl"
	"eventflow/internal/migrations"
	"eventflow/internal/storage"
	"eventflow/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const (
	adminEmail    = "admin@eventflow.com"
	adminPassword = "password123"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting eventflow", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	store, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = migrations.Run(store.DB, cfg.MigrationsPath); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	if err = seedAdmin(store); err != nil {
		log.Error("failed to seed admin user", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./public/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/login", login.New(log, store))
		r.Post("/register", register.New(log, store))
		r.Post("/contact", sendMessage.New(log, time.Second))
		r.Get("/stats", getStats.New(log, store))
		r.Get("/health", healthCheck.New(log))

		r.Get("/events", getAllEvents.New(log, store))
		r.Post("/events", createEvent.New(log, store))
		r.Put("/events/{id}", updateEvent.New(log, store))
		r.Delete("/events/{id}", deleteEvent.New(log, store))

		r.Get("/vendors", getAllVendors.New(log, store))
		r.Post("/vendors", createVendor.New(log, store))
		r.Put("/vendors/{id}", updateVendor.New(log, store))
		r.Delete("/vendors/{id}", deleteVendor.New(log, store))

		r.Get("/tasks", getAllTasks.New(log, store))
		r.Post("/tasks", createTask.New(log, store))
		r.Put("/tasks/{id}", updateTask.New(log, store))
		r.Delete("/tasks/{id}", deleteTask.New(log, store))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

// seedAdmin mirrors the default database of the legacy system: a single admin
// account present from the first start.
func seedAdmin(store *postgres.Storage) error {
	_, err := store.GetUserByEmail(adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return err
	}

	hash, err := password.Hash(adminPassword)
	if err != nil {
		return err
	}

	_, err = store.CreateUser("Admin", adminEmail, hash, "admin")
	return err
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}

package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	"github.com/Emeralddossou/detecporc/internal/auth"
	"github.com/Emeralddossou/detecporc/internal/config"
	"github.com/Emeralddossou/detecporc/internal/handlers"
	"github.com/Emeralddossou/detecporc/internal/logger"
	"github.com/Emeralddossou/detecporc/internal/metrics"
	"github.com/Emeralddossou/detecporc/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.Setup()

	points, err := store.NewPointStore(filepath.Join(cfg.DataDir, "points.json"))
	if err != nil {
		log.Error("open point store failed", "err", err)
		os.Exit(1)
	}
	pending, err := store.NewPendingStore(filepath.Join(cfg.DataDir, "pending.json"))
	if err != nil {
		log.Error("open pending store failed", "err", err)
		os.Exit(1)
	}

	gate := auth.NewGate(auth.Admin{
		Username: cfg.AdminUser,
		Salt:     cfg.AdminSalt,
		Hash:     cfg.AdminHash,
	})

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}

	h := handlers.New(points, pending, gate, sessionStore, handlers.DefaultMessages(), log)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			next.ServeHTTP(w, r)
		})
	})

	h.Register(r)
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/*", http.FileServer(http.Dir(cfg.PublicDir)))

	log.Info("server starting", "addr", cfg.Addr, "data_dir", cfg.DataDir)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

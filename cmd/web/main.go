package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"bloggergen.org/cardgen-web/internal/describe"
	"bloggergen.org/cardgen-web/internal/i18n"
	mw "bloggergen.org/cardgen-web/internal/middleware"
	"bloggergen.org/cardgen-web/internal/uploads"
)

var (
	bundle     *i18n.Bundle
	generator  describe.Generator
	aiTracker  = describe.NewTracker()
	imageStore *uploads.Store
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var (
		addr       string
		localesDir string
		assetsDir  string
	)
	// Port resolution: prefer CARDGEN_PORT, then PORT, else 8080
	port := os.Getenv("CARDGEN_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&localesDir, "locales", "locales", "locale files directory")
	flag.StringVar(&assetsDir, "assets", "assets", "static assets directory")
	flag.Parse()

	b, err := i18n.Load(localesDir, "en", []string{"en", "es"})
	if err != nil {
		log.Fatalf("load locales: %v", err)
	}
	bundle = b

	generator = describe.FromEnv()

	imageStore, err = uploads.NewFromEnv()
	if err != nil {
		if errors.Is(err, uploads.ErrNotConfigured) {
			log.Printf("image uploads disabled: %v", err)
		} else {
			log.Fatalf("init uploads: %v", err)
		}
	}

	r := newRouter(assetsDir)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("cardgen web listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func newRouter(assetsDir string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(mw.Locale(bundle))
	r.Use(mw.VaryLocale)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if assetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(assetsDir, "/assets")))
	}

	r.Get("/", EditorPageHandler)
	r.Post("/fragments/editor", EditorFrag)
	r.Post("/fragments/widget", WidgetFrag)
	r.Post("/fragments/describe", DescribeFrag)
	r.Post("/fragments/upload", UploadFrag)
	r.Get("/export", ExportPageHandler)
	r.Get("/export/download", ExportDownloadHandler)

	return r
}

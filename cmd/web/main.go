package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bookweb/internal/book"
	"bookweb/internal/httpx"
	"bookweb/internal/platform/bookapi"
	"bookweb/internal/web"
)

func main() {
	loadEnvFiles()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	client := bookapi.NewClient(cfg.api)
	pages, err := web.NewHandler(book.NewService(client))
	if err != nil {
		log.Fatalf("cannot load templates: %v", err)
	}
	health := web.NewHealthHandler(client)

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.rateLimitRPS, cfg.rateLimitBurst)
	defer rateLimiter.Stop()

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(httpx.RequestIDMiddleware)
	router.Use(httpx.AccessLogMiddleware)
	router.Use(httpx.RecoveryMiddleware)
	router.Use(httpx.SecurityHeadersMiddleware)
	router.Use(httpx.RequestSizeLimitMiddleware(cfg.maxBodyBytes))

	router.Get("/healthz", health.Live)
	router.Get("/readyz", health.Ready)

	router.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware)
		r.Mount("/", pages.Routes())
	})

	httpServer := &http.Server{
		Addr:         cfg.addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.api.Timeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("books API at %s", cfg.api.BaseURL)
	if err := serve(httpServer, cfg.shutdownTimeout); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

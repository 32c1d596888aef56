package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"filmora/config"
	"filmora/handlers"
	"filmora/internal/connectivity"
	"filmora/internal/database"
	"filmora/internal/docstore"
	"filmora/services/auth"
	"filmora/services/catalog"
	"filmora/services/favorites"
	"filmora/services/profile"
	"filmora/services/reviews"
	"filmora/services/tmdb"
	"filmora/utils"
)

func main() {
	configPath := flag.String("config", "./data/settings.json", "path to the settings file")
	flag.Parse()

	settings, err := config.NewManager(*configPath).Load()
	if err != nil {
		log.Fatalf("[main] Failed to load settings: %v", err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   settings.Logging.Path,
		MaxSize:    settings.Logging.MaxSizeMB,
		MaxBackups: settings.Logging.MaxBackups,
	}))

	if settings.TMDB.APIKey == "" {
		log.Fatal("[main] TMDB API key is not configured (set TMDB_API_KEY)")
	}
	if settings.Auth.JWTSecret == "" {
		log.Fatal("[main] JWT secret is not configured (set FILMORA_JWT_SECRET)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDB(database.Config{DatabasePath: settings.Database.Path})
	if err != nil {
		log.Fatalf("[main] Failed to open movie cache: %v", err)
	}
	defer db.Close()

	store, err := docstore.Connect(ctx, settings.Mongo.URI, settings.Mongo.Database)
	if err != nil {
		log.Fatalf("[main] Failed to connect to document store: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Printf("[main] Failed to close document store: %v", err)
		}
	}()

	monitor := connectivity.NewMonitor(settings.Connectivity.ProbeURL, settings.Connectivity.ProbeInterval())
	go monitor.Run(ctx)

	tmdbClient := tmdb.NewClient(tmdb.Config{
		APIKey:   settings.TMDB.APIKey,
		BaseURL:  settings.TMDB.BaseURL,
		Language: settings.TMDB.Language,
	})

	catalogService := catalog.NewService(tmdbClient, db.Movies, monitor, catalog.NewListState())
	authService := auth.NewService(auth.NewMongoUserStore(store.Users()), settings.Auth.JWTSecret, settings.Auth.TokenTTL())
	favoritesService := favorites.NewService(favorites.NewMongoStore(store.Favorites()))
	reviewsService := reviews.NewService(reviews.NewMongoStore(store.Reviews()))
	profileService := profile.NewService(profile.NewMongoStore(store.History()))

	router := utils.NewRouter()
	handlers.RegisterRoutes(router, handlers.Services{
		Catalog:     handlers.NewCatalogHandler(catalogService),
		Auth:        handlers.NewAuthHandler(authService),
		Favorites:   handlers.NewFavoritesHandler(favoritesService),
		Reviews:     handlers.NewReviewsHandler(reviewsService),
		Profile:     handlers.NewProfileHandler(profileService),
		Status:      handlers.NewStatusHandler(monitor),
		AuthService: authService,
	})

	srv := &http.Server{
		Addr:         settings.Server.ListenAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[main] Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Println("[main] Shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] Server error: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] Graceful shutdown failed: %v", err)
	}
}

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"filmora/services/auth"
)

// Services bundles everything the API routes depend on.
type Services struct {
	Catalog   *CatalogHandler
	Auth      *AuthHandler
	Favorites *FavoritesHandler
	Reviews   *ReviewsHandler
	Profile   *ProfileHandler
	Status    *StatusHandler

	AuthService *auth.Service
}

// RegisterRoutes mounts the API on the router. Identity is attached to every
// request when a token is present; the favorites, review-write and history
// routes additionally require one.
func RegisterRoutes(r *mux.Router, s Services) {
	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.AuthService.Middleware)

	api.HandleFunc("/status", s.Status.Status).Methods(http.MethodGet)

	api.HandleFunc("/auth/register", s.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.Auth.Login).Methods(http.MethodPost)

	api.HandleFunc("/movies/popular", s.Catalog.PopularMovies).Methods(http.MethodGet)
	api.HandleFunc("/movies/{movieID:[0-9]+}", s.Catalog.MovieDetail).Methods(http.MethodGet)
	api.HandleFunc("/movies/{movieID:[0-9]+}/reviews", s.Reviews.ListForMovie).Methods(http.MethodGet)
	api.HandleFunc("/genres", s.Catalog.Genres).Methods(http.MethodGet)
	api.HandleFunc("/genres/{genreID:[0-9]+}/movies", s.Catalog.MoviesByGenre).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(auth.RequireAuth)

	authed.HandleFunc("/favorites", s.Favorites.List).Methods(http.MethodGet)
	authed.HandleFunc("/favorites/{movieID:[0-9]+}", s.Favorites.Status).Methods(http.MethodGet)
	authed.HandleFunc("/favorites/{movieID:[0-9]+}", s.Favorites.Add).Methods(http.MethodPut)
	authed.HandleFunc("/favorites/{movieID:[0-9]+}", s.Favorites.Remove).Methods(http.MethodDelete)

	authed.HandleFunc("/movies/{movieID:[0-9]+}/reviews", s.Reviews.Create).Methods(http.MethodPost)
	authed.HandleFunc("/reviews/{reviewID}", s.Reviews.Update).Methods(http.MethodPut)
	authed.HandleFunc("/reviews/{reviewID}", s.Reviews.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/profile/history", s.Profile.History).Methods(http.MethodGet)
	authed.HandleFunc("/profile/history", s.Profile.RecordView).Methods(http.MethodPost)
}

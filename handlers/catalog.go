package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"filmora/services/catalog"
)

// CatalogHandler serves the movie catalog API endpoints.
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// PopularMovies refreshes the popular list (falling back to the local cache
// when offline), applies the requested sort and filters, and returns the
// derived view.
// GET /api/movies/popular?page=&sort=&filters=
func (h *CatalogHandler) PopularMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if raw, ok := query["sort"]; ok {
		option, valid := catalog.ParseSortOption(raw[0])
		if !valid {
			jsonError(w, "Unknown sort option: "+raw[0], http.StatusBadRequest)
			return
		}
		h.catalog.State().SetSort(option)
	}

	if raw, ok := query["filters"]; ok {
		var filters []catalog.FilterOption
		for _, value := range strings.Split(raw[0], ",") {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			filter, valid := catalog.ParseFilterOption(value)
			if !valid {
				jsonError(w, "Unknown filter option: "+value, http.StatusBadRequest)
				return
			}
			filters = append(filters, filter)
		}
		h.catalog.State().SetFilters(filters)
	}

	h.catalog.RefreshPopular(r.Context(), queryInt(r, "page", 1))

	writeJSON(w, http.StatusOK, h.catalog.State().Snapshot())
}

// Genres returns the full genre list.
// GET /api/genres
func (h *CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalog.Genres(r.Context())
	if err != nil {
		jsonError(w, "Failed to load genres: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"genres": genres})
}

// MoviesByGenre returns one discover page for a genre.
// GET /api/genres/{genreID}/movies?page=
func (h *CatalogHandler) MoviesByGenre(w http.ResponseWriter, r *http.Request) {
	genreID, ok := pathInt(mux.Vars(r), "genreID")
	if !ok {
		jsonError(w, "Invalid genre id", http.StatusBadRequest)
		return
	}

	page, err := h.catalog.MoviesByGenre(r.Context(), genreID, queryInt(r, "page", 1))
	if err != nil {
		jsonError(w, "Failed to load genre movies: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// MovieDetail returns the full detail bundle for one movie.
// GET /api/movies/{movieID}
func (h *CatalogHandler) MovieDetail(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathInt(mux.Vars(r), "movieID")
	if !ok {
		jsonError(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	bundle, err := h.catalog.MovieDetail(r.Context(), movieID)
	if err != nil {
		jsonError(w, "Failed to load movie: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}

package catalog

import (
	"sort"
	"sync"

	"filmora/models"
)

// SortOption selects the ordering applied to the derived movie list.
type SortOption string

const (
	// SortNone keeps the source ranking.
	SortNone       SortOption = ""
	SortRatingDesc SortOption = "rating_desc"
	SortRatingAsc  SortOption = "rating_asc"
	SortDateDesc   SortOption = "date_desc"
	SortDateAsc    SortOption = "date_asc"
)

// ParseSortOption maps a query value onto a SortOption.
func ParseSortOption(value string) (SortOption, bool) {
	switch SortOption(value) {
	case SortNone, SortRatingDesc, SortRatingAsc, SortDateDesc, SortDateAsc:
		return SortOption(value), true
	}
	return SortNone, false
}

// FilterOption narrows the derived movie list. Multiple active filters
// combine with logical AND.
type FilterOption string

const (
	FilterRatingAbove5 FilterOption = "rating_5"
	FilterRatingAbove7 FilterOption = "rating_7"
	FilterRatingAbove8 FilterOption = "rating_8"
	FilterYearAfter90  FilterOption = "year_1990"
	FilterYearAfter00  FilterOption = "year_2000"
	FilterYearAfter10  FilterOption = "year_2010"
	FilterYearAfter20  FilterOption = "year_2020"
)

// ParseFilterOption maps a query value onto a FilterOption.
func ParseFilterOption(value string) (FilterOption, bool) {
	switch FilterOption(value) {
	case FilterRatingAbove5, FilterRatingAbove7, FilterRatingAbove8,
		FilterYearAfter90, FilterYearAfter00, FilterYearAfter10, FilterYearAfter20:
		return FilterOption(value), true
	}
	return "", false
}

func (f FilterOption) matches(m models.Movie) bool {
	switch f {
	case FilterRatingAbove5:
		return m.VoteAverage >= 5
	case FilterRatingAbove7:
		return m.VoteAverage >= 7
	case FilterRatingAbove8:
		return m.VoteAverage >= 8
	case FilterYearAfter90:
		return m.ReleaseYear() >= 1990
	case FilterYearAfter00:
		return m.ReleaseYear() >= 2000
	case FilterYearAfter10:
		return m.ReleaseYear() >= 2010
	case FilterYearAfter20:
		return m.ReleaseYear() >= 2020
	}
	return true
}

// Snapshot is the derived view handed to the UI: the filtered and sorted
// projection of the canonical list plus the reason cached data is shown, if
// any.
type Snapshot struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
	Results      []models.Movie `json:"results"`
	Sort         SortOption     `json:"sort,omitempty"`
	Filters      []FilterOption `json:"filters,omitempty"`
	Reason       string         `json:"fallback_reason,omitempty"`
}

// ListState holds the canonical movie list, the active sort and filter
// selection, and the derived view recomputed whenever any of the three
// change. Recomputation is synchronous and pure; the state itself is safe
// for concurrent use.
type ListState struct {
	mu           sync.RWMutex
	canonical    []models.Movie
	page         int
	totalPages   int
	totalResults int
	sortOption   SortOption
	filters      []FilterOption
	reason       string
	derived      []models.Movie
}

// NewListState creates an empty state with no sort and no filters.
func NewListState() *ListState {
	return &ListState{
		canonical: []models.Movie{},
		derived:   []models.Movie{},
	}
}

// SetCanonical replaces the canonical list with a freshly published page.
// An empty reason marks fresh remote data; a non-empty reason marks a
// fallback publication.
func (s *ListState) SetCanonical(page models.MoviePage, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.canonical = make([]models.Movie, len(page.Results))
	copy(s.canonical, page.Results)
	s.page = page.Page
	s.totalPages = page.TotalPages
	s.totalResults = page.TotalResults
	s.reason = reason
	s.recompute()
}

// SetSort activates a sort key and recomputes the derived view.
func (s *ListState) SetSort(option SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortOption = option
	s.recompute()
}

// ResetSort returns to source ordering.
func (s *ListState) ResetSort() {
	s.SetSort(SortNone)
}

// SetFilters replaces the active filter set and recomputes the derived view.
// Passing an empty set clears all filters.
func (s *ListState) SetFilters(filters []FilterOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = make([]FilterOption, len(filters))
	copy(s.filters, filters)
	s.recompute()
}

// Canonical returns a copy of the unfiltered, unsorted list.
func (s *ListState) Canonical() []models.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Movie, len(s.canonical))
	copy(out, s.canonical)
	return out
}

// Snapshot returns the current derived view.
func (s *ListState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]models.Movie, len(s.derived))
	copy(results, s.derived)
	filters := make([]FilterOption, len(s.filters))
	copy(filters, s.filters)

	return Snapshot{
		Page:         s.page,
		TotalPages:   s.totalPages,
		TotalResults: s.totalResults,
		Results:      results,
		Sort:         s.sortOption,
		Filters:      filters,
		Reason:       s.reason,
	}
}

// recompute rebuilds the derived view. Callers must hold the write lock.
func (s *ListState) recompute() {
	s.derived = deriveView(s.canonical, s.filters, s.sortOption)
}

// deriveView applies the active filters (AND-combined) and then the active
// sort to items. It is a pure function: items is never modified and the
// sort is stable, so ties keep their filtered-list order.
func deriveView(items []models.Movie, filters []FilterOption, option SortOption) []models.Movie {
	filtered := make([]models.Movie, 0, len(items))
	for _, m := range items {
		keep := true
		for _, f := range filters {
			if !f.matches(m) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, m)
		}
	}

	switch option {
	case SortRatingDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].VoteAverage > filtered[j].VoteAverage })
	case SortRatingAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].VoteAverage < filtered[j].VoteAverage })
	case SortDateDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ReleaseDate > filtered[j].ReleaseDate })
	case SortDateAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ReleaseDate < filtered[j].ReleaseDate })
	}

	return filtered
}

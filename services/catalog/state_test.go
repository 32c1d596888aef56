package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmora/models"
	"filmora/services/catalog"
)

func page(movies ...models.Movie) models.MoviePage {
	return models.MoviePage{Page: 1, Results: movies, TotalPages: 1, TotalResults: len(movies)}
}

func ids(movies []models.Movie) []int {
	out := make([]int, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func TestFilterThenSortScenario(t *testing.T) {
	state := catalog.NewListState()
	state.SetCanonical(page(
		models.Movie{ID: 1, VoteAverage: 9, ReleaseDate: "2021-01-01"},
		models.Movie{ID: 2, VoteAverage: 4, ReleaseDate: "1985-01-01"},
		models.Movie{ID: 3, VoteAverage: 7, ReleaseDate: "2015-01-01"},
	), "")

	state.SetFilters([]catalog.FilterOption{catalog.FilterRatingAbove5})
	state.SetSort(catalog.SortRatingDesc)

	require.Equal(t, []int{1, 3}, ids(state.Snapshot().Results))
}

func TestFilterCompositionIsOrderIndependent(t *testing.T) {
	movies := []models.Movie{
		{ID: 1, VoteAverage: 9, ReleaseDate: "2021-05-01"},
		{ID: 2, VoteAverage: 8, ReleaseDate: "1985-11-20"},
		{ID: 3, VoteAverage: 6, ReleaseDate: "2015-07-04"},
		{ID: 4, VoteAverage: 7.5, ReleaseDate: "2003-02-14"},
	}

	a := catalog.NewListState()
	a.SetCanonical(page(movies...), "")
	a.SetFilters([]catalog.FilterOption{catalog.FilterRatingAbove7, catalog.FilterYearAfter00})

	b := catalog.NewListState()
	b.SetCanonical(page(movies...), "")
	b.SetFilters([]catalog.FilterOption{catalog.FilterYearAfter00, catalog.FilterRatingAbove7})

	require.Equal(t, ids(a.Snapshot().Results), ids(b.Snapshot().Results))
	// Exactly the items satisfying both predicates.
	require.Equal(t, []int{1, 4}, ids(a.Snapshot().Results))
}

func TestSortIsStableOnTies(t *testing.T) {
	state := catalog.NewListState()
	state.SetCanonical(page(
		models.Movie{ID: 1, VoteAverage: 7},
		models.Movie{ID: 2, VoteAverage: 9},
		models.Movie{ID: 3, VoteAverage: 7},
		models.Movie{ID: 4, VoteAverage: 7},
	), "")

	state.SetSort(catalog.SortRatingDesc)

	// Equal ratings keep their pre-sort relative order.
	require.Equal(t, []int{2, 1, 3, 4}, ids(state.Snapshot().Results))
}

func TestSortByReleaseDateIsLexicographic(t *testing.T) {
	state := catalog.NewListState()
	state.SetCanonical(page(
		models.Movie{ID: 1, ReleaseDate: "1999-03-30"},
		models.Movie{ID: 2, ReleaseDate: "2021-12-01"},
		models.Movie{ID: 3, ReleaseDate: "2003-05-15"},
	), "")

	state.SetSort(catalog.SortDateDesc)
	require.Equal(t, []int{2, 3, 1}, ids(state.Snapshot().Results))

	state.SetSort(catalog.SortDateAsc)
	require.Equal(t, []int{1, 3, 2}, ids(state.Snapshot().Results))
}

func TestResetSortRestoresSourceOrder(t *testing.T) {
	state := catalog.NewListState()
	state.SetCanonical(page(
		models.Movie{ID: 5, VoteAverage: 1},
		models.Movie{ID: 6, VoteAverage: 9},
	), "")

	state.SetSort(catalog.SortRatingDesc)
	require.Equal(t, []int{6, 5}, ids(state.Snapshot().Results))

	state.ResetSort()
	require.Equal(t, []int{5, 6}, ids(state.Snapshot().Results))
}

func TestEmptyReleaseDateFailsYearFilter(t *testing.T) {
	state := catalog.NewListState()
	state.SetCanonical(page(
		models.Movie{ID: 1, ReleaseDate: ""},
		models.Movie{ID: 2, ReleaseDate: "garbled"},
		models.Movie{ID: 3, ReleaseDate: "1995-06-01"},
	), "")

	state.SetFilters([]catalog.FilterOption{catalog.FilterYearAfter90})

	// Unparseable dates count as year 0 and are excluded.
	require.Equal(t, []int{3}, ids(state.Snapshot().Results))
}

func TestClearingFiltersRestoresFullList(t *testing.T) {
	state := catalog.NewListState()
	state.SetCanonical(page(
		models.Movie{ID: 1, VoteAverage: 9},
		models.Movie{ID: 2, VoteAverage: 2},
	), "")

	state.SetFilters([]catalog.FilterOption{catalog.FilterRatingAbove8})
	require.Equal(t, []int{1}, ids(state.Snapshot().Results))

	state.SetFilters(nil)
	require.Equal(t, []int{1, 2}, ids(state.Snapshot().Results))
}

func TestSettingCanonicalReappliesActiveSelection(t *testing.T) {
	state := catalog.NewListState()
	state.SetFilters([]catalog.FilterOption{catalog.FilterRatingAbove7})
	state.SetSort(catalog.SortRatingAsc)

	state.SetCanonical(page(
		models.Movie{ID: 1, VoteAverage: 9},
		models.Movie{ID: 2, VoteAverage: 3},
		models.Movie{ID: 3, VoteAverage: 7.5},
	), "")

	require.Equal(t, []int{3, 1}, ids(state.Snapshot().Results))
}

func TestSnapshotCarriesReasonAndMetadata(t *testing.T) {
	state := catalog.NewListState()
	state.SetCanonical(models.MoviePage{
		Page: 3, TotalPages: 40, TotalResults: 791,
		Results: []models.Movie{{ID: 1}},
	}, "")

	snap := state.Snapshot()
	assert.Equal(t, 3, snap.Page)
	assert.Equal(t, 40, snap.TotalPages)
	assert.Equal(t, 791, snap.TotalResults)
	assert.Empty(t, snap.Reason)

	state.SetCanonical(page(), catalog.ReasonOffline)
	assert.Equal(t, catalog.ReasonOffline, state.Snapshot().Reason)
}

func TestParseSortAndFilterOptions(t *testing.T) {
	if _, ok := catalog.ParseSortOption("rating_desc"); !ok {
		t.Fatalf("expected rating_desc to parse")
	}
	if _, ok := catalog.ParseSortOption("shuffle"); ok {
		t.Fatalf("expected unknown sort to be rejected")
	}
	if _, ok := catalog.ParseFilterOption("year_2010"); !ok {
		t.Fatalf("expected year_2010 to parse")
	}
	if _, ok := catalog.ParseFilterOption("year_1800"); ok {
		t.Fatalf("expected unknown filter to be rejected")
	}
}

package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogSearchByName(t *testing.T) {
	catalog := NewPortCatalog()

	results := catalog.Search("barcelona", "", 20)
	require.Len(t, results, 1)
	require.Equal(t, "Barcelona", results[0].Name)
	require.Equal(t, "Mediterranean", results[0].Region)
}

func TestCatalogSearchByCountryAndRegion(t *testing.T) {
	catalog := NewPortCatalog()

	results := catalog.Search("greece", "", 20)
	require.Len(t, results, 2)

	results = catalog.Search("", "caribbean", 20)
	require.NotEmpty(t, results)
	for _, port := range results {
		require.Equal(t, "Caribbean", port.Region)
	}

	results = catalog.Search("nassau", "alaska", 20)
	require.Empty(t, results)
}

func TestCatalogSearchLimit(t *testing.T) {
	catalog := NewPortCatalog()

	results := catalog.Search("", "", 3)
	require.Len(t, results, 3)

	// Out-of-range limits fall back to sane bounds.
	results = catalog.Search("", "", 0)
	require.Len(t, results, 20)
	results = catalog.Search("", "", 500)
	require.LessOrEqual(t, len(results), 50)
}

func TestCatalogRegions(t *testing.T) {
	catalog := NewPortCatalog()

	regions := catalog.Regions()
	require.NotEmpty(t, regions)
	require.True(t, sort.StringsAreSorted(regions))
	require.Contains(t, regions, "Mediterranean")
	require.Contains(t, regions, "Caribbean")

	seen := make(map[string]bool)
	for _, r := range regions {
		require.False(t, seen[r], "duplicate region %s", r)
		seen[r] = true
	}
}

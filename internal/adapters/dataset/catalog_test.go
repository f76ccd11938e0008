package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.verdant.dev/verdant/internal/adapters/dataset"
)

func newCatalog(t *testing.T, cfg dataset.Config) *dataset.Catalog {
	t.Helper()
	return dataset.NewCatalog(newStore(t, cfg))
}

func TestCatalogList(t *testing.T) {
	base := t.TempDir()
	overlay := t.TempDir()
	writeFile(t, base, "nutrients/nutrient_guidelines.json", `{}`)
	writeFile(t, base, "ec_guidelines.json", `{}`)
	writeFile(t, base, "water/usage.yaml", `{}`)
	writeFile(t, base, "dataset_catalog.json", `{}`)
	writeFile(t, base, "README.md", "not a dataset")
	writeFile(t, overlay, "pests/aphid_thresholds.yml", `{}`)

	catalog := newCatalog(t, dataset.Config{BaseDir: base, OverlayDir: overlay})

	names, err := catalog.List()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ec_guidelines.json",
		"nutrients/nutrient_guidelines.json",
		"pests/aphid_thresholds.yml",
		"water/usage.yaml",
	}, names)
}

func TestCatalogList_LegacyAliasExposedBare(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "plants/temperature/frost_limits.json", `{}`)

	catalog := newCatalog(t, dataset.Config{BaseDir: base})

	names, err := catalog.List()
	require.NoError(t, err)

	assert.Contains(t, names, "plants/temperature/frost_limits.json")
	assert.Contains(t, names, "frost_limits.json")
}

func TestCatalogDescription_MergedAcrossOverlay(t *testing.T) {
	base := t.TempDir()
	overlay := t.TempDir()
	writeFile(t, base, "dataset_catalog.json",
		`{"ec_guidelines.json": "EC ranges", "ph_guidelines.json": "pH ranges"}`)
	writeFile(t, overlay, "dataset_catalog.json",
		`{"ec_guidelines.json": "EC ranges (site overrides)"}`)

	catalog := newCatalog(t, dataset.Config{BaseDir: base, OverlayDir: overlay})

	desc, err := catalog.Description("ec_guidelines.json")
	require.NoError(t, err)
	assert.Equal(t, "EC ranges (site overrides)", desc)

	desc, err = catalog.Description("ph_guidelines.json")
	require.NoError(t, err)
	assert.Equal(t, "pH ranges", desc)

	desc, err = catalog.Description("unknown.json")
	require.NoError(t, err)
	assert.Empty(t, desc)
}

func TestCatalogInfo(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "ec_guidelines.json", `{}`)
	writeFile(t, base, "undocumented.json", `{}`)
	writeFile(t, base, "dataset_catalog.json", `{"ec_guidelines.json": "EC ranges"}`)

	catalog := newCatalog(t, dataset.Config{BaseDir: base})

	info, err := catalog.Info()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"ec_guidelines.json": "EC ranges",
		"undocumented.json":  "",
	}, info)
}

func TestCatalogByCategory(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "nutrients/nutrient_guidelines.json", `{}`)
	writeFile(t, base, "nutrients/micronutrients.json", `{}`)
	writeFile(t, base, "pests/aphid_thresholds.json", `{}`)
	writeFile(t, base, "ec_guidelines.json", `{}`)

	catalog := newCatalog(t, dataset.Config{BaseDir: base})

	categories, err := catalog.ByCategory()
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"nutrients": {"nutrients/micronutrients.json", "nutrients/nutrient_guidelines.json"},
		"pests":     {"pests/aphid_thresholds.json"},
		"root":      {"ec_guidelines.json"},
	}, categories)
}

func TestCatalogSearch(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "ec_guidelines.json", `{}`)
	writeFile(t, base, "nutrients/nutrient_guidelines.json", `{}`)
	writeFile(t, base, "dataset_catalog.json",
		`{"ec_guidelines.json": "Electrical Conductivity ranges"}`)

	catalog := newCatalog(t, dataset.Config{BaseDir: base})

	// Case-insensitive match against the description.
	matches, err := catalog.Search("CONDUCTIVITY")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ec_guidelines.json": "Electrical Conductivity ranges"}, matches)

	// Match against the filename.
	matches, err = catalog.Search("nutrient")
	require.NoError(t, err)
	assert.Contains(t, matches, "nutrients/nutrient_guidelines.json")

	// Empty terms match nothing.
	matches, err = catalog.Search("")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCatalogRefresh_DropsDerivedCaches(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "ec_guidelines.json", `{}`)

	catalog := newCatalog(t, dataset.Config{BaseDir: base})

	names, err := catalog.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"ec_guidelines.json"}, names)

	// New files stay invisible until an explicit refresh.
	writeFile(t, base, "ph_guidelines.json", `{}`)
	names, err = catalog.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"ec_guidelines.json"}, names)

	catalog.Refresh()
	names, err = catalog.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"ec_guidelines.json", "ph_guidelines.json"}, names)
}

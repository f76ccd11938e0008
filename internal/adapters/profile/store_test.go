package profile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.verdant.dev/verdant/internal/adapters/profile"
	"go.verdant.dev/verdant/internal/core/domain"
)

func tomatoProfile() domain.Profile {
	return domain.Profile{
		PlantID:   "tomato_1",
		PlantType: "tomato",
		Stage:     "flowering",
		Thresholds: map[string]float64{
			"moisture_min": 30,
			"moisture_max": 60,
		},
		Sensors: map[string]string{
			"moisture": "sensor.tomato_1_moisture",
		},
	}
}

func TestStore_PutGet(t *testing.T) {
	store, err := profile.NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(tomatoProfile()))

	got, err := store.Get("tomato_1")
	require.NoError(t, err)
	assert.Equal(t, tomatoProfile(), *got)
}

func TestStore_GetMissing(t *testing.T) {
	store, err := profile.NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("nope")
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
}

func TestStore_PutInvalid(t *testing.T) {
	store, err := profile.NewStore(t.TempDir())
	require.NoError(t, err)

	err = store.Put(domain.Profile{PlantID: "p1"})
	assert.True(t, errors.Is(err, domain.ErrInvalidProfile))
}

func TestStore_List(t *testing.T) {
	store, err := profile.NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(domain.Profile{PlantID: "b", PlantType: "basil"}))
	require.NoError(t, store.Put(domain.Profile{PlantID: "a", PlantType: "tomato"}))

	ids, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := profile.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(tomatoProfile()))

	reopened, err := profile.NewStore(dir)
	require.NoError(t, err)

	got, err := reopened.Get("tomato_1")
	require.NoError(t, err)
	assert.Equal(t, tomatoProfile(), *got)
}

func TestStore_UpdateThresholds(t *testing.T) {
	dir := t.TempDir()

	store, err := profile.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(tomatoProfile()))

	updated, err := store.UpdateThresholds("tomato_1", map[string]float64{
		"moisture_min": 35,
		"ec_min":       1.2,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"moisture_min": 35,
		"moisture_max": 60,
		"ec_min":       1.2,
	}, updated.Thresholds)

	reopened, err := profile.NewStore(dir)
	require.NoError(t, err)
	got, err := reopened.Get("tomato_1")
	require.NoError(t, err)
	assert.Equal(t, updated.Thresholds, got.Thresholds)
}

func TestStore_UpdateThresholdsMissing(t *testing.T) {
	store, err := profile.NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.UpdateThresholds("nope", map[string]float64{"x": 1})
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
}

package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emeralddossou/detecporc/internal/models"
)

func f64(v float64) *float64 { return &v }

func samplePoints() []models.Point {
	return []models.Point{
		{ID: 2, Name: "Porc Express", Lat: 6.5100, Lng: 2.6070, Address: "Rue du Port"},
		{ID: 1, Name: "Boucherie Porc d'Or", Lat: 6.4969, Lng: 2.6036, Address: "Quartier Zogbo", Comment: "porc frais"},
	}
}

func TestRankOrdersByDistance(t *testing.T) {
	origin := &models.Position{Lat: 6.4969, Lng: 2.6036}

	ranked := Rank(samplePoints(), origin, models.Filters{})
	require.Len(t, ranked, 2)

	assert.Equal(t, 1, ranked[0].ID)
	require.NotNil(t, ranked[0].Distance)
	assert.Zero(t, *ranked[0].Distance)

	assert.Equal(t, 2, ranked[1].ID)
	require.NotNil(t, ranked[1].Distance)
	assert.Greater(t, *ranked[1].Distance, 0.0)
}

func TestRankWithoutOriginPreservesOrder(t *testing.T) {
	ranked := Rank(samplePoints(), nil, models.Filters{})
	require.Len(t, ranked, 2)
	assert.Equal(t, 2, ranked[0].ID)
	assert.Equal(t, 1, ranked[1].ID)
	assert.Nil(t, ranked[0].Distance)
	assert.Nil(t, ranked[1].Distance)
}

func TestRankQueryMatchesNameAddressComment(t *testing.T) {
	ranked := Rank(samplePoints(), nil, models.Filters{Query: "ZOGBO"})
	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].ID)

	ranked = Rank(samplePoints(), nil, models.Filters{Query: "frais"})
	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].ID)

	ranked = Rank(samplePoints(), nil, models.Filters{Query: "introuvable"})
	assert.Empty(t, ranked)
}

func TestRankZeroMaxDistanceKeepsOnlyCoincidentPoints(t *testing.T) {
	// Origin not coincident with any point: everything is excluded.
	origin := &models.Position{Lat: 6.4000, Lng: 2.5000}
	ranked := Rank(samplePoints(), origin, models.Filters{MaxDistanceKm: f64(0)})
	assert.Empty(t, ranked)

	// Origin exactly on a point: that point survives a 0 km cap.
	origin = &models.Position{Lat: 6.4969, Lng: 2.6036}
	ranked = Rank(samplePoints(), origin, models.Filters{MaxDistanceKm: f64(0)})
	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].ID)
}

func TestRankMaxDistanceWithoutOriginExcludesAll(t *testing.T) {
	// Distance is unknown without an origin, so a finite cap matches nothing.
	ranked := Rank(samplePoints(), nil, models.Filters{MaxDistanceKm: f64(10)})
	assert.Empty(t, ranked)
}

func TestRankMaxDistanceFiltersFarPoints(t *testing.T) {
	origin := &models.Position{Lat: 6.4969, Lng: 2.6036}
	ranked := Rank(samplePoints(), origin, models.Filters{MaxDistanceKm: f64(1)})
	require.Len(t, ranked, 1)
	assert.Equal(t, 1, ranked[0].ID)
}

func TestRankEmptyInput(t *testing.T) {
	ranked := Rank(nil, &models.Position{Lat: 1, Lng: 1}, models.Filters{})
	assert.Empty(t, ranked)
}

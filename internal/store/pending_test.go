package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emeralddossou/detecporc/internal/apperr"
	"github.com/Emeralddossou/detecporc/internal/models"
)

func newPendingStore(t *testing.T) *PendingStore {
	t.Helper()
	s, err := NewPendingStore(filepath.Join(t.TempDir(), "pending.json"))
	require.NoError(t, err)
	return s
}

func TestSubmitAssignsQueueLocalID(t *testing.T) {
	s := newPendingStore(t)

	s1, err := s.Submit(models.PointDraft{Name: "Le Coin des Cochons", Lat: f64(6.499), Lng: f64(2.593)})
	require.NoError(t, err)
	assert.NotEmpty(t, s1.ID)
	assert.False(t, s1.SubmittedAt.IsZero())

	s2, err := s.Submit(models.PointDraft{Name: "Porc & Co", Lat: f64(6.4979), Lng: f64(2.6065)})
	require.NoError(t, err)
	assert.NotEqual(t, s1.ID, s2.ID)

	pending, err := s.List()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, s1.ID, pending[0].ID)
	assert.Equal(t, s2.ID, pending[1].ID)
}

func TestSubmitValidatesLikeCreate(t *testing.T) {
	s := newPendingStore(t)

	_, err := s.Submit(models.PointDraft{Name: "", Lat: f64(1), Lng: f64(1)})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = s.Submit(models.PointDraft{Name: "X", Lat: f64(1), Lng: nil})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRemoveReturnsRecordAndIsAbsorbing(t *testing.T) {
	s := newPendingStore(t)

	submitted, err := s.Submit(models.PointDraft{Name: "Marche Akpakpa", Lat: f64(6.49), Lng: f64(2.598)})
	require.NoError(t, err)

	removed, err := s.Remove(submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, submitted, removed)

	pending, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, pending)

	// The record ceases to exist; a second removal is a NotFound.
	_, err = s.Remove(submitted.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

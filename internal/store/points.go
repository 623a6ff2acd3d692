// Package store persists the canonical point set and the moderation
// queue, each as one pretty-printed JSON document on disk. Every mutating
// call rewrites its document atomically before returning, so a mutation
// is never observable without its persisted write. Mutations on a store
// are serialized by a mutex; one mutation is in flight at a time.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/Emeralddossou/detecporc/internal/apperr"
	"github.com/Emeralddossou/detecporc/internal/models"
)

// PointStore owns the canonical point collection.
type PointStore struct {
	path string
	mu   sync.Mutex
}

// NewPointStore opens the store at path, creating the document with the
// seed catalog when it does not exist yet.
func NewPointStore(path string) (*PointStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: mkdir %s: %v", apperr.ErrStorage, filepath.Dir(path), err)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := writeDoc(path, defaultPoints); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", apperr.ErrStorage, path, err)
	}
	return &PointStore{path: path}, nil
}

// List returns all points in storage order.
func (s *PointStore) List() ([]models.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Create validates the draft, assigns the next id and appends the point.
func (s *PointStore) Create(draft models.PointDraft) (models.Point, error) {
	if err := validateDraft(draft.Name, draft.Lat, draft.Lng); err != nil {
		return models.Point{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	points, err := s.load()
	if err != nil {
		return models.Point{}, err
	}

	point := models.Point{
		ID:      nextID(points),
		Name:    draft.Name,
		Lat:     *draft.Lat,
		Lng:     *draft.Lng,
		Address: draft.Address,
		Phone:   draft.Phone,
		Hours:   draft.Hours,
		Comment: draft.Comment,
	}
	points = append(points, point)

	if err := writeDoc(s.path, points); err != nil {
		return models.Point{}, err
	}
	return point, nil
}

// Update merges the patch over the stored record. The id is immutable and
// stays pinned to the argument regardless of the patch content. The
// merged record passes the same validation as Create.
func (s *PointStore) Update(id int, patch models.PointPatch) (models.Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	points, err := s.load()
	if err != nil {
		return models.Point{}, err
	}

	idx := -1
	for i := range points {
		if points[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Point{}, fmt.Errorf("%w: point %d", apperr.ErrNotFound, id)
	}

	merged := points[idx]
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Lat != nil {
		merged.Lat = *patch.Lat
	}
	if patch.Lng != nil {
		merged.Lng = *patch.Lng
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.Hours != nil {
		merged.Hours = *patch.Hours
	}
	if patch.Comment != nil {
		merged.Comment = *patch.Comment
	}
	merged.ID = id

	if err := validateDraft(merged.Name, &merged.Lat, &merged.Lng); err != nil {
		return models.Point{}, err
	}

	points[idx] = merged
	if err := writeDoc(s.path, points); err != nil {
		return models.Point{}, err
	}
	return merged, nil
}

// Delete removes the point with the given id.
func (s *PointStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	points, err := s.load()
	if err != nil {
		return err
	}

	kept := points[:0:0]
	for _, p := range points {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(points) {
		return fmt.Errorf("%w: point %d", apperr.ErrNotFound, id)
	}
	return writeDoc(s.path, kept)
}

func (s *PointStore) load() ([]models.Point, error) {
	var points []models.Point
	if err := readDoc(s.path, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func nextID(points []models.Point) int {
	next := 1
	for _, p := range points {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

func validateDraft(name string, lat, lng *float64) error {
	if name == "" || lat == nil || lng == nil {
		return fmt.Errorf("%w: name, lat and lng are required", apperr.ErrValidation)
	}
	if !isFinite(*lat) || !isFinite(*lng) {
		return fmt.Errorf("%w: lat and lng must be finite", apperr.ErrValidation)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

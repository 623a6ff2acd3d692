package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Emeralddossou/detecporc/internal/apperr"
	"github.com/Emeralddossou/detecporc/internal/models"
)

// PendingStore owns the queue of suggestions awaiting moderation.
// Suggestions are only ever appended or removed, never edited in place.
type PendingStore struct {
	path string
	mu   sync.Mutex
}

// NewPendingStore opens the queue at path, creating an empty document
// when none exists yet.
func NewPendingStore(path string) (*PendingStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: mkdir %s: %v", apperr.ErrStorage, filepath.Dir(path), err)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := writeDoc(path, []models.Suggestion{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", apperr.ErrStorage, path, err)
	}
	return &PendingStore{path: path}, nil
}

// List returns all pending suggestions in submission order.
func (s *PendingStore) List() ([]models.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Submit validates the draft like PointStore.Create, assigns a
// queue-local id and appends the suggestion.
func (s *PendingStore) Submit(draft models.PointDraft) (models.Suggestion, error) {
	if err := validateDraft(draft.Name, draft.Lat, draft.Lng); err != nil {
		return models.Suggestion{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.load()
	if err != nil {
		return models.Suggestion{}, err
	}

	suggestion := models.Suggestion{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Lat:         *draft.Lat,
		Lng:         *draft.Lng,
		Address:     draft.Address,
		Phone:       draft.Phone,
		Hours:       draft.Hours,
		Comment:     draft.Comment,
		SubmittedAt: time.Now().UTC(),
	}
	pending = append(pending, suggestion)

	if err := writeDoc(s.path, pending); err != nil {
		return models.Suggestion{}, err
	}
	return suggestion, nil
}

// Remove takes the suggestion out of the queue and returns it. Both
// approval and rejection go through here; the queue keeps no record of
// the decision.
func (s *PendingStore) Remove(id string) (models.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.load()
	if err != nil {
		return models.Suggestion{}, err
	}

	idx := -1
	for i := range pending {
		if pending[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Suggestion{}, fmt.Errorf("%w: suggestion %s", apperr.ErrNotFound, id)
	}

	removed := pending[idx]
	pending = append(pending[:idx], pending[idx+1:]...)

	if err := writeDoc(s.path, pending); err != nil {
		return models.Suggestion{}, err
	}
	return removed, nil
}

func (s *PendingStore) load() ([]models.Suggestion, error) {
	var pending []models.Suggestion
	if err := readDoc(s.path, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

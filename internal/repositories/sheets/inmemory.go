package sheets

import (
	"context"
	"sync"

	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
	apperr "github.com/maxmeneghini/D20CharSheet/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the sheet repository.
// It is the default store; a sheet lives only for the editing session, there
// is no durable persistence.
type InMemoryRepository struct {
	mu     sync.RWMutex
	sheets map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		sheets: make(map[string]*character.Character),
	}
}

// Create stores a new sheet
func (r *InMemoryRepository) Create(ctx context.Context, sheet *character.Character) error {
	if sheet == nil {
		return apperr.InvalidArgument("sheet cannot be nil")
	}

	if sheet.ID == "" {
		return apperr.InvalidArgument("sheet ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sheets[sheet.ID]; exists {
		return apperr.AlreadyExistsf("sheet with ID '%s' already exists", sheet.ID).
			WithMeta("sheet_id", sheet.ID)
	}

	// Store a copy so callers cannot mutate stored state
	r.sheets[sheet.ID] = sheet.Clone()

	return nil
}

// Get retrieves a sheet by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("sheet ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sheet, exists := r.sheets[id]
	if !exists {
		return nil, apperr.NotFoundf("sheet with ID '%s' not found", id).
			WithMeta("sheet_id", id)
	}

	return sheet.Clone(), nil
}

// GetByOwner retrieves all sheets for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*character.Character
	for _, sheet := range r.sheets {
		if sheet.OwnerID == ownerID {
			result = append(result, sheet.Clone())
		}
	}

	return result, nil
}

// Update updates an existing sheet
func (r *InMemoryRepository) Update(ctx context.Context, sheet *character.Character) error {
	if sheet == nil {
		return apperr.InvalidArgument("sheet cannot be nil")
	}

	if sheet.ID == "" {
		return apperr.InvalidArgument("sheet ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sheets[sheet.ID]; !exists {
		return apperr.NotFoundf("sheet with ID '%s' not found", sheet.ID).
			WithMeta("sheet_id", sheet.ID)
	}

	r.sheets[sheet.ID] = sheet.Clone()

	return nil
}

// Delete removes a sheet
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("sheet ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sheets[id]; !exists {
		return apperr.NotFoundf("sheet with ID '%s' not found", id).
			WithMeta("sheet_id", id)
	}

	delete(r.sheets, id)
	return nil
}

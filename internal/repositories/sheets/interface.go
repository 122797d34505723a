package sheets

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interface.go

import (
	"context"

	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
)

// Repository stores sheet records for the duration of an editing session.
// Implementations are transient stores; there is no durable persistence.
type Repository interface {
	// Create stores a new sheet
	Create(ctx context.Context, sheet *character.Character) error

	// Get retrieves a sheet by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// GetByOwner retrieves all sheets for a specific owner
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)

	// Update updates an existing sheet
	Update(ctx context.Context, sheet *character.Character) error

	// Delete removes a sheet
	Delete(ctx context.Context, id string) error
}

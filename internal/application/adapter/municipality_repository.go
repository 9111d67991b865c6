// Package adapter defines the interfaces (ports) used by the application layer.
package adapter

import (
	"context"

	"github.com/factoring-simulator/backend/internal/domain/valueobject"
)

// MunicipalityRepository defines the interface for municipality ISS rate lookups.
type MunicipalityRepository interface {
	// FindByCode retrieves a municipality by its IBGE code. It returns nil without
	// error when the municipality has no configured factoring ISS rate.
	FindByCode(ctx context.Context, code string) (*valueobject.Municipality, error)
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/factoring-simulator/backend/internal/application/adapter"
	"github.com/factoring-simulator/backend/internal/domain/valueobject"
	"github.com/factoring-simulator/backend/internal/integration/persistence/model"
)

// municipalityRepository implements the adapter.MunicipalityRepository interface.
type municipalityRepository struct {
	db *gorm.DB
}

// NewMunicipalityRepository creates a new municipality repository instance.
func NewMunicipalityRepository(db *gorm.DB) adapter.MunicipalityRepository {
	return &municipalityRepository{
		db: db,
	}
}

// FindByCode retrieves a municipality by its IBGE code. An unregistered municipality
// yields (nil, nil) so the caller can apply the default ISS rate.
func (r *municipalityRepository) FindByCode(ctx context.Context, code string) (*valueobject.Municipality, error) {
	var municipalityModel model.MunicipalityModel
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&municipalityModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	rate, err := valueobject.NewPercentageFromPercent(municipalityModel.ISSRate)
	if err != nil {
		return nil, err
	}

	return &valueobject.Municipality{
		Code:                municipalityModel.Code,
		Name:                municipalityModel.Name,
		ISSRateForFactoring: rate,
	}, nil
}

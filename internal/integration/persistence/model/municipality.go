// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MunicipalityModel represents the municipalities table: the per-municipality ISS
// rate registry for factoring services, keyed by IBGE code.
type MunicipalityModel struct {
	Code      string          `gorm:"type:varchar(10);primaryKey"` // IBGE code
	Name      string          `gorm:"type:varchar(100);not null"`
	ISSRate   decimal.Decimal `gorm:"type:decimal(6,4);not null"` // percent notation, e.g. 3.0000
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MunicipalityModel.
func (MunicipalityModel) TableName() string {
	return "municipalities"
}

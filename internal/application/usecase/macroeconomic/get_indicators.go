// Package macroeconomic contains macroeconomic-indicator use cases.
package macroeconomic

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/factoring-simulator/backend/internal/application/adapter"
)

const (
	// indicatorsCacheKey is the cache key for the serialized indicator snapshot.
	indicatorsCacheKey = "macro:indicators"
	// indicatorsCacheTTL bounds how long a cached snapshot is served.
	indicatorsCacheTTL = 1 * time.Hour
)

// Indicators is the current Brazilian macroeconomic snapshot (IBGE, BCB, Focus/BCB).
type Indicators struct {
	IPCA                 float64 `json:"ipca"`                   // year-over-year IPCA inflation, percent
	IPCAExpected12M      float64 `json:"ipca_expected_12m"`      // Focus consensus, next 12 months
	Selic                float64 `json:"selic"`                  // annual Selic rate, percent
	RealRate             float64 `json:"real_rate"`              // ex-ante real rate, percent
	InflationTarget      float64 `json:"inflation_target"`       // official BCB target
	InflationTargetUpper float64 `json:"inflation_target_upper"` // target + 1.5
	InflationTargetLower float64 `json:"inflation_target_lower"` // target - 1.5
	LastUpdate           string  `json:"last_update"`
}

// currentIndicators is the snapshot as of the October 2025 inflation report. A live
// BCB/Focus feed would replace this constant; the cache in front of it stays.
var currentIndicators = Indicators{
	IPCA:                 5.1,
	IPCAExpected12M:      4.8,
	Selic:                15.0,
	RealRate:             9.8,
	InflationTarget:      3.0,
	InflationTargetUpper: 4.5,
	InflationTargetLower: 1.5,
	LastUpdate:           "2025-10-06",
}

// GetIndicatorsOutput represents the output of an indicator retrieval.
type GetIndicatorsOutput struct {
	Indicators Indicators
}

// GetIndicatorsUseCase serves the macroeconomic indicator snapshot, cache-aside.
type GetIndicatorsUseCase struct {
	cache adapter.IndicatorCache
}

// NewGetIndicatorsUseCase creates a new GetIndicatorsUseCase instance.
// The cache is optional; without it every call serves the source snapshot directly.
func NewGetIndicatorsUseCase(cache adapter.IndicatorCache) *GetIndicatorsUseCase {
	return &GetIndicatorsUseCase{
		cache: cache,
	}
}

// Execute returns the current indicators, serving from cache when possible.
// Cache failures are logged and bypassed, never surfaced to the caller.
func (uc *GetIndicatorsUseCase) Execute(ctx context.Context) (*GetIndicatorsOutput, error) {
	if uc.cache != nil {
		if payload, err := uc.cache.Get(ctx, indicatorsCacheKey); err != nil {
			slog.Warn("Indicator cache read failed", "error", err)
		} else if payload != "" {
			var cached Indicators
			if err := json.Unmarshal([]byte(payload), &cached); err == nil {
				return &GetIndicatorsOutput{Indicators: cached}, nil
			}
			slog.Warn("Discarding malformed cached indicators payload")
		}
	}

	indicators := currentIndicators

	if uc.cache != nil {
		payload, err := json.Marshal(indicators)
		if err == nil {
			if err := uc.cache.Set(ctx, indicatorsCacheKey, string(payload), indicatorsCacheTTL); err != nil {
				slog.Warn("Indicator cache write failed", "error", err)
			}
		}
	}

	return &GetIndicatorsOutput{Indicators: indicators}, nil
}

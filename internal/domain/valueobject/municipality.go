// Package valueobject contains domain value objects for the Factoring Simulator system.
package valueobject

// Municipality carries the municipal data relevant to the ISS levy.
// A zero ISSRateForFactoring means the rate is not configured for the municipality
// and the statutory default applies (ISS cannot legally be below 2%).
type Municipality struct {
	Code                string // IBGE code
	Name                string
	ISSRateForFactoring Percentage
}

// Package entity defines the core business entities for the domain layer.
package entity

// EconomicSector represents the economic sector of the creditor's business.
type EconomicSector string

const (
	SectorRetail       EconomicSector = "retail"
	SectorServices     EconomicSector = "services"
	SectorIndustry     EconomicSector = "industry"
	SectorConstruction EconomicSector = "construction"
	SectorHealthcare   EconomicSector = "healthcare"
	SectorAgriculture  EconomicSector = "agriculture"
	SectorTechnology   EconomicSector = "technology"
	SectorOther        EconomicSector = "other"
)

// FactoringModality represents the contractual modality of the factoring operation.
type FactoringModality string

const (
	// ModalityWithRecourse is conventional factoring with recourse against the client.
	ModalityWithRecourse FactoringModality = "with_recourse"
	// ModalityWithoutRecourse transfers the default risk to the factoring company.
	ModalityWithoutRecourse FactoringModality = "without_recourse"
	// ModalityMaturity is maturity factoring: payment guarantee only, no funds advanced.
	ModalityMaturity FactoringModality = "maturity"
	// ModalityTrustee includes full financial administration of the client's receivables.
	ModalityTrustee FactoringModality = "trustee"
	// ModalityInternational covers cross-border receivables.
	ModalityInternational FactoringModality = "international"
	// ModalityRawMaterial is factoring de matéria prima.
	ModalityRawMaterial FactoringModality = "raw_material"
)

// RiskProfile represents the internal risk classification of the client (cedente).
type RiskProfile string

const (
	RiskProfileA RiskProfile = "A"
	RiskProfileB RiskProfile = "B"
	RiskProfileC RiskProfile = "C"
	RiskProfileD RiskProfile = "D"
	RiskProfileE RiskProfile = "E"
)

// CreditRating represents the credit rating of the debtor (sacado).
type CreditRating string

const (
	CreditRatingAAA CreditRating = "AAA"
	CreditRatingAA  CreditRating = "AA"
	CreditRatingA   CreditRating = "A"
	CreditRatingBBB CreditRating = "BBB"
	CreditRatingBB  CreditRating = "BB"
	CreditRatingB   CreditRating = "B"
	CreditRatingCCC CreditRating = "CCC"
)

// TaxRegime represents the corporate tax regime of the factoring company.
// Lucro Real is the only option for factoring companies per Lei 9.718/98 art. 14;
// Simples Nacional and Lucro Presumido are prohibited for fomento mercantil.
type TaxRegime string

const (
	TaxRegimeLucroReal TaxRegime = "lucro_real"
)

// OperationVolume classifies the operation size by face value.
type OperationVolume string

const (
	VolumeSmall  OperationVolume = "small"  // below R$ 50,000
	VolumeMedium OperationVolume = "medium" // below R$ 500,000
	VolumeLarge  OperationVolume = "large"
)

// IOFEntityType represents the IOF taxpayer classification of the party selling
// the credit rights (Instrução Normativa RFB 1.543/2015).
type IOFEntityType string

const (
	// IOFEntityIndividual is a pessoa física.
	IOFEntityIndividual IOFEntityType = "pessoa_fisica"
	// IOFEntityLegalEntity is a pessoa jurídica, the most common case.
	IOFEntityLegalEntity IOFEntityType = "pessoa_juridica"
	// IOFEntitySimplesSmall is a Simples Nacional company in operations below R$ 30,000.
	IOFEntitySimplesSmall IOFEntityType = "simples_nacional_small"
)

// ValidEconomicSector reports whether the given sector is a known variant.
func ValidEconomicSector(s EconomicSector) bool {
	switch s {
	case SectorRetail, SectorServices, SectorIndustry, SectorConstruction,
		SectorHealthcare, SectorAgriculture, SectorTechnology, SectorOther:
		return true
	}
	return false
}

// ValidFactoringModality reports whether the given modality is a known variant.
func ValidFactoringModality(m FactoringModality) bool {
	switch m {
	case ModalityWithRecourse, ModalityWithoutRecourse, ModalityMaturity,
		ModalityTrustee, ModalityInternational, ModalityRawMaterial:
		return true
	}
	return false
}

// ValidRiskProfile reports whether the given risk profile is a known variant.
func ValidRiskProfile(p RiskProfile) bool {
	switch p {
	case RiskProfileA, RiskProfileB, RiskProfileC, RiskProfileD, RiskProfileE:
		return true
	}
	return false
}

// ValidCreditRating reports whether the given credit rating is a known variant.
func ValidCreditRating(r CreditRating) bool {
	switch r {
	case CreditRatingAAA, CreditRatingAA, CreditRatingA, CreditRatingBBB,
		CreditRatingBB, CreditRatingB, CreditRatingCCC:
		return true
	}
	return false
}

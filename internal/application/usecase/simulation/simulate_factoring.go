// Package simulation contains factoring-simulation use cases.
package simulation

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/factoring-simulator/backend/internal/application/adapter"
	"github.com/factoring-simulator/backend/internal/domain/entity"
	domainerror "github.com/factoring-simulator/backend/internal/domain/error"
	"github.com/factoring-simulator/backend/internal/domain/valueobject"
)

// Volume classification thresholds by face value, in BRL.
var (
	mediumVolumeThreshold = decimal.NewFromInt(50000)
	largeVolumeThreshold  = decimal.NewFromInt(500000)
)

// daysPerMonth converts days to maturity into a continuous term in months.
var daysPerMonth = decimal.NewFromInt(30)

// dateLayout is the accepted ISO-8601 date format for input dates.
const dateLayout = "2006-01-02"

// SimulateFactoringInput represents the input for a factoring simulation.
type SimulateFactoringInput struct {
	DuplicataNumber string
	IssueDate       string // ISO-8601 date
	DueDate         string // ISO-8601 date
	FaceValue       decimal.Decimal

	DebtorName         string
	DebtorDocument     string
	DebtorCreditRating entity.CreditRating

	CreditorName     string
	CreditorDocument string

	EconomicSector    entity.EconomicSector
	Modality          entity.FactoringModality
	ClientRiskProfile entity.RiskProfile
	TaxRegime         entity.TaxRegime
	MunicipalityCode  string
	MunicipalityName  string
}

// SimulateFactoringOutput represents the fully resolved simulation breakdown.
type SimulateFactoringOutput struct {
	SimulationID    string
	DuplicataNumber string
	FaceValue       float64
	DueDate         string
	DaysToMaturity  int
	TermInMonths    float64
	DebtorName      string
	DebtorDocument  string

	RateCalculation RateCalculationOutput
	TaxCalculations TaxCalculationsOutput
	NetCalculation  NetCalculationOutput

	SimulatedAt time.Time
}

// RateCalculationOutput carries the rate composition figures, in percent notation.
type RateCalculationOutput struct {
	BaseMonthlyRate     float64
	RiskAdjustment      float64
	ModalityAdjustment  float64
	VolumeDiscount      float64
	FinalMonthlyRate    float64
	EffectiveAnnualRate float64
	DesagioPercentage   float64
	DesagioAmount       float64
}

// TaxDetailOutput carries one tax computation: base, rate (percent) and amount.
type TaxDetailOutput struct {
	TaxBase float64
	Rate    float64
	Amount  float64
}

// IOFDetailOutput carries the richer IOF breakdown.
type IOFDetailOutput struct {
	TaxBase           float64
	DailyRate         float64
	FixedRate         float64
	DailyIOF          float64
	FixedIOF          float64
	Amount            float64
	DaysUntilMaturity int
}

// TaxCalculationsOutput aggregates the six tax computations.
type TaxCalculationsOutput struct {
	ISS              TaxDetailOutput
	PIS              TaxDetailOutput
	COFINS           TaxDetailOutput
	IRPJ             TaxDetailOutput
	CSLL             TaxDetailOutput
	IOF              IOFDetailOutput
	TotalTaxAmount   float64
	EffectiveTaxRate float64
}

// NetCalculationOutput carries the final settlement figures.
type NetCalculationOutput struct {
	DuplicataFaceValue float64
	TotalDesagio       float64
	TotalTaxes         float64
	NetAmount          float64
	EffectiveDiscount  float64
}

// SimulateFactoringUseCase handles the factoring simulation pipeline.
type SimulateFactoringUseCase struct {
	simulationRepo   adapter.SimulationRepository
	municipalityRepo adapter.MunicipalityRepository
	now              func() time.Time
}

// NewSimulateFactoringUseCase creates a new SimulateFactoringUseCase instance.
// Both repositories are optional: without them the use case is a pure calculation.
func NewSimulateFactoringUseCase(
	simulationRepo adapter.SimulationRepository,
	municipalityRepo adapter.MunicipalityRepository,
) *SimulateFactoringUseCase {
	return &SimulateFactoringUseCase{
		simulationRepo:   simulationRepo,
		municipalityRepo: municipalityRepo,
		now:              time.Now,
	}
}

// Execute runs the simulation: it validates the input, composes the discount rate,
// computes the six taxes and nets everything against the face value. The use case
// either returns a fully valid output or an error; nothing is returned half-computed.
func (uc *SimulateFactoringUseCase) Execute(ctx context.Context, input SimulateFactoringInput) (*SimulateFactoringOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	issueDate, dueDate, err := uc.parseDates(input)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	daysToMaturity := daysBetween(now, dueDate)
	termInMonths := decimal.NewFromInt(int64(daysToMaturity)).Div(daysPerMonth)

	if daysToMaturity <= 0 {
		return nil, domainerror.NewSimulationError(
			domainerror.ErrCodeDueDateNotInFuture,
			"due date must be after today",
			domainerror.ErrDueDateNotInFuture,
		)
	}
	if input.IssueDate != "" && daysBetween(issueDate, dueDate) <= 0 {
		return nil, domainerror.NewSimulationError(
			domainerror.ErrCodeDueDateBeforeIssueDate,
			"due date must be after the issue date",
			domainerror.ErrDueDateBeforeIssueDate,
		)
	}

	faceValue := valueobject.NewMoney(input.FaceValue)
	operationVolume := classifyOperationVolume(input.FaceValue)
	municipality := uc.resolveMunicipality(ctx, input)

	rateCalculation, err := valueobject.NewRateCalculation(
		faceValue,
		termInMonths,
		input.EconomicSector,
		input.ClientRiskProfile,
		input.DebtorCreditRating,
		input.Modality,
		operationVolume,
	)
	if err != nil {
		return nil, uc.wrapUnexpected(err)
	}

	// Preliminary net amount (before taxes) is the IOF base: IOF needs the deságio
	// resolved but must be known before the final net amount.
	preliminaryNetAmount, err := faceValue.Subtract(rateCalculation.DesagioAmount)
	if err != nil {
		return nil, uc.wrapUnexpected(err)
	}

	taxCalculations, err := valueobject.NewTaxCalculations(
		rateCalculation.DesagioAmount,
		faceValue,
		preliminaryNetAmount,
		daysToMaturity,
		input.TaxRegime,
		municipality,
	)
	if err != nil {
		return nil, uc.wrapUnexpected(err)
	}

	netCalculation, err := valueobject.NewNetCalculation(
		faceValue,
		rateCalculation.DesagioAmount,
		taxCalculations.TotalTaxAmount,
	)
	if err != nil {
		return nil, uc.wrapUnexpected(err)
	}

	if !netCalculation.NetAmount.IsPositive() {
		return nil, domainerror.NewSimulationError(
			domainerror.ErrCodeNonViableOperation,
			"simulation parameters produce a zero or negative net amount",
			domainerror.ErrNonViableOperation,
		)
	}

	record := uc.buildRecord(input, issueDate, dueDate, daysToMaturity, termInMonths,
		operationVolume, rateCalculation, taxCalculations, netCalculation)
	uc.storeRecord(ctx, record)

	output := buildOutput(input, record, daysToMaturity, termInMonths,
		rateCalculation, taxCalculations, netCalculation)
	return output, nil
}

// validateInput applies the caller-correctable validations.
func (uc *SimulateFactoringUseCase) validateInput(input SimulateFactoringInput) error {
	if !input.FaceValue.IsPositive() {
		return domainerror.NewSimulationError(
			domainerror.ErrCodeNonPositiveFaceValue,
			"face value must be greater than zero",
			domainerror.ErrNonPositiveFaceValue,
		)
	}
	if input.DueDate == "" {
		return domainerror.NewSimulationError(
			domainerror.ErrCodeMissingDueDate,
			"due date is required",
			domainerror.ErrMissingDueDate,
		)
	}
	if input.TaxRegime != "" && input.TaxRegime != entity.TaxRegimeLucroReal {
		return domainerror.NewSimulationError(
			domainerror.ErrCodeInvalidTaxRegime,
			"factoring companies must use the lucro real tax regime",
			domainerror.ErrInvalidTaxRegime,
		)
	}
	if !entity.ValidEconomicSector(input.EconomicSector) {
		return domainerror.NewSimulationError(
			domainerror.ErrCodeMissingFields,
			"unknown economic sector",
			nil,
		)
	}
	if !entity.ValidFactoringModality(input.Modality) {
		return domainerror.NewSimulationError(
			domainerror.ErrCodeMissingFields,
			"unknown factoring modality",
			nil,
		)
	}
	if !entity.ValidRiskProfile(input.ClientRiskProfile) {
		return domainerror.NewSimulationError(
			domainerror.ErrCodeMissingFields,
			"unknown client risk profile",
			nil,
		)
	}
	if !entity.ValidCreditRating(input.DebtorCreditRating) {
		return domainerror.NewSimulationError(
			domainerror.ErrCodeMissingFields,
			"unknown debtor credit rating",
			nil,
		)
	}
	return nil
}

// parseDates parses the ISO date strings of the input.
func (uc *SimulateFactoringUseCase) parseDates(input SimulateFactoringInput) (time.Time, time.Time, error) {
	dueDate, err := time.Parse(dateLayout, input.DueDate)
	if err != nil {
		return time.Time{}, time.Time{}, domainerror.NewSimulationError(
			domainerror.ErrCodeInvalidDateFormat,
			"due date must be an ISO-8601 date (YYYY-MM-DD)",
			domainerror.ErrInvalidDateFormat,
		)
	}

	issueDate := dueDate
	if input.IssueDate != "" {
		issueDate, err = time.Parse(dateLayout, input.IssueDate)
		if err != nil {
			return time.Time{}, time.Time{}, domainerror.NewSimulationError(
				domainerror.ErrCodeInvalidDateFormat,
				"issue date must be an ISO-8601 date (YYYY-MM-DD)",
				domainerror.ErrInvalidDateFormat,
			)
		}
	}
	return issueDate, dueDate, nil
}

// resolveMunicipality looks up the municipality ISS rate. A missing registry entry or
// lookup failure falls back to a municipality without a configured rate, which makes
// the ISS calculation apply its 3% default.
func (uc *SimulateFactoringUseCase) resolveMunicipality(ctx context.Context, input SimulateFactoringInput) valueobject.Municipality {
	fallback := valueobject.Municipality{
		Code: input.MunicipalityCode,
		Name: input.MunicipalityName,
	}

	if uc.municipalityRepo == nil || input.MunicipalityCode == "" {
		return fallback
	}

	municipality, err := uc.municipalityRepo.FindByCode(ctx, input.MunicipalityCode)
	if err != nil {
		slog.Warn("Municipality lookup failed, using default ISS rate",
			"municipalityCode", input.MunicipalityCode,
			"error", err,
		)
		return fallback
	}
	if municipality == nil {
		return fallback
	}
	return *municipality
}

// storeRecord persists the simulation snapshot. Storage failure does not fail the
// simulation: the calculation result is already complete and valid.
func (uc *SimulateFactoringUseCase) storeRecord(ctx context.Context, record *entity.Simulation) {
	if uc.simulationRepo == nil {
		return
	}
	if err := uc.simulationRepo.Create(ctx, record); err != nil {
		slog.Warn("Failed to store simulation snapshot",
			"simulationID", record.ID,
			"error", err,
		)
	}
}

func (uc *SimulateFactoringUseCase) wrapUnexpected(err error) error {
	return domainerror.NewSimulationError(
		domainerror.ErrCodeSimulationFailed,
		"simulation failed",
		err,
	)
}

func (uc *SimulateFactoringUseCase) buildRecord(
	input SimulateFactoringInput,
	issueDate, dueDate time.Time,
	daysToMaturity int,
	termInMonths decimal.Decimal,
	operationVolume entity.OperationVolume,
	rateCalc valueobject.RateCalculation,
	taxCalcs valueobject.TaxCalculations,
	netCalc valueobject.NetCalculation,
) *entity.Simulation {
	record := entity.NewSimulation()
	record.DuplicataNumber = input.DuplicataNumber
	record.IssueDate = issueDate
	record.DueDate = dueDate
	record.FaceValue = netCalc.DuplicataFaceValue.Amount()
	record.DebtorName = input.DebtorName
	record.DebtorDocument = input.DebtorDocument
	record.DebtorRating = input.DebtorCreditRating
	record.CreditorName = input.CreditorName
	record.CreditorDoc = input.CreditorDocument
	record.EconomicSector = input.EconomicSector
	record.Modality = input.Modality
	record.ClientRiskProfile = input.ClientRiskProfile
	record.OperationVolume = operationVolume
	record.TaxRegime = entity.TaxRegimeLucroReal
	record.MunicipalityCode = input.MunicipalityCode
	record.MunicipalityName = input.MunicipalityName
	record.DaysToMaturity = daysToMaturity
	record.TermInMonths = termInMonths
	record.FinalMonthlyRate = rateCalc.FinalMonthlyRate.ToDecimal()
	record.DesagioPercentage = rateCalc.DesagioPercentage.ToDecimal()
	record.DesagioAmount = rateCalc.DesagioAmount.Amount()
	record.TotalTaxes = taxCalcs.TotalTaxAmount.Amount()
	record.NetAmount = netCalc.NetAmount.Amount()
	record.EffectiveDiscount = netCalc.EffectiveDiscount.ToDecimal()
	return record
}

// classifyOperationVolume classifies the operation size from the face value.
func classifyOperationVolume(faceValue decimal.Decimal) entity.OperationVolume {
	if faceValue.LessThan(mediumVolumeThreshold) {
		return entity.VolumeSmall
	}
	if faceValue.LessThan(largeVolumeThreshold) {
		return entity.VolumeMedium
	}
	return entity.VolumeLarge
}

// daysBetween returns the number of whole days from a to b, comparing calendar dates.
func daysBetween(a, b time.Time) int {
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay).Hours() / 24)
}

func buildOutput(
	input SimulateFactoringInput,
	record *entity.Simulation,
	daysToMaturity int,
	termInMonths decimal.Decimal,
	rateCalc valueobject.RateCalculation,
	taxCalcs valueobject.TaxCalculations,
	netCalc valueobject.NetCalculation,
) *SimulateFactoringOutput {
	return &SimulateFactoringOutput{
		SimulationID:    record.ID.String(),
		DuplicataNumber: input.DuplicataNumber,
		FaceValue:       netCalc.DuplicataFaceValue.Amount().InexactFloat64(),
		DueDate:         input.DueDate,
		DaysToMaturity:  daysToMaturity,
		TermInMonths:    termInMonths.InexactFloat64(),
		DebtorName:      input.DebtorName,
		DebtorDocument:  input.DebtorDocument,
		RateCalculation: buildRateCalculationOutput(rateCalc),
		TaxCalculations: buildTaxCalculationsOutput(taxCalcs),
		NetCalculation:  buildNetCalculationOutput(netCalc),
		SimulatedAt:     record.SimulatedAt,
	}
}

func buildRateCalculationOutput(rateCalc valueobject.RateCalculation) RateCalculationOutput {
	return RateCalculationOutput{
		BaseMonthlyRate:     rateCalc.BaseMonthlyRate.ToPercentageValue().InexactFloat64(),
		RiskAdjustment:      rateCalc.RiskAdjustment.ToPercentageValue().InexactFloat64(),
		ModalityAdjustment:  rateCalc.ModalityAdjustment.ToPercentageValue().InexactFloat64(),
		VolumeDiscount:      rateCalc.VolumeDiscount.ToPercentageValue().InexactFloat64(),
		FinalMonthlyRate:    rateCalc.FinalMonthlyRate.ToPercentageValue().InexactFloat64(),
		EffectiveAnnualRate: rateCalc.EffectiveAnnualRate.ToPercentageValue().InexactFloat64(),
		DesagioPercentage:   rateCalc.DesagioPercentage.ToPercentageValue().InexactFloat64(),
		DesagioAmount:       rateCalc.DesagioAmount.Amount().InexactFloat64(),
	}
}

func buildTaxCalculationsOutput(taxCalcs valueobject.TaxCalculations) TaxCalculationsOutput {
	return TaxCalculationsOutput{
		ISS: TaxDetailOutput{
			TaxBase: taxCalcs.ISS.TaxBase.Amount().InexactFloat64(),
			Rate:    taxCalcs.ISS.TaxRate.ToPercentageValue().InexactFloat64(),
			Amount:  taxCalcs.ISS.TaxAmount.Amount().InexactFloat64(),
		},
		PIS: TaxDetailOutput{
			TaxBase: taxCalcs.PIS.TaxBase.Amount().InexactFloat64(),
			Rate:    taxCalcs.PIS.TaxRate.ToPercentageValue().InexactFloat64(),
			Amount:  taxCalcs.PIS.TaxAmount.Amount().InexactFloat64(),
		},
		COFINS: TaxDetailOutput{
			TaxBase: taxCalcs.COFINS.TaxBase.Amount().InexactFloat64(),
			Rate:    taxCalcs.COFINS.TaxRate.ToPercentageValue().InexactFloat64(),
			Amount:  taxCalcs.COFINS.TaxAmount.Amount().InexactFloat64(),
		},
		IRPJ: TaxDetailOutput{
			TaxBase: taxCalcs.IRPJ.TaxBase.Amount().InexactFloat64(),
			Rate:    taxCalcs.IRPJ.TaxRate.ToPercentageValue().InexactFloat64(),
			Amount:  taxCalcs.IRPJ.TaxAmount.Amount().InexactFloat64(),
		},
		CSLL: TaxDetailOutput{
			TaxBase: taxCalcs.CSLL.TaxBase.Amount().InexactFloat64(),
			Rate:    taxCalcs.CSLL.TaxRate.ToPercentageValue().InexactFloat64(),
			Amount:  taxCalcs.CSLL.TaxAmount.Amount().InexactFloat64(),
		},
		IOF: IOFDetailOutput{
			TaxBase:           taxCalcs.IOF.TaxBase.Amount().InexactFloat64(),
			DailyRate:         taxCalcs.IOF.DailyRate.ToPercentageValue().InexactFloat64(),
			FixedRate:         taxCalcs.IOF.FixedRate.ToPercentageValue().InexactFloat64(),
			DailyIOF:          taxCalcs.IOF.DailyIOF.Amount().InexactFloat64(),
			FixedIOF:          taxCalcs.IOF.FixedIOF.Amount().InexactFloat64(),
			Amount:            taxCalcs.IOF.TotalIOFAmount.Amount().InexactFloat64(),
			DaysUntilMaturity: taxCalcs.IOF.DaysUntilMaturity,
		},
		TotalTaxAmount:   taxCalcs.TotalTaxAmount.Amount().InexactFloat64(),
		EffectiveTaxRate: taxCalcs.EffectiveTaxRate.ToPercentageValue().InexactFloat64(),
	}
}

func buildNetCalculationOutput(netCalc valueobject.NetCalculation) NetCalculationOutput {
	return NetCalculationOutput{
		DuplicataFaceValue: netCalc.DuplicataFaceValue.Amount().InexactFloat64(),
		TotalDesagio:       netCalc.TotalDesagio.Amount().InexactFloat64(),
		TotalTaxes:         netCalc.TotalTaxes.Amount().InexactFloat64(),
		NetAmount:          netCalc.NetAmount.Amount().InexactFloat64(),
		EffectiveDiscount:  netCalc.EffectiveDiscount.ToPercentageValue().InexactFloat64(),
	}
}

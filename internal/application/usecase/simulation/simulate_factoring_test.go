package simulation

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/factoring-simulator/backend/internal/domain/entity"
	domainerror "github.com/factoring-simulator/backend/internal/domain/error"
	"github.com/factoring-simulator/backend/internal/domain/valueobject"
)

type fakeSimulationRepo struct {
	created    []*entity.Simulation
	createErr  error
	findErr    error
	limitsSeen []int
}

func (r *fakeSimulationRepo) Create(_ context.Context, simulation *entity.Simulation) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, simulation)
	return nil
}

func (r *fakeSimulationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Simulation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, record := range r.created {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, domainerror.ErrSimulationNotFound
}

func (r *fakeSimulationRepo) FindRecent(_ context.Context, limit int) ([]*entity.Simulation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.limitsSeen = append(r.limitsSeen, limit)
	if limit > len(r.created) {
		limit = len(r.created)
	}
	return r.created[:limit], nil
}

type fakeMunicipalityRepo struct {
	municipality *valueobject.Municipality
	err          error
}

func (r *fakeMunicipalityRepo) FindByCode(_ context.Context, _ string) (*valueobject.Municipality, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.municipality, nil
}

// fixedClock pins the simulation date so days-to-maturity is deterministic.
func fixedClock() time.Time {
	return time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
}

func referenceInput() SimulateFactoringInput {
	return SimulateFactoringInput{
		DuplicataNumber:    "DUP-2026-0001",
		DueDate:            "2026-03-02", // 60 days from the fixed clock
		FaceValue:          decimal.NewFromInt(100000),
		DebtorName:         "Distribuidora Alfa Ltda",
		DebtorDocument:     "12.345.678/0001-90",
		DebtorCreditRating: entity.CreditRatingA,
		EconomicSector:     entity.SectorServices,
		Modality:           entity.ModalityWithRecourse,
		ClientRiskProfile:  entity.RiskProfileB,
		TaxRegime:          entity.TaxRegimeLucroReal,
	}
}

func simulationErrorCode(t *testing.T, err error) domainerror.SimulationErrorCode {
	t.Helper()

	var simErr *domainerror.SimulationError
	if !errors.As(err, &simErr) {
		t.Fatalf("expected *SimulationError, got %T: %v", err, err)
	}
	return simErr.Code
}

func TestSimulateFactoringCompleteBreakdown(t *testing.T) {
	repo := &fakeSimulationRepo{}
	uc := NewSimulateFactoringUseCase(repo, nil)
	uc.now = fixedClock

	output, err := uc.Execute(context.Background(), referenceInput())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if output.DaysToMaturity != 60 {
		t.Errorf("expected 60 days to maturity, got %d", output.DaysToMaturity)
	}
	if output.TermInMonths != 2 {
		t.Errorf("expected term of 2 months, got %v", output.TermInMonths)
	}

	rate := output.RateCalculation
	if rate.BaseMonthlyRate != 4.3 {
		t.Errorf("expected base rate 4.3, got %v", rate.BaseMonthlyRate)
	}
	if rate.RiskAdjustment != 0.7 {
		t.Errorf("expected risk adjustment 0.7, got %v", rate.RiskAdjustment)
	}
	if rate.FinalMonthlyRate != 4.75 {
		t.Errorf("expected final monthly rate 4.75, got %v", rate.FinalMonthlyRate)
	}
	// (1.0475)^12 - 1 = 74.521276...%, reported unrounded.
	if math.Abs(rate.EffectiveAnnualRate-74.52) > 0.005 {
		t.Errorf("expected effective annual rate near 74.52, got %v", rate.EffectiveAnnualRate)
	}
	if rate.DesagioPercentage != 9.5 {
		t.Errorf("expected desagio percentage 9.5, got %v", rate.DesagioPercentage)
	}
	if rate.DesagioAmount != 9500 {
		t.Errorf("expected desagio amount 9500, got %v", rate.DesagioAmount)
	}

	taxes := output.TaxCalculations
	if taxes.ISS.Amount != 285 {
		t.Errorf("expected ISS 285, got %v", taxes.ISS.Amount)
	}
	if taxes.PIS.Amount != 156.75 {
		t.Errorf("expected PIS 156.75, got %v", taxes.PIS.Amount)
	}
	if taxes.COFINS.Amount != 722 {
		t.Errorf("expected COFINS 722, got %v", taxes.COFINS.Amount)
	}
	if taxes.IRPJ.Amount != 456 {
		t.Errorf("expected IRPJ 456, got %v", taxes.IRPJ.Amount)
	}
	if taxes.CSLL.Amount != 273.60 {
		t.Errorf("expected CSLL 273.60, got %v", taxes.CSLL.Amount)
	}
	if taxes.IOF.Amount != 566.53 {
		t.Errorf("expected IOF 566.53, got %v", taxes.IOF.Amount)
	}
	if taxes.TotalTaxAmount != 2459.88 {
		t.Errorf("expected total taxes 2459.88, got %v", taxes.TotalTaxAmount)
	}
	if taxes.EffectiveTaxRate != 2.45988 {
		t.Errorf("expected effective tax rate 2.45988, got %v", taxes.EffectiveTaxRate)
	}

	net := output.NetCalculation
	if net.NetAmount != 88040.12 {
		t.Errorf("expected net amount 88040.12, got %v", net.NetAmount)
	}
	if net.TotalDesagio != 9500 {
		t.Errorf("expected total desagio 9500, got %v", net.TotalDesagio)
	}
	if net.TotalTaxes != 2459.88 {
		t.Errorf("expected total taxes 2459.88, got %v", net.TotalTaxes)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 stored simulation, got %d", len(repo.created))
	}
	record := repo.created[0]
	if record.DaysToMaturity != 60 {
		t.Errorf("expected stored days to maturity 60, got %d", record.DaysToMaturity)
	}
	if !record.NetAmount.Equal(decimal.RequireFromString("88040.12")) {
		t.Errorf("expected stored net amount 88040.12, got %s", record.NetAmount)
	}
	if record.OperationVolume != entity.VolumeMedium {
		t.Errorf("expected medium operation volume, got %s", record.OperationVolume)
	}
	if record.TaxRegime != entity.TaxRegimeLucroReal {
		t.Errorf("expected lucro real tax regime, got %s", record.TaxRegime)
	}
	if output.SimulationID != record.ID.String() {
		t.Errorf("output simulation ID %s does not match stored record %s", output.SimulationID, record.ID)
	}
}

func TestSimulateFactoringValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*SimulateFactoringInput)
		wantCode domainerror.SimulationErrorCode
	}{
		{
			name:     "zero face value",
			mutate:   func(in *SimulateFactoringInput) { in.FaceValue = decimal.Zero },
			wantCode: domainerror.ErrCodeNonPositiveFaceValue,
		},
		{
			name:     "negative face value",
			mutate:   func(in *SimulateFactoringInput) { in.FaceValue = decimal.NewFromInt(-500) },
			wantCode: domainerror.ErrCodeNonPositiveFaceValue,
		},
		{
			name:     "missing due date",
			mutate:   func(in *SimulateFactoringInput) { in.DueDate = "" },
			wantCode: domainerror.ErrCodeMissingDueDate,
		},
		{
			name:     "malformed due date",
			mutate:   func(in *SimulateFactoringInput) { in.DueDate = "02/03/2026" },
			wantCode: domainerror.ErrCodeInvalidDateFormat,
		},
		{
			name:     "malformed issue date",
			mutate:   func(in *SimulateFactoringInput) { in.IssueDate = "not-a-date" },
			wantCode: domainerror.ErrCodeInvalidDateFormat,
		},
		{
			name:     "lucro presumido regime",
			mutate:   func(in *SimulateFactoringInput) { in.TaxRegime = "lucro_presumido" },
			wantCode: domainerror.ErrCodeInvalidTaxRegime,
		},
		{
			name:     "unknown economic sector",
			mutate:   func(in *SimulateFactoringInput) { in.EconomicSector = "mining" },
			wantCode: domainerror.ErrCodeMissingFields,
		},
		{
			name:     "unknown modality",
			mutate:   func(in *SimulateFactoringInput) { in.Modality = "reverse" },
			wantCode: domainerror.ErrCodeMissingFields,
		},
		{
			name:     "unknown risk profile",
			mutate:   func(in *SimulateFactoringInput) { in.ClientRiskProfile = "F" },
			wantCode: domainerror.ErrCodeMissingFields,
		},
		{
			name:     "unknown credit rating",
			mutate:   func(in *SimulateFactoringInput) { in.DebtorCreditRating = "D" },
			wantCode: domainerror.ErrCodeMissingFields,
		},
		{
			name:     "due date in the past",
			mutate:   func(in *SimulateFactoringInput) { in.DueDate = "2025-12-31" },
			wantCode: domainerror.ErrCodeDueDateNotInFuture,
		},
		{
			name:     "due date is today",
			mutate:   func(in *SimulateFactoringInput) { in.DueDate = "2026-01-01" },
			wantCode: domainerror.ErrCodeDueDateNotInFuture,
		},
		{
			name: "due date before issue date",
			mutate: func(in *SimulateFactoringInput) {
				in.IssueDate = "2026-03-10"
				in.DueDate = "2026-03-02"
			},
			wantCode: domainerror.ErrCodeDueDateBeforeIssueDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSimulateFactoringUseCase(nil, nil)
			uc.now = fixedClock

			input := referenceInput()
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if err == nil {
				t.Fatal("expected an error, got none")
			}
			if code := simulationErrorCode(t, err); code != tt.wantCode {
				t.Errorf("expected error code %s, got %s", tt.wantCode, code)
			}
		})
	}
}

func TestSimulateFactoringNonViableOperation(t *testing.T) {
	uc := NewSimulateFactoringUseCase(nil, nil)
	uc.now = fixedClock

	// A small construction-sector duplicata, worst ratings on both sides,
	// international modality, 500 days out: the compound desagio plus taxes
	// exceeds the face value.
	input := referenceInput()
	input.FaceValue = decimal.NewFromInt(1000)
	input.DueDate = "2027-05-16"
	input.EconomicSector = entity.SectorConstruction
	input.ClientRiskProfile = entity.RiskProfileE
	input.DebtorCreditRating = entity.CreditRatingCCC
	input.Modality = entity.ModalityInternational

	_, err := uc.Execute(context.Background(), input)
	if err == nil {
		t.Fatal("expected non-viable operation error, got none")
	}
	if code := simulationErrorCode(t, err); code != domainerror.ErrCodeNonViableOperation {
		t.Errorf("expected error code %s, got %s", domainerror.ErrCodeNonViableOperation, code)
	}
	if !errors.Is(err, domainerror.ErrNonViableOperation) {
		t.Error("expected error to wrap ErrNonViableOperation")
	}
}

func TestSimulateFactoringWithoutRepositories(t *testing.T) {
	uc := NewSimulateFactoringUseCase(nil, nil)
	uc.now = fixedClock

	output, err := uc.Execute(context.Background(), referenceInput())
	if err != nil {
		t.Fatalf("Execute failed without repositories: %v", err)
	}
	if output.NetCalculation.NetAmount != 88040.12 {
		t.Errorf("expected net amount 88040.12, got %v", output.NetCalculation.NetAmount)
	}
}

func TestSimulateFactoringStorageFailureDoesNotFailSimulation(t *testing.T) {
	repo := &fakeSimulationRepo{createErr: errors.New("connection refused")}
	uc := NewSimulateFactoringUseCase(repo, nil)
	uc.now = fixedClock

	output, err := uc.Execute(context.Background(), referenceInput())
	if err != nil {
		t.Fatalf("Execute failed on storage error: %v", err)
	}
	if output.NetCalculation.NetAmount != 88040.12 {
		t.Errorf("expected net amount 88040.12, got %v", output.NetCalculation.NetAmount)
	}
}

func TestSimulateFactoringMunicipalityRegistry(t *testing.T) {
	t.Run("registered rate overrides default", func(t *testing.T) {
		rate, err := valueobject.NewPercentageFromPercent(decimal.NewFromInt(2))
		if err != nil {
			t.Fatalf("failed to build rate: %v", err)
		}
		repo := &fakeMunicipalityRepo{municipality: &valueobject.Municipality{
			Code:                "3550308",
			Name:                "São Paulo",
			ISSRateForFactoring: rate,
		}}
		uc := NewSimulateFactoringUseCase(nil, repo)
		uc.now = fixedClock

		input := referenceInput()
		input.MunicipalityCode = "3550308"

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.TaxCalculations.ISS.Rate != 2 {
			t.Errorf("expected ISS rate 2, got %v", output.TaxCalculations.ISS.Rate)
		}
		if output.TaxCalculations.ISS.Amount != 190 {
			t.Errorf("expected ISS 190, got %v", output.TaxCalculations.ISS.Amount)
		}
	})

	t.Run("lookup failure falls back to default rate", func(t *testing.T) {
		repo := &fakeMunicipalityRepo{err: errors.New("connection refused")}
		uc := NewSimulateFactoringUseCase(nil, repo)
		uc.now = fixedClock

		input := referenceInput()
		input.MunicipalityCode = "3550308"

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.TaxCalculations.ISS.Rate != 3 {
			t.Errorf("expected default ISS rate 3, got %v", output.TaxCalculations.ISS.Rate)
		}
		if output.TaxCalculations.ISS.Amount != 285 {
			t.Errorf("expected ISS 285, got %v", output.TaxCalculations.ISS.Amount)
		}
	})

	t.Run("unregistered municipality falls back to default rate", func(t *testing.T) {
		repo := &fakeMunicipalityRepo{}
		uc := NewSimulateFactoringUseCase(nil, repo)
		uc.now = fixedClock

		input := referenceInput()
		input.MunicipalityCode = "9999999"

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.TaxCalculations.ISS.Rate != 3 {
			t.Errorf("expected default ISS rate 3, got %v", output.TaxCalculations.ISS.Rate)
		}
	})
}

func TestClassifyOperationVolume(t *testing.T) {
	tests := []struct {
		faceValue string
		want      entity.OperationVolume
	}{
		{"1000", entity.VolumeSmall},
		{"49999.99", entity.VolumeSmall},
		{"50000", entity.VolumeMedium},
		{"499999.99", entity.VolumeMedium},
		{"500000", entity.VolumeLarge},
		{"2000000", entity.VolumeLarge},
	}

	for _, tt := range tests {
		got := classifyOperationVolume(decimal.RequireFromString(tt.faceValue))
		if got != tt.want {
			t.Errorf("classifyOperationVolume(%s) = %s, want %s", tt.faceValue, got, tt.want)
		}
	}
}

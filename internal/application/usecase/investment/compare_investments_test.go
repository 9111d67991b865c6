package investment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/factoring-simulator/backend/internal/domain/error"
)

func TestCompareInvestmentsTwelveMonths(t *testing.T) {
	uc := NewCompareInvestmentsUseCase()

	output, err := uc.Execute(context.Background(), CompareInvestmentsInput{
		Amount: decimal.NewFromInt(100000),
		Months: 12,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(output.Comparisons) != 3 {
		t.Fatalf("expected 3 comparison rows, got %d", len(output.Comparisons))
	}

	poupanca := output.Comparisons[0]
	if poupanca.Name != "Poupança" {
		t.Errorf("expected first row Poupança, got %s", poupanca.Name)
	}
	if poupanca.FinalAmount != 106000 {
		t.Errorf("expected poupança final 106000, got %v", poupanca.FinalAmount)
	}
	if poupanca.TotalGain != 6000 {
		t.Errorf("expected poupança gain 6000, got %v", poupanca.TotalGain)
	}
	if poupanca.AnnualRate != 6 {
		t.Errorf("expected poupança annual rate 6, got %v", poupanca.AnnualRate)
	}

	cdi := output.Comparisons[1]
	if cdi.Name != "CDI" {
		t.Errorf("expected second row CDI, got %s", cdi.Name)
	}
	if cdi.FinalAmount != 113000 {
		t.Errorf("expected CDI final 113000, got %v", cdi.FinalAmount)
	}
	if cdi.TotalGain != 13000 {
		t.Errorf("expected CDI gain 13000, got %v", cdi.TotalGain)
	}

	factoring := output.Comparisons[2]
	if factoring.Name != "Factoring" {
		t.Errorf("expected third row Factoring, got %s", factoring.Name)
	}
	if factoring.FinalAmount != 156447.36 {
		t.Errorf("expected factoring final 156447.36, got %v", factoring.FinalAmount)
	}
	if factoring.TotalGain != 56447.36 {
		t.Errorf("expected factoring gain 56447.36, got %v", factoring.TotalGain)
	}
	if factoring.AnnualRate != 56.45 {
		t.Errorf("expected factoring annual rate 56.45, got %v", factoring.AnnualRate)
	}
}

func TestCompareInvestmentsFractionalYears(t *testing.T) {
	uc := NewCompareInvestmentsUseCase()

	output, err := uc.Execute(context.Background(), CompareInvestmentsInput{
		Amount: decimal.NewFromInt(100000),
		Months: 18,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	poupanca := output.Comparisons[0]
	if poupanca.FinalAmount != 109000 {
		t.Errorf("expected poupança final 109000 over 18 months, got %v", poupanca.FinalAmount)
	}

	cdi := output.Comparisons[1]
	if cdi.FinalAmount != 120120.65 {
		t.Errorf("expected CDI final 120120.65 over 18 months, got %v", cdi.FinalAmount)
	}
}

func TestCompareInvestmentsValidation(t *testing.T) {
	uc := NewCompareInvestmentsUseCase()

	_, err := uc.Execute(context.Background(), CompareInvestmentsInput{
		Amount: decimal.NewFromInt(5000),
		Months: 12,
	})
	if err == nil {
		t.Fatal("expected an error, got none")
	}
	if code := investmentErrorCode(t, err); code != domainerror.ErrCodeInvestmentAmountOutOfRange {
		t.Errorf("expected error code %s, got %s", domainerror.ErrCodeInvestmentAmountOutOfRange, code)
	}
}

func TestMonthlyToAnnualRate(t *testing.T) {
	annual, err := MonthlyToAnnualRate(decimal.NewFromFloat(0.038))
	if err != nil {
		t.Fatalf("MonthlyToAnnualRate failed: %v", err)
	}
	if !annual.Equal(decimal.RequireFromString("56.45")) {
		t.Errorf("expected 56.45, got %s", annual)
	}

	zero, err := MonthlyToAnnualRate(decimal.Zero)
	if err != nil {
		t.Fatalf("MonthlyToAnnualRate failed: %v", err)
	}
	if !zero.IsZero() {
		t.Errorf("expected 0 for zero monthly rate, got %s", zero)
	}
}

func TestAnnualToMonthlyRate(t *testing.T) {
	monthly, err := AnnualToMonthlyRate(decimal.NewFromFloat(0.13))
	if err != nil {
		t.Fatalf("AnnualToMonthlyRate failed: %v", err)
	}
	if !monthly.Equal(decimal.RequireFromString("1.02")) {
		t.Errorf("expected 1.02, got %s", monthly)
	}

	poupanca, err := AnnualToMonthlyRate(decimal.NewFromFloat(0.06))
	if err != nil {
		t.Fatalf("AnnualToMonthlyRate failed: %v", err)
	}
	if !poupanca.Equal(decimal.RequireFromString("0.49")) {
		t.Errorf("expected 0.49, got %s", poupanca)
	}
}

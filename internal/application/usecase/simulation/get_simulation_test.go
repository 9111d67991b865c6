package simulation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/factoring-simulator/backend/internal/domain/error"
)

// simulateAndStore runs a reference simulation against the given repo and
// returns the stored record's ID.
func simulateAndStore(t *testing.T, repo *fakeSimulationRepo) uuid.UUID {
	t.Helper()

	uc := NewSimulateFactoringUseCase(repo, nil)
	uc.now = fixedClock
	if _, err := uc.Execute(context.Background(), referenceInput()); err != nil {
		t.Fatalf("failed to seed simulation: %v", err)
	}
	return repo.created[len(repo.created)-1].ID
}

func TestGetSimulation(t *testing.T) {
	repo := &fakeSimulationRepo{}
	id := simulateAndStore(t, repo)

	uc := NewGetSimulationUseCase(repo)
	output, err := uc.Execute(context.Background(), GetSimulationInput{SimulationID: id})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	summary := output.Simulation
	if summary.ID != id.String() {
		t.Errorf("expected ID %s, got %s", id, summary.ID)
	}
	if summary.DuplicataNumber != "DUP-2026-0001" {
		t.Errorf("expected duplicata DUP-2026-0001, got %s", summary.DuplicataNumber)
	}
	if summary.FaceValue != 100000 {
		t.Errorf("expected face value 100000, got %v", summary.FaceValue)
	}
	if summary.FinalMonthlyRate != 4.75 {
		t.Errorf("expected final monthly rate 4.75, got %v", summary.FinalMonthlyRate)
	}
	if summary.DesagioAmount != 9500 {
		t.Errorf("expected desagio 9500, got %v", summary.DesagioAmount)
	}
	if summary.NetAmount != 88040.12 {
		t.Errorf("expected net amount 88040.12, got %v", summary.NetAmount)
	}
	if summary.DueDate != "2026-03-02" {
		t.Errorf("expected due date 2026-03-02, got %s", summary.DueDate)
	}
}

func TestGetSimulationNotFound(t *testing.T) {
	repo := &fakeSimulationRepo{}
	uc := NewGetSimulationUseCase(repo)

	_, err := uc.Execute(context.Background(), GetSimulationInput{SimulationID: uuid.New()})
	if err == nil {
		t.Fatal("expected not found error, got none")
	}
	if !errors.Is(err, domainerror.ErrSimulationNotFound) {
		t.Errorf("expected ErrSimulationNotFound, got %v", err)
	}
}

func TestListSimulations(t *testing.T) {
	repo := &fakeSimulationRepo{}
	simulateAndStore(t, repo)
	simulateAndStore(t, repo)

	uc := NewListSimulationsUseCase(repo)
	output, err := uc.Execute(context.Background(), ListSimulationsInput{Limit: 10})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(output.Simulations) != 2 {
		t.Fatalf("expected 2 simulations, got %d", len(output.Simulations))
	}
	if output.Simulations[0].NetAmount != 88040.12 {
		t.Errorf("expected net amount 88040.12, got %v", output.Simulations[0].NetAmount)
	}
}

func TestListSimulationsLimitBounds(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero limit uses default", 0, DefaultListLimit},
		{"negative limit uses default", -5, DefaultListLimit},
		{"limit above maximum is capped", 500, MaxListLimit},
		{"limit within bounds passes through", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSimulationRepo{}
			uc := NewListSimulationsUseCase(repo)

			if _, err := uc.Execute(context.Background(), ListSimulationsInput{Limit: tt.limit}); err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if len(repo.limitsSeen) != 1 || repo.limitsSeen[0] != tt.wantLimit {
				t.Errorf("expected repository limit %d, got %v", tt.wantLimit, repo.limitsSeen)
			}
		})
	}
}

func TestListSimulationsRepositoryError(t *testing.T) {
	repo := &fakeSimulationRepo{findErr: errors.New("connection refused")}
	uc := NewListSimulationsUseCase(repo)

	if _, err := uc.Execute(context.Background(), ListSimulationsInput{}); err == nil {
		t.Fatal("expected repository error, got none")
	}
}

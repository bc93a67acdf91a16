package commission

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/domain/entity"
)

type generateFixture struct {
	payments    *fakePaymentRepo
	methods     *fakeMethodRepo
	assignments *fakeAssignmentRepo
	links       *fakeLinkRepo
	store       *fakeCommissionStore
	useCase     *GenerateCommissionUseCase
}

func newGenerateFixture() *generateFixture {
	f := &generateFixture{
		payments:    newFakePaymentRepo(),
		methods:     newFakeMethodRepo(),
		assignments: newFakeAssignmentRepo(),
		links:       newFakeLinkRepo(),
		store:       newFakeCommissionStore(),
	}
	f.useCase = NewGenerateCommissionUseCase(
		f.payments,
		f.methods,
		f.assignments,
		f.links,
		&fakeCommissionRepo{store: f.store},
	)
	return f
}

// addChain seeds a payment with a fully resolvable assignment chain and
// returns the payment and driver IDs.
func (f *generateFixture) addChain(methodCode, amount string) (*entity.Payment, uuid.UUID) {
	driverID := uuid.New()
	link := &entity.DriverVehicleLink{ID: uuid.New(), DriverID: &driverID, VehicleID: uuid.New(), Active: true}
	f.links.links[link.ID] = link

	assignment := &entity.Assignment{
		ID:                  uuid.New(),
		DriverVehicleLinkID: &link.ID,
		Origin:              "Lima",
		Destination:         "Arequipa",
		Stops:               []string{"Ica", "Nazca"},
	}
	f.assignments.assignments[assignment.ID] = assignment

	m := f.methods.add(methodCode)
	p := entity.NewPayment(&m.ID, &assignment.ID, decimal.RequireFromString(amount), false, "", "", nil, nil, "PEN")
	f.payments.payments[p.ID] = p
	return p, driverID
}

func TestGenerateCommission(t *testing.T) {
	ctx := context.Background()

	t.Run("direct payment generates a 15 percent commission", func(t *testing.T) {
		f := newGenerateFixture()
		p, driverID := f.addChain("DIRECT_CASH", "100.00")

		out, err := f.useCase.Execute(ctx, GenerateCommissionInput{PaymentID: p.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Outcome != OutcomeGenerated {
			t.Fatalf("expected generated, got %s/%s", out.Outcome, out.SkipReason)
		}
		if !out.Commission.Amount.Equal(decimal.RequireFromString("15")) {
			t.Errorf("expected amount 15, got %s", out.Commission.Amount)
		}
		if out.Commission.DriverID != driverID {
			t.Error("expected the commission to target the linked driver")
		}
		if out.Commission.Status != entity.CommissionStatusGenerated {
			t.Errorf("expected status GENERATED, got %s", out.Commission.Status)
		}
	})

	t.Run("in-app payment is skipped", func(t *testing.T) {
		f := newGenerateFixture()
		p, _ := f.addChain("APP_CARD", "100.00")

		out, err := f.useCase.Execute(ctx, GenerateCommissionInput{PaymentID: p.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Outcome != OutcomeSkipped || out.SkipReason != SkipMethodNotDirect {
			t.Errorf("expected skip %s, got %s/%s", SkipMethodNotDirect, out.Outcome, out.SkipReason)
		}
		if len(f.store.commissions) != 0 {
			t.Error("expected no commission for an in-app payment")
		}
	})

	t.Run("unknown payment is skipped", func(t *testing.T) {
		f := newGenerateFixture()

		out, err := f.useCase.Execute(ctx, GenerateCommissionInput{PaymentID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Outcome != OutcomeSkipped || out.SkipReason != SkipPaymentNotFound {
			t.Errorf("expected skip %s, got %s/%s", SkipPaymentNotFound, out.Outcome, out.SkipReason)
		}
	})

	t.Run("payment without assignment reference is skipped", func(t *testing.T) {
		f := newGenerateFixture()
		m := f.methods.add("DIRECT_CASH")
		p := entity.NewPayment(&m.ID, nil, decimal.RequireFromString("50.00"), false, "", "", nil, nil, "PEN")
		f.payments.payments[p.ID] = p

		out, err := f.useCase.Execute(ctx, GenerateCommissionInput{PaymentID: p.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Outcome != OutcomeSkipped || out.SkipReason != SkipNoAssignment {
			t.Errorf("expected skip %s, got %s/%s", SkipNoAssignment, out.Outcome, out.SkipReason)
		}
	})

	t.Run("broken assignment reference is skipped, not an error", func(t *testing.T) {
		f := newGenerateFixture()
		m := f.methods.add("DIRECT_CASH")
		missingAssignment := uuid.New()
		p := entity.NewPayment(&m.ID, &missingAssignment, decimal.RequireFromString("50.00"), false, "", "", nil, nil, "PEN")
		f.payments.payments[p.ID] = p

		out, err := f.useCase.Execute(ctx, GenerateCommissionInput{PaymentID: p.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Outcome != OutcomeSkipped || out.SkipReason != SkipAssignmentNotFound {
			t.Errorf("expected skip %s, got %s/%s", SkipAssignmentNotFound, out.Outcome, out.SkipReason)
		}
	})

	t.Run("link without driver is skipped", func(t *testing.T) {
		f := newGenerateFixture()
		p, _ := f.addChain("DIRECT_CASH", "100.00")

		// Detach the driver from the link.
		for _, l := range f.links.links {
			l.DriverID = nil
		}

		out, err := f.useCase.Execute(ctx, GenerateCommissionInput{PaymentID: p.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Outcome != OutcomeSkipped || out.SkipReason != SkipDriverUnresolved {
			t.Errorf("expected skip %s, got %s/%s", SkipDriverUnresolved, out.Outcome, out.SkipReason)
		}
	})

	t.Run("redelivery does not generate a duplicate", func(t *testing.T) {
		f := newGenerateFixture()
		p, _ := f.addChain("DIRECT_TRANSFER", "80.00")

		first, err := f.useCase.Execute(ctx, GenerateCommissionInput{PaymentID: p.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Outcome != OutcomeGenerated {
			t.Fatalf("expected first delivery to generate, got %s", first.Outcome)
		}

		second, err := f.useCase.Execute(ctx, GenerateCommissionInput{PaymentID: p.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Outcome != OutcomeSkipped || second.SkipReason != SkipAlreadyGenerated {
			t.Errorf("expected skip %s, got %s/%s", SkipAlreadyGenerated, second.Outcome, second.SkipReason)
		}
		if len(f.store.commissions) != 1 {
			t.Errorf("expected exactly one commission, got %d", len(f.store.commissions))
		}
	})
}

package commission

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/domain/entity"
)

type reconcileFixture struct {
	store       *fakeCommissionStore
	commissions *fakeCommissionRepo
	settlements *fakeCommissionPaymentRepo
	balances    *fakeBalanceRepo
	useCase     *ReconcileCommissionUseCase
}

func newReconcileFixture() *reconcileFixture {
	store := newFakeCommissionStore()
	f := &reconcileFixture{
		store:       store,
		commissions: &fakeCommissionRepo{store: store},
		settlements: &fakeCommissionPaymentRepo{store: store},
		balances:    newFakeBalanceRepo(store),
	}
	f.useCase = NewReconcileCommissionUseCase(f.settlements, f.commissions, f.balances)
	return f
}

func (f *reconcileFixture) addCommission(driverID uuid.UUID, baseAmount string) *entity.Commission {
	c := entity.NewCommission(uuid.New(), uuid.New(), driverID, decimal.RequireFromString(baseAmount))
	f.store.commissions[c.ID] = c
	f.store.byPayment[c.PaymentID] = c.ID
	return c
}

func (f *reconcileFixture) settle(c *entity.Commission, amount string) *entity.CommissionPayment {
	p := entity.NewCommissionPayment(c.ID, decimal.RequireFromString(amount), time.Now().UTC())
	f.store.settlements[p.ID] = p
	return p
}

func TestReconcileCommission(t *testing.T) {
	ctx := context.Background()
	driverID := uuid.New()

	t.Run("partial settlement moves status to PARTIAL", func(t *testing.T) {
		f := newReconcileFixture()
		c := f.addCommission(driverID, "100.00") // amount 15.00
		p := f.settle(c, "10.00")

		out, err := f.useCase.Execute(ctx, ReconcileCommissionInput{CommissionPaymentID: p.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Outcome != OutcomeReconciled {
			t.Fatalf("expected reconciled, got %s/%s", out.Outcome, out.SkipReason)
		}
		if out.Status != entity.CommissionStatusPartial {
			t.Errorf("expected PARTIAL, got %s", out.Status)
		}
		if !out.Settled.Equal(decimal.RequireFromString("10.00")) {
			t.Errorf("expected settled 10.00, got %s", out.Settled)
		}
		// A PARTIAL commission still counts toward the driver's balance.
		if !out.Balance.Equal(decimal.RequireFromString("15")) {
			t.Errorf("expected balance 15, got %s", out.Balance)
		}
	})

	t.Run("completing settlement moves status to PAID and clears the balance", func(t *testing.T) {
		f := newReconcileFixture()
		c := f.addCommission(driverID, "100.00")
		first := f.settle(c, "10.00")
		if _, err := f.useCase.Execute(ctx, ReconcileCommissionInput{CommissionPaymentID: first.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second := f.settle(c, "5.00")
		out, err := f.useCase.Execute(ctx, ReconcileCommissionInput{CommissionPaymentID: second.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entity.CommissionStatusPaid {
			t.Errorf("expected PAID, got %s", out.Status)
		}
		if !out.Settled.Equal(decimal.RequireFromString("15.00")) {
			t.Errorf("expected settled 15.00, got %s", out.Settled)
		}
		if !out.Balance.Equal(decimal.Zero) {
			t.Errorf("expected balance 0, got %s", out.Balance)
		}
	})

	t.Run("balance sums across the driver's unsettled commissions", func(t *testing.T) {
		f := newReconcileFixture()
		first := f.addCommission(driverID, "100.00") // 15.00
		f.addCommission(driverID, "200.00")          // 30.00
		p := f.settle(first, "15.00")

		out, err := f.useCase.Execute(ctx, ReconcileCommissionInput{CommissionPaymentID: p.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entity.CommissionStatusPaid {
			t.Errorf("expected PAID, got %s", out.Status)
		}
		if !out.Balance.Equal(decimal.RequireFromString("30")) {
			t.Errorf("expected balance 30, got %s", out.Balance)
		}
	})

	t.Run("unknown settlement is skipped", func(t *testing.T) {
		f := newReconcileFixture()

		out, err := f.useCase.Execute(ctx, ReconcileCommissionInput{CommissionPaymentID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Outcome != OutcomeSkippedReconciliation || out.SkipReason != SkipSettlementNotFound {
			t.Errorf("expected skip %s, got %s/%s", SkipSettlementNotFound, out.Outcome, out.SkipReason)
		}
	})

	t.Run("settlement against a missing commission is skipped", func(t *testing.T) {
		f := newReconcileFixture()
		orphan := entity.NewCommissionPayment(uuid.New(), decimal.RequireFromString("5.00"), time.Now().UTC())
		f.store.settlements[orphan.ID] = orphan

		out, err := f.useCase.Execute(ctx, ReconcileCommissionInput{CommissionPaymentID: orphan.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Outcome != OutcomeSkippedReconciliation || out.SkipReason != SkipCommissionNotFound {
			t.Errorf("expected skip %s, got %s/%s", SkipCommissionNotFound, out.Outcome, out.SkipReason)
		}
	})

	t.Run("redelivered reconciliation converges to the same state", func(t *testing.T) {
		f := newReconcileFixture()
		c := f.addCommission(driverID, "100.00")
		p := f.settle(c, "15.00")

		for i := 0; i < 2; i++ {
			out, err := f.useCase.Execute(ctx, ReconcileCommissionInput{CommissionPaymentID: p.ID})
			if err != nil {
				t.Fatalf("unexpected error on delivery %d: %v", i+1, err)
			}
			if out.Status != entity.CommissionStatusPaid {
				t.Errorf("delivery %d: expected PAID, got %s", i+1, out.Status)
			}
			if !out.Balance.Equal(decimal.Zero) {
				t.Errorf("delivery %d: expected balance 0, got %s", i+1, out.Balance)
			}
		}
	})
}

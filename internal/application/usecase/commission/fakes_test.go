package commission

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fletepay/backend/internal/application/adapter"
	"github.com/fletepay/backend/internal/domain/entity"
	domainerror "github.com/fletepay/backend/internal/domain/error"
)

// In-memory fakes shared by the use case tests in this package.

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.payments[p.ID] = p
	return nil
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, domainerror.ErrPaymentNotFound
	}
	return p, nil
}

func (r *fakePaymentRepo) SetInconsistency(_ context.Context, id uuid.UUID, marker string) error {
	p, ok := r.payments[id]
	if !ok {
		return domainerror.ErrPaymentNotFound
	}
	p.Inconsistency = marker
	return nil
}

type fakeMethodRepo struct {
	methods map[uuid.UUID]*entity.PaymentMethod
}

func newFakeMethodRepo() *fakeMethodRepo {
	return &fakeMethodRepo{methods: make(map[uuid.UUID]*entity.PaymentMethod)}
}

func (r *fakeMethodRepo) add(code string) *entity.PaymentMethod {
	m := &entity.PaymentMethod{ID: uuid.New(), Code: code, Name: code, Active: true}
	r.methods[m.ID] = m
	return m
}

func (r *fakeMethodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	m, ok := r.methods[id]
	if !ok {
		return nil, domainerror.ErrPaymentMethodNotFound
	}
	return m, nil
}

func (r *fakeMethodRepo) FindByCode(_ context.Context, code string) (*entity.PaymentMethod, error) {
	for _, m := range r.methods {
		if m.Code == code {
			return m, nil
		}
	}
	return nil, domainerror.ErrPaymentMethodNotFound
}

func (r *fakeMethodRepo) ListActive(_ context.Context) ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	for _, m := range r.methods {
		if m.Active {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMethodRepo) Seed(_ context.Context, methods []*entity.PaymentMethod) error {
	for _, m := range methods {
		r.methods[m.ID] = m
	}
	return nil
}

type fakeAssignmentRepo struct {
	assignments map[uuid.UUID]*entity.Assignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[uuid.UUID]*entity.Assignment)}
}

func (r *fakeAssignmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Assignment, error) {
	a, ok := r.assignments[id]
	if !ok {
		return nil, errors.New("assignment not found")
	}
	return a, nil
}

func (r *fakeAssignmentRepo) Create(_ context.Context, a *entity.Assignment) error {
	r.assignments[a.ID] = a
	return nil
}

type fakeLinkRepo struct {
	links map[uuid.UUID]*entity.DriverVehicleLink
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: make(map[uuid.UUID]*entity.DriverVehicleLink)}
}

func (r *fakeLinkRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.DriverVehicleLink, error) {
	l, ok := r.links[id]
	if !ok {
		return nil, errors.New("driver vehicle link not found")
	}
	return l, nil
}

func (r *fakeLinkRepo) Create(_ context.Context, l *entity.DriverVehicleLink) error {
	r.links[l.ID] = l
	return nil
}

// fakeCommissionStore backs both the commission and settlement fakes so
// RecomputeStatus can rescan settlements the way the real repository does.
type fakeCommissionStore struct {
	commissions map[uuid.UUID]*entity.Commission
	byPayment   map[uuid.UUID]uuid.UUID
	settlements map[uuid.UUID]*entity.CommissionPayment
}

func newFakeCommissionStore() *fakeCommissionStore {
	return &fakeCommissionStore{
		commissions: make(map[uuid.UUID]*entity.Commission),
		byPayment:   make(map[uuid.UUID]uuid.UUID),
		settlements: make(map[uuid.UUID]*entity.CommissionPayment),
	}
}

func (s *fakeCommissionStore) settledSum(commissionID uuid.UUID) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range s.settlements {
		if p.CommissionID == commissionID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

type fakeCommissionRepo struct {
	store *fakeCommissionStore
}

func (r *fakeCommissionRepo) CreateIfAbsent(_ context.Context, c *entity.Commission) (bool, error) {
	if _, exists := r.store.byPayment[c.PaymentID]; exists {
		return false, nil
	}
	r.store.commissions[c.ID] = c
	r.store.byPayment[c.PaymentID] = c.ID
	return true, nil
}

func (r *fakeCommissionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Commission, error) {
	c, ok := r.store.commissions[id]
	if !ok {
		return nil, domainerror.ErrCommissionNotFound
	}
	return c, nil
}

func (r *fakeCommissionRepo) FindByPaymentID(_ context.Context, paymentID uuid.UUID) (*entity.Commission, error) {
	id, ok := r.store.byPayment[paymentID]
	if !ok {
		return nil, domainerror.ErrCommissionNotFound
	}
	return r.store.commissions[id], nil
}

func (r *fakeCommissionRepo) FindByFilter(_ context.Context, filter adapter.CommissionFilter) ([]*entity.Commission, error) {
	var out []*entity.Commission
	for _, c := range r.store.commissions {
		if filter.DriverID != nil && c.DriverID != *filter.DriverID {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCommissionRepo) RecomputeStatus(_ context.Context, commissionID uuid.UUID) (*adapter.StatusRecomputation, error) {
	c, ok := r.store.commissions[commissionID]
	if !ok {
		return nil, domainerror.ErrCommissionNotFound
	}

	settled := r.store.settledSum(commissionID)
	c.Status = c.StatusForSettled(settled)
	c.UpdatedAt = time.Now().UTC()

	return &adapter.StatusRecomputation{
		Commission: c,
		Settled:    settled,
		Status:     c.Status,
	}, nil
}

type fakeCommissionPaymentRepo struct {
	store *fakeCommissionStore
}

func (r *fakeCommissionPaymentRepo) Create(_ context.Context, p *entity.CommissionPayment) error {
	r.store.settlements[p.ID] = p
	return nil
}

func (r *fakeCommissionPaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CommissionPayment, error) {
	p, ok := r.store.settlements[id]
	if !ok {
		return nil, domainerror.ErrCommissionPaymentNotFound
	}
	return p, nil
}

func (r *fakeCommissionPaymentRepo) ListByCommission(_ context.Context, commissionID uuid.UUID) ([]*entity.CommissionPayment, error) {
	var out []*entity.CommissionPayment
	for _, p := range r.store.settlements {
		if p.CommissionID == commissionID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeBalanceRepo struct {
	store    *fakeCommissionStore
	balances map[uuid.UUID]*entity.DriverAccountBalance
}

func newFakeBalanceRepo(store *fakeCommissionStore) *fakeBalanceRepo {
	return &fakeBalanceRepo{
		store:    store,
		balances: make(map[uuid.UUID]*entity.DriverAccountBalance),
	}
}

func (r *fakeBalanceRepo) RecomputeForDriver(_ context.Context, driverID uuid.UUID) (*entity.DriverAccountBalance, error) {
	owed := decimal.Zero
	for _, c := range r.store.commissions {
		if c.DriverID == driverID && c.Status != entity.CommissionStatusPaid {
			owed = owed.Add(c.Amount)
		}
	}

	b := entity.NewDriverAccountBalance(driverID, owed)
	r.balances[driverID] = b
	return b, nil
}

func (r *fakeBalanceRepo) FindByDriver(_ context.Context, driverID uuid.UUID) (*entity.DriverAccountBalance, error) {
	b, ok := r.balances[driverID]
	if !ok {
		return nil, domainerror.ErrBalanceNotFound
	}
	return b, nil
}

type fakeTriggerQueue struct {
	events []*entity.TriggerEvent
}

func (q *fakeTriggerQueue) Enqueue(_ context.Context, event *entity.TriggerEvent) error {
	q.events = append(q.events, event)
	return nil
}

func (q *fakeTriggerQueue) GetPendingEvents(_ context.Context, limit int) ([]*entity.TriggerEvent, error) {
	var out []*entity.TriggerEvent
	for _, e := range q.events {
		if e.Status == entity.TriggerStatusPending && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (q *fakeTriggerQueue) Update(_ context.Context, event *entity.TriggerEvent) error {
	for i, e := range q.events {
		if e.ID == event.ID {
			q.events[i] = event
			return nil
		}
	}
	return domainerror.ErrTriggerEventNotFound
}

func (q *fakeTriggerQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.TriggerEvent, error) {
	for _, e := range q.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrTriggerEventNotFound
}

func (q *fakeTriggerQueue) CountByStatus(_ context.Context, status entity.TriggerEventStatus) (int64, error) {
	var count int64
	for _, e := range q.events {
		if e.Status == status {
			count++
		}
	}
	return count, nil
}

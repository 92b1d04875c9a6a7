package commands_test

import (
	"context"
	"errors"
	"maps"
	"slices"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/outbox"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// memoryStore keeps committed state for lifecycle scenarios. Every read
// returns a copy, so a handler that fails halfway cannot leak mutations.
type memoryStore struct {
	orders      map[kernel.UUID]*order.Order
	assignments []*assignment.DriverAssignment
	photos      []*assignment.Photo
	history     []order.StatusChange
	outbox      []*outbox.Message
}

func newMemoryStore() *memoryStore {
	return &memoryStore{orders: map[kernel.UUID]*order.Order{}}
}

func (s *memoryStore) clone() memoryStore {
	out := memoryStore{
		orders:      maps.Clone(s.orders),
		assignments: slices.Clone(s.assignments),
		photos:      slices.Clone(s.photos),
		history:     slices.Clone(s.history),
		outbox:      make([]*outbox.Message, len(s.outbox)),
	}
	for i, m := range s.outbox {
		out.outbox[i] = copyMessage(m)
	}
	return out
}

func (s *memoryStore) Create() commands.UoW {
	return &memoryUoW{store: s}
}

func (s *memoryStore) orderByID(id kernel.UUID) *order.Order {
	return copyOrder(s.orders[id])
}

func copyOrder(o *order.Order) *order.Order {
	if o == nil {
		return nil
	}
	c, err := order.RestoreOrder(o.ID(), o.Details(), o.State())
	if err != nil {
		panic(err)
	}
	return c
}

func copyAssignment(a *assignment.DriverAssignment) *assignment.DriverAssignment {
	c, err := assignment.RestoreAssignment(
		a.ID(), a.OrderID(), a.DriverID(), a.Kind(), a.Status(), a.Notes(), a.Photos(), a.CreatedAt(), a.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

func copyMessage(m *outbox.Message) *outbox.Message {
	c, err := outbox.RestoreMessage(
		m.ID(), m.Kind(), m.AggregateID(), m.Payload(), m.Attempts(), m.State(), m.LastError(), m.CreatedAt(), m.ProcessedAt())
	if err != nil {
		panic(err)
	}
	return c
}

type memoryUoW struct {
	store    *memoryStore
	snapshot memoryStore
	done     bool
}

func (u *memoryUoW) Begin(context.Context) error {
	u.snapshot = u.store.clone()
	return nil
}

func (u *memoryUoW) Commit(context.Context) error {
	u.done = true
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	if !u.done {
		*u.store = u.snapshot
		u.done = true
	}
	return nil
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository {
	return memoryOrders{u.store}
}

func (u *memoryUoW) AssignmentRepository() ports.AssignmentRepository {
	return memoryAssignments{u.store}
}

func (u *memoryUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	return memoryHistory{u.store}
}

func (u *memoryUoW) OutboxRepository() ports.OutboxRepository {
	return memoryOutbox{u.store}
}

type memoryOrders struct{ s *memoryStore }

func (r memoryOrders) Add(_ context.Context, o *order.Order) error {
	if _, ok := r.s.orders[o.ID()]; ok {
		return errs.NewStorageError("insert order", errors.New("duplicate id"))
	}
	r.s.orders[o.ID()] = copyOrder(o)
	return nil
}

func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if o := r.s.orderByID(id); o != nil {
		return o, nil
	}
	return nil, errs.NewObjectNotFoundError("order", id)
}

func (r memoryOrders) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r memoryOrders) CompareAndSetStatus(_ context.Context, o *order.Order, expected order.Status) error {
	stored, ok := r.s.orders[o.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	if stored.Status() != expected {
		return errs.NewConcurrentModificationError("order", o.ID().String(), expected)
	}
	r.s.orders[o.ID()] = copyOrder(o)
	return nil
}

type memoryAssignments struct{ s *memoryStore }

func (r memoryAssignments) Add(_ context.Context, a *assignment.DriverAssignment) error {
	for _, existing := range r.s.assignments {
		if existing.OrderID().IsEqual(a.OrderID()) && existing.Kind() == a.Kind() && existing.IsActive() {
			return assignment.ErrActiveAssignmentExists
		}
	}
	r.s.assignments = append(r.s.assignments, copyAssignment(a))
	return nil
}

func (r memoryAssignments) Get(_ context.Context, id kernel.UUID) (*assignment.DriverAssignment, error) {
	for _, a := range r.s.assignments {
		if a.ID().IsEqual(id) {
			return copyAssignment(a), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("assignment", id)
}

func (r memoryAssignments) GetActive(
	_ context.Context, orderID kernel.UUID, kind assignment.Kind,
) (*assignment.DriverAssignment, error) {
	for _, a := range r.s.assignments {
		if a.OrderID().IsEqual(orderID) && a.Kind() == kind && a.IsActive() {
			return copyAssignment(a), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("active assignment", orderID)
}

func (r memoryAssignments) ListByOrder(_ context.Context, orderID kernel.UUID) ([]*assignment.DriverAssignment, error) {
	var out []*assignment.DriverAssignment
	for _, a := range r.s.assignments {
		if a.OrderID().IsEqual(orderID) {
			out = append(out, copyAssignment(a))
		}
	}
	return out, nil
}

func (r memoryAssignments) CompareAndSetStatus(
	_ context.Context, a *assignment.DriverAssignment, expected assignment.Status,
) error {
	for i, stored := range r.s.assignments {
		if !stored.ID().IsEqual(a.ID()) {
			continue
		}
		if stored.Status() != expected {
			return errs.NewConcurrentModificationError("assignment", a.ID().String(), expected)
		}
		r.s.assignments[i] = copyAssignment(a)
		return nil
	}
	return errs.NewObjectNotFoundError("assignment", a.ID())
}

func (r memoryAssignments) AddPhoto(_ context.Context, p *assignment.Photo) error {
	r.s.photos = append(r.s.photos, p)
	return nil
}

type memoryHistory struct{ s *memoryStore }

func (r memoryHistory) Append(_ context.Context, change order.StatusChange) error {
	r.s.history = append(r.s.history, change)
	return nil
}

type memoryOutbox struct{ s *memoryStore }

func (r memoryOutbox) Add(_ context.Context, m *outbox.Message) error {
	r.s.outbox = append(r.s.outbox, copyMessage(m))
	return nil
}

func (r memoryOutbox) GetPending(_ context.Context, limit int) ([]*outbox.Message, error) {
	var out []*outbox.Message
	for _, m := range r.s.outbox {
		if m.State() == outbox.StatePending && len(out) < limit {
			out = append(out, copyMessage(m))
		}
	}
	return out, nil
}

func (r memoryOutbox) Update(_ context.Context, m *outbox.Message) error {
	for i, stored := range r.s.outbox {
		if stored.ID().IsEqual(m.ID()) {
			r.s.outbox[i] = copyMessage(m)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("outbox message", m.ID())
}

type memoryOutboxFactory struct{ s *memoryStore }

func (f memoryOutboxFactory) Create() commands.OutboxUoW {
	return &memoryUoW{store: f.s}
}

func outboxFactoryFor(s *memoryStore) commands.OutboxUoWFactory {
	return memoryOutboxFactory{s}
}

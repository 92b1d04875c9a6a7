package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction. Every repository it hands out is
// bound to that transaction, so a status change, its history entry, its
// photo and its outbox messages commit or roll back together.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	AssignmentRepository() AssignmentRepository
	StatusHistoryRepository() StatusHistoryRepository
	OutboxRepository() OutboxRepository
}

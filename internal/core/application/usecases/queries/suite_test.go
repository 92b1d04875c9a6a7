package queries_test

import (
	"context"
	"time"

	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/suite"
)

// querySuite runs read models against a migrated PostgreSQL and seeds data
// through the real repositories.
type querySuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (s *querySuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.database = database
	s.factory = postgres.NewGormUnitOfWorkFactory(database.DB)
}

func (s *querySuite) SetupTest() {
	s.Require().NoError(s.database.Truncate())
}

func (s *querySuite) TearDownSuite() {
	s.Require().NoError(s.database.Terminate(context.Background()))
}

func (s *querySuite) viewer(role actor.Role) actor.Actor {
	return s.viewerWithID(kernel.NewUUID(), role)
}

func (s *querySuite) viewerWithID(id kernel.UUID, role actor.Role) actor.Actor {
	a, err := actor.NewActor(id, role)
	s.Require().NoError(err)
	return a
}

func (s *querySuite) seedOrder(customerID kernel.UUID, status order.Status) *order.Order {
	o := pgtest.OrderFor(s.T(), customerID, status)
	s.Require().NoError(s.factory.Create().OrderRepository().Add(context.Background(), o))
	return o
}

func (s *querySuite) seedAssignment(
	orderID, driverID kernel.UUID, kind assignment.Kind, status assignment.Status, createdAt time.Time,
) *assignment.DriverAssignment {
	a, err := assignment.RestoreAssignment(kernel.NewUUID(), orderID, driverID, kind, status, "", nil, createdAt, createdAt)
	s.Require().NoError(err)
	s.Require().NoError(s.factory.Create().AssignmentRepository().Add(context.Background(), a))
	return a
}

func (s *querySuite) seedHistory(orderID kernel.UUID, from, to order.Status, by actor.Actor, at time.Time) {
	change, err := order.NewStatusChange(orderID, from, to, by, "", at)
	s.Require().NoError(err)
	s.Require().NoError(s.factory.Create().StatusHistoryRepository().Append(context.Background(), change))
}

package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetOrderHistoryQueryHandlerTestSuite struct {
	querySuite
	handler queries.GetOrderHistoryQueryHandler
}

func (s *GetOrderHistoryQueryHandlerTestSuite) SetupSuite() {
	s.querySuite.SetupSuite()
	s.handler = queries.NewGetOrderHistoryQueryHandler(s.database.DB)
}

func (s *GetOrderHistoryQueryHandlerTestSuite) TestHandle_ReturnsEntriesInOrder() {
	customerID := kernel.NewUUID()
	customer := s.viewerWithID(customerID, actor.Customer)
	admin := s.viewer(actor.Admin)
	o := s.seedOrder(customerID, order.PickupAssigned)

	s.seedHistory(o.ID(), order.Confirmed, order.PickupAssigned, admin, pgtest.FixtureTime.Add(time.Hour))
	s.seedHistory(o.ID(), order.Unknown, order.Placed, customer, pgtest.FixtureTime)
	s.seedHistory(o.ID(), order.Placed, order.Confirmed, admin, pgtest.FixtureTime)

	query, err := queries.NewGetOrderHistoryQuery(o.ID(), customer)
	s.Require().NoError(err)

	history, err := s.handler.Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Require().Len(history, 3)

	s.Equal(order.Unknown, history[0].From)
	s.Equal(order.Placed, history[0].To)
	s.Equal(actor.Customer, history[0].ActorRole)
	s.Equal(customerID, history[0].ActorID)

	s.Equal(order.Placed, history[1].From)
	s.Equal(order.Confirmed, history[1].To)

	s.Equal(order.Confirmed, history[2].From)
	s.Equal(order.PickupAssigned, history[2].To)
	s.Equal(actor.Admin, history[2].ActorRole)
}

func (s *GetOrderHistoryQueryHandlerTestSuite) TestHandle_OtherCustomer_NotFound() {
	o := s.seedOrder(kernel.NewUUID(), order.Placed)

	query, err := queries.NewGetOrderHistoryQuery(o.ID(), s.viewer(actor.Customer))
	s.Require().NoError(err)

	history, err := s.handler.Handle(context.Background(), query)
	s.ErrorIs(err, errs.ErrObjectNotFound)
	s.Nil(history)
}

func (s *GetOrderHistoryQueryHandlerTestSuite) TestHandle_NoEntries_ReturnsEmptySlice() {
	o := s.seedOrder(kernel.NewUUID(), order.Placed)

	query, err := queries.NewGetOrderHistoryQuery(o.ID(), s.viewer(actor.FacilityTeam))
	s.Require().NoError(err)

	history, err := s.handler.Handle(context.Background(), query)
	s.Require().NoError(err)
	s.NotNil(history)
	s.Empty(history)
}

func TestGetOrderHistoryQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetOrderHistoryQueryHandlerTestSuite))
}

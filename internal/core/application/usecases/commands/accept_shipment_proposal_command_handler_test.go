package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/application/usecases/commands"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/kernel"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/order"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/model/shipment"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/domain/services"
	"github.com/yc6wppwhf9-cmyk/smart-logistic-portal/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAcceptOrderRepository struct{ mock.Mock }

func (m *MockAcceptOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockAcceptOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockAcceptOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockAcceptOrderRepository) GetByPONumber(_ context.Context, _ string) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockAcceptOrderRepository) GetAllInPendingStatus(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockAcceptOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAcceptShipmentRepository struct{ mock.Mock }

func (m *MockAcceptShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockAcceptShipmentRepository) Update(_ context.Context, _ *shipment.Shipment) error {
	return errors.New("not implemented in mock")
}
func (m *MockAcceptShipmentRepository) Get(_ context.Context, _ kernel.UUID) (*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockAcceptShipmentRepository) GetAll(_ context.Context) ([]*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAcceptUoW struct{ mock.Mock }

func (m *MockAcceptUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAcceptUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAcceptUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAcceptUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockAcceptUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockAcceptUoWFactory struct{ mock.Mock }

func (m *MockAcceptUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func acceptMemberOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem("STL-12", "Steel Rod", "7214", "Nos", 10, 250, 1.5, 0.002)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "PO-"+kernel.NewUUID().String()[:8],
		testOrderDate, "Acme Forgings", kernel.NewLocation("Mumbai"), nil, []order.Item{item})
	require.NoError(t, err)
	return o
}

func acceptProposal(poIDs ...kernel.UUID) services.ShipmentProposal {
	dispatch := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	return services.ShipmentProposal{
		DispatchDate:        dispatch,
		ExpectedArrivalDate: dispatch.AddDate(0, 0, 3),
		DistanceKm:          1700,
		Vehicle:             shipment.VehiclePickup,
		TotalWeight:         900,
		TotalCBM:            1.2,
		Recommendation:      "Optimized for Mumbai logistics lane.",
		Origin:              kernel.NewLocation("Mumbai"),
		Route:               "MUMBAI → BIHAR FACTORY",
		POIDs:               poIDs,
		Status:              services.ProposalStatusProposed,
	}
}

func TestNewAcceptShipmentProposalCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		id := kernel.NewUUID()
		proposal := acceptProposal(kernel.NewUUID())

		cmd, err := commands.NewAcceptShipmentProposalCommand(id, proposal)

		require.NoError(t, err)
		assert.Equal(t, id, cmd.ShipmentID())
		assert.Len(t, cmd.Proposal().POIDs, 1)
	})

	t.Run("invalid shipment id", func(t *testing.T) {
		_, err := commands.NewAcceptShipmentProposalCommand(kernel.UUID{}, acceptProposal(kernel.NewUUID()))
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("proposal without orders", func(t *testing.T) {
		_, err := commands.NewAcceptShipmentProposalCommand(kernel.NewUUID(), acceptProposal())
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrProposalHasNoOrders)
	})
}

func TestAcceptShipmentProposalCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	member := acceptMemberOrder(t)
	cmd, err := commands.NewAcceptShipmentProposalCommand(kernel.NewUUID(), acceptProposal(member.ID()))
	require.NoError(t, err)

	orderRepo := new(MockAcceptOrderRepository)
	shipmentRepo := new(MockAcceptShipmentRepository)
	uow := new(MockAcceptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, member.ID()).Return(member, nil).Once(),
		orderRepo.On("Update", ctx, member).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptShipmentProposalCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Consolidated, member.Status())
	orderRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAcceptShipmentProposalCommandHandler_Handle_MemberNoLongerEligible(t *testing.T) {
	ctx := t.Context()
	member := acceptMemberOrder(t)
	require.NoError(t, member.Consolidate()) // already taken by another shipment
	cmd, err := commands.NewAcceptShipmentProposalCommand(kernel.NewUUID(), acceptProposal(member.ID()))
	require.NoError(t, err)

	orderRepo := new(MockAcceptOrderRepository)
	shipmentRepo := new(MockAcceptShipmentRepository)
	uow := new(MockAcceptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, member.ID()).Return(member, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptShipmentProposalCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptShipmentProposalCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptShipmentProposalCommand{} // not constructed properly
	factory := new(MockAcceptUoWFactory)
	h := commands.NewAcceptShipmentProposalCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAcceptShipmentProposalCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	member := acceptMemberOrder(t)
	cmd, err := commands.NewAcceptShipmentProposalCommand(kernel.NewUUID(), acceptProposal(member.ID()))
	require.NoError(t, err)

	shipmentRepo := new(MockAcceptShipmentRepository)
	uow := new(MockAcceptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptShipmentProposalCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

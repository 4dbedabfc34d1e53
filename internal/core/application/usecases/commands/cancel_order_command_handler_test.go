package commands_test

import (
	"testing"

	"supply/internal/core/application/usecases/commands"
	"supply/internal/core/domain/model/order"
	"supply/internal/core/domain/model/stock"
	"supply/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_ReleasesReservation(t *testing.T) {
	ctx := t.Context()
	f := newSupplyFixture(t)
	aggregate := f.pendingOrder(t)

	companyEntry, err := stock.RestoreEntry(f.companyKey, 84, 16, stock.DefaultAlertThreshold)
	require.NoError(t, err)
	independentEntry, err := stock.RestoreEntry(f.independentKey, 99, 1, stock.DefaultAlertThreshold)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	uow, factory := newOrderStockUoW(orderRepo, stockRepo)

	orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	stockRepo.On("GetForUpdate", mock.Anything, mock.AnythingOfType("[]stock.Key")).
		Return([]*stock.Entry{companyEntry, independentEntry}, nil).Once()
	stockRepo.On("Update", mock.Anything, mock.AnythingOfType("*stock.Entry")).Return(nil).Twice()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.Cancelled, aggregate.Status())

	// Every reserved unit went back to availability.
	require.Equal(t, 100, companyEntry.Available())
	require.Equal(t, 0, companyEntry.Reserved())
	require.Equal(t, 100, independentEntry.Available())
	require.Equal(t, 0, independentEntry.Reserved())

	orderRepo.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_CancelsPreparedOrder(t *testing.T) {
	ctx := t.Context()
	f := newSupplyFixture(t)
	aggregate := f.orderInStatus(t, order.Prepared)

	companyEntry, err := stock.RestoreEntry(f.companyKey, 84, 16, stock.DefaultAlertThreshold)
	require.NoError(t, err)
	independentEntry, err := stock.RestoreEntry(f.independentKey, 99, 1, stock.DefaultAlertThreshold)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	uow, factory := newOrderStockUoW(orderRepo, stockRepo)

	orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	stockRepo.On("GetForUpdate", mock.Anything, mock.AnythingOfType("[]stock.Key")).
		Return([]*stock.Entry{companyEntry, independentEntry}, nil).Once()
	stockRepo.On("Update", mock.Anything, mock.AnythingOfType("*stock.Entry")).Return(nil).Twice()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Cancelled, aggregate.Status())
}

func TestCancelOrderCommandHandler_Handle_IdempotentRetry(t *testing.T) {
	ctx := t.Context()
	f := newSupplyFixture(t)
	aggregate := f.orderInStatus(t, order.Cancelled)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	uow, factory := newOrderStockUoW(orderRepo, stockRepo)

	orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// Retrying a cancelled order must not release stock twice.
	stockRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderRejected(t *testing.T) {
	ctx := t.Context()
	f := newSupplyFixture(t)
	aggregate := f.orderInStatus(t, order.Delivered)

	orderRepo := new(MockOrderRepository)
	stockRepo := new(MockStockRepository)
	uow, factory := newOrderStockUoW(orderRepo, stockRepo)
	orderRepo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID())
	require.NoError(t, err)

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	stockRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

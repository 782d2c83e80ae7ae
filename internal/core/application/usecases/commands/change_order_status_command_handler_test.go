package commands_test

import (
	"context"
	"sync"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/status"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func unapprovedOrder(t *testing.T, id int) *order.Order {
	t.Helper()
	items, err := order.NewItems(orderItemInputs())
	require.NoError(t, err)
	aggregate, err := order.RestoreOrder(id, 5, status.Status{ID: 1, Name: status.Unapproved}, nil, items)
	require.NoError(t, err)
	return aggregate
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(7, status.IdentifierByName(status.Approved))
	require.NoError(t, err)

	aggregate := unapprovedOrder(t, 7)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, 7).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateStatus", mock.Anything, aggregate, 1).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, testCatalog(t))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, status.Approved, aggregate.Status().Name)
	require.NotNil(t, aggregate.ApprovedAt())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_AbsentTarget(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(7, status.Identifier{})
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(factory, testCatalog(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatusCommandHandler_Handle_UnknownTarget(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(7, status.IdentifierByName("WYSLANE"))
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(factory, testCatalog(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(404, status.IdentifierByID(2))
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("order", 404)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, 404).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, testCatalog(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_GuardRejectionSkipsPersistence(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(7, status.IdentifierByName(status.Unapproved))
	require.NoError(t, err)

	items, err := order.NewItems(orderItemInputs())
	require.NoError(t, err)
	aggregate, err := order.RestoreOrder(7, 5, status.Status{ID: 2, Name: status.Approved}, nil, items)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, 7).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, testCatalog(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_UpdateConflict(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(7, status.IdentifierByName(status.Approved))
	require.NoError(t, err)

	aggregate := unapprovedOrder(t, 7)
	conflict := errs.NewConflictError("order status was changed concurrently")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, 7).Return(aggregate, nil).Once(),
		orderRepo.On("UpdateStatus", mock.Anything, aggregate, 1).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, testCatalog(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

// casOrderStore is an in-memory stand-in for the persistence layer with the
// same compare-and-swap contract as the real adapter: an update only lands
// when the stored status still matches the one the handler read. The reads
// barrier holds every writer until all participants have loaded the order,
// forcing the interleaving where both transitions race the same snapshot.
type casOrderStore struct {
	mu       sync.Mutex
	reads    sync.WaitGroup
	statusID int
	byID     map[int]status.Status
	items    []order.Item
	userID   int
	orderID  int
}

func (s *casOrderStore) Begin(context.Context) error    { return nil }
func (s *casOrderStore) Commit(context.Context) error   { return nil }
func (s *casOrderStore) Rollback(context.Context) error { return nil }

func (s *casOrderStore) OrderRepository() ports.OrderRepository { return (*casOrderRepo)(s) }

type casOrderRepo casOrderStore

func (r *casOrderRepo) Add(context.Context, *order.Order) (int, error) {
	panic("not used")
}

func (r *casOrderRepo) Get(_ context.Context, id int) (*order.Order, error) {
	r.mu.Lock()
	st := r.byID[r.statusID]
	r.mu.Unlock()
	r.reads.Done()
	if id != r.orderID {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return order.RestoreOrder(id, r.userID, st, nil, r.items)
}

func (r *casOrderRepo) UpdateStatus(_ context.Context, aggregate *order.Order, expectedStatusID int) error {
	r.reads.Wait()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.statusID != expectedStatusID {
		return errs.NewConflictError("order status was changed concurrently")
	}
	r.statusID = aggregate.Status().ID
	return nil
}

type casUoWFactory struct {
	store *casOrderStore
}

func (f casUoWFactory) Create() commands.OrderUoW { return f.store }

func TestChangeOrderStatusCommandHandler_Handle_ConcurrentTransitions(t *testing.T) {
	ctx := context.Background()
	items, err := order.NewItems(orderItemInputs())
	require.NoError(t, err)

	store := &casOrderStore{
		statusID: 1,
		byID: map[int]status.Status{
			1: {ID: 1, Name: status.Unapproved},
			2: {ID: 2, Name: status.Approved},
			3: {ID: 3, Name: status.Cancelled},
		},
		items:   items,
		userID:  5,
		orderID: 7,
	}
	store.reads.Add(2)

	h := commands.NewChangeOrderStatusCommandHandler(casUoWFactory{store: store}, testCatalog(t))

	approve, err := commands.NewChangeOrderStatusCommand(7, status.IdentifierByName(status.Approved))
	require.NoError(t, err)
	cancel, err := commands.NewChangeOrderStatusCommand(7, status.IdentifierByName(status.Cancelled))
	require.NoError(t, err)

	results := make(chan error, 2)
	go func() { results <- h.Handle(ctx, approve) }()
	go func() { results <- h.Handle(ctx, cancel) }()

	err1, err2 := <-results, <-results
	succeeded, failed := 0, 0
	for _, err := range []error{err1, err2} {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, errs.ErrConflict)
		failed++
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)
	assert.Contains(t, []int{2, 3}, store.statusID)
}

package commands_test

import (
	"context"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/opinion"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) (int, error) {
	args := m.Called(ctx, aggregate)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expectedStatusID int) error {
	args := m.Called(ctx, aggregate, expectedStatusID)
	return args.Error(0)
}

type MockOpinionRepository struct{ mock.Mock }

func (m *MockOpinionRepository) ExistsForOrder(ctx context.Context, orderID int) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOpinionRepository) Add(ctx context.Context, aggregate *opinion.Opinion) (*opinion.Opinion, error) {
	args := m.Called(ctx, aggregate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opinion.Opinion), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) ExistingIDs(ctx context.Context, ids []int) ([]int, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

// MockUoW implements every unit-of-work variant the handlers consume.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OpinionRepository() ports.OpinionRepository {
	args := m.Called()
	return args.Get(0).(ports.OpinionRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOpinionUoWFactory struct{ mock.Mock }

func (m *MockOpinionUoWFactory) Create() commands.OpinionUoW {
	args := m.Called()
	return args.Get(0).(commands.OpinionUoW)
}

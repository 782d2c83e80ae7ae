// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OpinionRepoFactory provides access to the opinion repository within a transaction.
	OpinionRepoFactory interface {
		OpinionRepository() ports.OpinionRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that only touch the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OpinionUoW manages transactions for opinion admission, which reads the
	// order aggregate and writes the opinion in one unit.
	OpinionUoW interface {
		TxManager
		OrderRepoFactory
		OpinionRepoFactory
	}

	// OpinionUoWFactory creates new opinion unit of work instances.
	OpinionUoWFactory interface {
		Create() OpinionUoW
	}

	// UoW manages transactions spanning orders, opinions and the product
	// existence check. Order creation persists the order row and its item
	// rows in this single unit: either everything commits or nothing does.
	UoW interface {
		TxManager
		OrderRepoFactory
		OpinionRepoFactory
		ProductRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans the order row, its item rows and the opinion
// row touched by one business operation and coordinates writing them out in a
// single database transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, catalog)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if _, err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets its own instance; instances are not safe for
// concurrent use.
package postgres

import (
	"context"

	"shop/internal/adapters/out/postgres/opinionrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/core/domain/model/status"
	"shop/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection. The factory ensures each business operation gets a fresh unit
// of work with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db      *gorm.DB
	catalog status.Catalog
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The catalog is handed to the order repository so rehydrated
// aggregates carry resolved status names.
func NewGormUnitOfWorkFactory(db *gorm.DB, catalog status.Catalog) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, catalog: catalog}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		catalog: f.catalog,
	}
}

// GormUnitOfWork coordinates a database transaction across the repositories
// one business operation touches. Repositories obtained before Begin run
// against the main connection; after Begin they run inside the transaction.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	catalog status.Catalog
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active, which
// makes the deferred rollback after a successful commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides order persistence bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.connection(), uow.catalog)
}

// OpinionRepository provides opinion persistence bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) OpinionRepository() ports.OpinionRepository {
	return opinionrepo.NewGormOpinionRepository(uow.connection())
}

// ProductRepository provides product catalog reads bound to the current
// transaction if one is active.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.connection())
}

func (uow *GormUnitOfWork) connection() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

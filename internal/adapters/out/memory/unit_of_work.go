package memory

import (
	"context"
	"errors"

	"crown/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory hands out units of work over one shared DeliveryRepository.
type UnitOfWorkFactory struct {
	repo *DeliveryRepository
}

func NewUnitOfWorkFactory(repo *DeliveryRepository) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{repo: repo}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{repo: f.repo}
}

// UnitOfWork tracks the Begin/Commit/Rollback protocol for the in-memory store.
// Each repository call is applied immediately, so Rollback cannot undo a write that
// already happened; every command performs at most one write.
type UnitOfWork struct {
	repo   *DeliveryRepository
	active bool
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.active = true
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	u.active = false
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	u.active = false
	return nil
}

func (u *UnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return u.repo
}

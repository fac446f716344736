package uowmock

import (
	"context"
	"errors"

	"wms-backend/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
	Repos      uow.Repos
}

func New() *UoW { return &UoW{} }

// Passthrough returns a mock whose WithinTx simply invokes fn with the
// given repos, with no transaction semantics.
func Passthrough(r uow.Repos) *UoW {
	m := &UoW{Repos: r}
	m.WithinTxFn = func(ctx context.Context, fn func(r uow.Repos) error) error {
		return fn(m.Repos)
	}
	return m
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

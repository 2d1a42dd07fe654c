package unitofwork

import (
	"context"

	"intelliject-be/pkg/database"
)

type RepositoryFactoryImpl struct {
	gateway *database.Gateway
}

func NewRepositoryFactory(gateway *database.Gateway) RepositoryFactory {
	return &RepositoryFactoryImpl{
		gateway: gateway,
	}
}

// NewUnitOfWork hands out a short-lived unit of work bound to the live
// backend. In flat-file mode it reports database.ErrBackendUnavailable so
// callers can degrade instead of touching a dead handle.
func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) (UnitOfWork, error) {
	db, err := f.gateway.DB()
	if err != nil {
		return nil, err
	}
	return NewUnitOfWork(db), nil
}

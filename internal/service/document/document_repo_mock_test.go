package document

import (
	"context"
	"github.com/google/uuid"
	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"sync"
	"time"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	CreateFunc        func(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	GetByIDFunc       func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Document, error)
	HardDeleteFunc    func(ctx context.Context, id uuid.UUID) error
	ListByOwnerFunc   func(ctx context.Context, ownerID uuid.UUID, limit int, offset int) ([]domain.Document, error)
	ListPurgeableFunc func(ctx context.Context, before time.Time, limit int) ([]domain.Document, error)
	SoftDeleteFunc    func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Doc *domain.Document
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
		HardDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Limit   int
			Offset  int
		}
		ListPurgeable []struct {
			Ctx    context.Context
			Before time.Time
			Limit  int
		}
		SoftDelete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockHardDelete    sync.RWMutex
	lockListByOwner   sync.RWMutex
	lockListPurgeable sync.RWMutex
	lockSoftDelete    sync.RWMutex
}

func (mock *documentRepoMock) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if mock.CreateFunc == nil {
		panic("documentRepoMock.CreateFunc: method is nil but documentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Doc *domain.Document
	}{Ctx: ctx, Doc: doc}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, doc)
}

func (mock *documentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Doc *domain.Document
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *documentRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Document, error) {
	if mock.GetByIDFunc == nil {
		panic("documentRepoMock.GetByIDFunc: method is nil but documentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *documentRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *documentRepoMock) HardDelete(ctx context.Context, id uuid.UUID) error {
	if mock.HardDeleteFunc == nil {
		panic("documentRepoMock.HardDeleteFunc: method is nil but documentRepo.HardDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockHardDelete.Lock()
	mock.calls.HardDelete = append(mock.calls.HardDelete, callInfo)
	mock.lockHardDelete.Unlock()
	return mock.HardDeleteFunc(ctx, id)
}

func (mock *documentRepoMock) HardDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockHardDelete.RLock()
	calls := mock.calls.HardDelete
	mock.lockHardDelete.RUnlock()
	return calls
}

func (mock *documentRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int, offset int) ([]domain.Document, error) {
	if mock.ListByOwnerFunc == nil {
		panic("documentRepoMock.ListByOwnerFunc: method is nil but documentRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Limit   int
		Offset  int
	}{Ctx: ctx, OwnerID: ownerID, Limit: limit, Offset: offset}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID, limit, offset)
}

func (mock *documentRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Limit   int
	Offset  int
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *documentRepoMock) ListPurgeable(ctx context.Context, before time.Time, limit int) ([]domain.Document, error) {
	if mock.ListPurgeableFunc == nil {
		panic("documentRepoMock.ListPurgeableFunc: method is nil but documentRepo.ListPurgeable was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Before time.Time
		Limit  int
	}{Ctx: ctx, Before: before, Limit: limit}
	mock.lockListPurgeable.Lock()
	mock.calls.ListPurgeable = append(mock.calls.ListPurgeable, callInfo)
	mock.lockListPurgeable.Unlock()
	return mock.ListPurgeableFunc(ctx, before, limit)
}

func (mock *documentRepoMock) ListPurgeableCalls() []struct {
	Ctx    context.Context
	Before time.Time
	Limit  int
} {
	mock.lockListPurgeable.RLock()
	calls := mock.calls.ListPurgeable
	mock.lockListPurgeable.RUnlock()
	return calls
}

func (mock *documentRepoMock) SoftDelete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("documentRepoMock.SoftDeleteFunc: method is nil but documentRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, ownerID, id)
}

func (mock *documentRepoMock) SoftDeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

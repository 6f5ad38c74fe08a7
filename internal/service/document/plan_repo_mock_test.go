package document

import (
	"context"
	"github.com/google/uuid"
	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"sync"
)

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	CreateFunc           func(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error)
	DeleteByDocumentFunc func(ctx context.Context, ownerID uuid.UUID, documentID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Plan *domain.StudyPlan
		}
		DeleteByDocument []struct {
			Ctx        context.Context
			OwnerID    uuid.UUID
			DocumentID uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockDeleteByDocument sync.RWMutex
}

func (mock *planRepoMock) Create(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error) {
	if mock.CreateFunc == nil {
		panic("planRepoMock.CreateFunc: method is nil but planRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Plan *domain.StudyPlan
	}{Ctx: ctx, Plan: plan}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, plan)
}

func (mock *planRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Plan *domain.StudyPlan
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *planRepoMock) DeleteByDocument(ctx context.Context, ownerID uuid.UUID, documentID uuid.UUID) error {
	if mock.DeleteByDocumentFunc == nil {
		panic("planRepoMock.DeleteByDocumentFunc: method is nil but planRepo.DeleteByDocument was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		OwnerID    uuid.UUID
		DocumentID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, DocumentID: documentID}
	mock.lockDeleteByDocument.Lock()
	mock.calls.DeleteByDocument = append(mock.calls.DeleteByDocument, callInfo)
	mock.lockDeleteByDocument.Unlock()
	return mock.DeleteByDocumentFunc(ctx, ownerID, documentID)
}

func (mock *planRepoMock) DeleteByDocumentCalls() []struct {
	Ctx        context.Context
	OwnerID    uuid.UUID
	DocumentID uuid.UUID
} {
	mock.lockDeleteByDocument.RLock()
	calls := mock.calls.DeleteByDocument
	mock.lockDeleteByDocument.RUnlock()
	return calls
}

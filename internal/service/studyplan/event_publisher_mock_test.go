package studyplan

import (
	"context"
	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"sync"
)

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishPlanCompletionFunc func(ctx context.Context, evt domain.PlanCompletionChanged) error

	calls struct {
		PublishPlanCompletion []struct {
			Ctx context.Context
			Evt domain.PlanCompletionChanged
		}
	}
	lockPublishPlanCompletion sync.RWMutex
}

func (mock *eventPublisherMock) PublishPlanCompletion(ctx context.Context, evt domain.PlanCompletionChanged) error {
	if mock.PublishPlanCompletionFunc == nil {
		panic("eventPublisherMock.PublishPlanCompletionFunc: method is nil but eventPublisher.PublishPlanCompletion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Evt domain.PlanCompletionChanged
	}{Ctx: ctx, Evt: evt}
	mock.lockPublishPlanCompletion.Lock()
	mock.calls.PublishPlanCompletion = append(mock.calls.PublishPlanCompletion, callInfo)
	mock.lockPublishPlanCompletion.Unlock()
	return mock.PublishPlanCompletionFunc(ctx, evt)
}

func (mock *eventPublisherMock) PublishPlanCompletionCalls() []struct {
	Ctx context.Context
	Evt domain.PlanCompletionChanged
} {
	mock.lockPublishPlanCompletion.RLock()
	calls := mock.calls.PublishPlanCompletion
	mock.lockPublishPlanCompletion.RUnlock()
	return calls
}

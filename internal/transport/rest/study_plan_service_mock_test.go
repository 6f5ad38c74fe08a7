package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"github.com/peaklearn/peaklearn-backend/internal/service/studyplan"
	"sync"
)

var _ studyPlanService = &studyPlanServiceMock{}

type studyPlanServiceMock struct {
	GetPlanFunc            func(ctx context.Context, planID uuid.UUID) (*studyplan.PlanView, error)
	HistoryFunc            func(ctx context.Context, input studyplan.HistoryInput) ([]domain.AuditRecord, error)
	ListPlansFunc          func(ctx context.Context, input studyplan.ListPlansInput) ([]studyplan.PlanView, error)
	SetPlanCompletionFunc  func(ctx context.Context, input studyplan.SetPlanCompletionInput) (*studyplan.PlanView, error)
	SetTopicCompletionFunc func(ctx context.Context, input studyplan.SetTopicCompletionInput) (*studyplan.TopicResult, error)

	calls struct {
		GetPlan []struct {
			Ctx    context.Context
			PlanID uuid.UUID
		}
		History []struct {
			Ctx   context.Context
			Input studyplan.HistoryInput
		}
		ListPlans []struct {
			Ctx   context.Context
			Input studyplan.ListPlansInput
		}
		SetPlanCompletion []struct {
			Ctx   context.Context
			Input studyplan.SetPlanCompletionInput
		}
		SetTopicCompletion []struct {
			Ctx   context.Context
			Input studyplan.SetTopicCompletionInput
		}
	}
	lockGetPlan            sync.RWMutex
	lockHistory            sync.RWMutex
	lockListPlans          sync.RWMutex
	lockSetPlanCompletion  sync.RWMutex
	lockSetTopicCompletion sync.RWMutex
}

func (mock *studyPlanServiceMock) GetPlan(ctx context.Context, planID uuid.UUID) (*studyplan.PlanView, error) {
	if mock.GetPlanFunc == nil {
		panic("studyPlanServiceMock.GetPlanFunc: method is nil but studyPlanService.GetPlan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PlanID uuid.UUID
	}{Ctx: ctx, PlanID: planID}
	mock.lockGetPlan.Lock()
	mock.calls.GetPlan = append(mock.calls.GetPlan, callInfo)
	mock.lockGetPlan.Unlock()
	return mock.GetPlanFunc(ctx, planID)
}

func (mock *studyPlanServiceMock) GetPlanCalls() []struct {
	Ctx    context.Context
	PlanID uuid.UUID
} {
	mock.lockGetPlan.RLock()
	calls := mock.calls.GetPlan
	mock.lockGetPlan.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) History(ctx context.Context, input studyplan.HistoryInput) ([]domain.AuditRecord, error) {
	if mock.HistoryFunc == nil {
		panic("studyPlanServiceMock.HistoryFunc: method is nil but studyPlanService.History was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input studyplan.HistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, input)
}

func (mock *studyPlanServiceMock) HistoryCalls() []struct {
	Ctx   context.Context
	Input studyplan.HistoryInput
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) ListPlans(ctx context.Context, input studyplan.ListPlansInput) ([]studyplan.PlanView, error) {
	if mock.ListPlansFunc == nil {
		panic("studyPlanServiceMock.ListPlansFunc: method is nil but studyPlanService.ListPlans was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input studyplan.ListPlansInput
	}{Ctx: ctx, Input: input}
	mock.lockListPlans.Lock()
	mock.calls.ListPlans = append(mock.calls.ListPlans, callInfo)
	mock.lockListPlans.Unlock()
	return mock.ListPlansFunc(ctx, input)
}

func (mock *studyPlanServiceMock) ListPlansCalls() []struct {
	Ctx   context.Context
	Input studyplan.ListPlansInput
} {
	mock.lockListPlans.RLock()
	calls := mock.calls.ListPlans
	mock.lockListPlans.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) SetPlanCompletion(ctx context.Context, input studyplan.SetPlanCompletionInput) (*studyplan.PlanView, error) {
	if mock.SetPlanCompletionFunc == nil {
		panic("studyPlanServiceMock.SetPlanCompletionFunc: method is nil but studyPlanService.SetPlanCompletion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input studyplan.SetPlanCompletionInput
	}{Ctx: ctx, Input: input}
	mock.lockSetPlanCompletion.Lock()
	mock.calls.SetPlanCompletion = append(mock.calls.SetPlanCompletion, callInfo)
	mock.lockSetPlanCompletion.Unlock()
	return mock.SetPlanCompletionFunc(ctx, input)
}

func (mock *studyPlanServiceMock) SetPlanCompletionCalls() []struct {
	Ctx   context.Context
	Input studyplan.SetPlanCompletionInput
} {
	mock.lockSetPlanCompletion.RLock()
	calls := mock.calls.SetPlanCompletion
	mock.lockSetPlanCompletion.RUnlock()
	return calls
}

func (mock *studyPlanServiceMock) SetTopicCompletion(ctx context.Context, input studyplan.SetTopicCompletionInput) (*studyplan.TopicResult, error) {
	if mock.SetTopicCompletionFunc == nil {
		panic("studyPlanServiceMock.SetTopicCompletionFunc: method is nil but studyPlanService.SetTopicCompletion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input studyplan.SetTopicCompletionInput
	}{Ctx: ctx, Input: input}
	mock.lockSetTopicCompletion.Lock()
	mock.calls.SetTopicCompletion = append(mock.calls.SetTopicCompletion, callInfo)
	mock.lockSetTopicCompletion.Unlock()
	return mock.SetTopicCompletionFunc(ctx, input)
}

func (mock *studyPlanServiceMock) SetTopicCompletionCalls() []struct {
	Ctx   context.Context
	Input studyplan.SetTopicCompletionInput
} {
	mock.lockSetTopicCompletion.RLock()
	calls := mock.calls.SetTopicCompletion
	mock.lockSetTopicCompletion.RUnlock()
	return calls
}

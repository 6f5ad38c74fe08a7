package document

import (
	"context"
	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"sync"
)

var _ topicExtractor = &topicExtractorMock{}

type topicExtractorMock struct {
	ExtractFunc func(ctx context.Context, subject string) ([]domain.OutlineTopic, error)

	calls struct {
		Extract []struct {
			Ctx     context.Context
			Subject string
		}
	}
	lockExtract sync.RWMutex
}

func (mock *topicExtractorMock) Extract(ctx context.Context, subject string) ([]domain.OutlineTopic, error) {
	if mock.ExtractFunc == nil {
		panic("topicExtractorMock.ExtractFunc: method is nil but topicExtractor.Extract was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Subject string
	}{Ctx: ctx, Subject: subject}
	mock.lockExtract.Lock()
	mock.calls.Extract = append(mock.calls.Extract, callInfo)
	mock.lockExtract.Unlock()
	return mock.ExtractFunc(ctx, subject)
}

func (mock *topicExtractorMock) ExtractCalls() []struct {
	Ctx     context.Context
	Subject string
} {
	mock.lockExtract.RLock()
	calls := mock.calls.Extract
	mock.lockExtract.RUnlock()
	return calls
}

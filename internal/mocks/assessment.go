package mocks

import (
	"context"

	"github.com/pageza/vexine/backend/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockAssessmentService is a mock implementation of the IAssessmentService interface
type MockAssessmentService struct {
	mock.Mock
}

func (m *MockAssessmentService) Assess(ctx context.Context, p model.Profile) (*model.Assessment, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assessment), args.Error(1)
}

func (m *MockAssessmentService) Metrics(ctx context.Context, p model.Profile) (*model.Metrics, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Metrics), args.Error(1)
}

func (m *MockAssessmentService) Recommend(ctx context.Context, sel model.Selector) model.Recommendations {
	args := m.Called(ctx, sel)
	return args.Get(0).(model.Recommendations)
}

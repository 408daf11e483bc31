package service

import (
	"context"

	"github.com/pageza/vexine/backend/internal/model"
)

// IAssessmentService defines the interface consumed by presentation front ends
type IAssessmentService interface {
	Assess(ctx context.Context, p model.Profile) (*model.Assessment, error)
	Metrics(ctx context.Context, p model.Profile) (*model.Metrics, error)
	Recommend(ctx context.Context, sel model.Selector) model.Recommendations
}

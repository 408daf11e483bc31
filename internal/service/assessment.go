package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/vexine/backend/internal/model"
	"github.com/rs/zerolog"
)

// AssessmentService runs validation, metrics and recommendations as one
// pipeline. It keeps no state between calls.
type AssessmentService struct {
	logger zerolog.Logger
	now    func() time.Time
}

// Ensure AssessmentService implements IAssessmentService
var _ IAssessmentService = (*AssessmentService)(nil)

// NewAssessmentService creates a new AssessmentService instance
func NewAssessmentService(logger zerolog.Logger) *AssessmentService {
	return &AssessmentService{
		logger: logger.With().Str("component", "assessment").Logger(),
		now:    time.Now,
	}
}

// Assess validates p, computes its metrics and selects recommendations. On
// ErrInvalidInput nothing else is computed.
func (s *AssessmentService) Assess(ctx context.Context, p model.Profile) (*model.Assessment, error) {
	metrics, err := s.computeMetrics(p)
	if err != nil {
		return nil, err
	}

	recs := ComputeRecommendations(model.Selector{
		BMICategory:     metrics.BMICategory,
		Goal:            p.Goal,
		FitnessLevel:    p.FitnessLevel,
		DesiredBodyType: p.DesiredBodyType,
	})

	a := &model.Assessment{
		ID:              uuid.New(),
		Profile:         p,
		Metrics:         *metrics,
		Recommendations: recs,
		CreatedAt:       s.now().UTC(),
	}

	s.logger.Debug().
		Str("assessment_id", a.ID.String()).
		Str("bmi_category", string(metrics.BMICategory)).
		Int("nutrition_tips", len(recs.NutritionTips)).
		Int("exercise_tips", len(recs.ExerciseTips)).
		Int("lifestyle_tips", len(recs.LifestyleTips)).
		Msg("assessment computed")

	return a, nil
}

// Metrics validates p and computes its metrics.
func (s *AssessmentService) Metrics(ctx context.Context, p model.Profile) (*model.Metrics, error) {
	metrics, err := s.computeMetrics(p)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Float64("bmi", metrics.BMI).
		Str("bmi_category", string(metrics.BMICategory)).
		Float64("maintenance_calories", metrics.MaintenanceCalories).
		Msg("metrics computed")

	return metrics, nil
}

// Recommend selects the tip lists for sel.
func (s *AssessmentService) Recommend(ctx context.Context, sel model.Selector) model.Recommendations {
	recs := ComputeRecommendations(sel)

	s.logger.Debug().
		Str("bmi_category", string(sel.BMICategory)).
		Str("goal", string(sel.Goal)).
		Str("fitness_level", string(sel.FitnessLevel)).
		Str("desired_body_type", string(sel.DesiredBodyType)).
		Int("nutrition_tips", len(recs.NutritionTips)).
		Int("exercise_tips", len(recs.ExerciseTips)).
		Int("lifestyle_tips", len(recs.LifestyleTips)).
		Msg("recommendations selected")

	return recs
}

// computeMetrics logs only rejections; callers log their own success event.
func (s *AssessmentService) computeMetrics(p model.Profile) (*model.Metrics, error) {
	metrics, err := ComputeMetrics(p)
	if err != nil {
		s.logger.Debug().Err(err).Msg("profile rejected")
		return nil, err
	}
	return metrics, nil
}

package types

import (
	"errors"
	"testing"

	"github.com/pageza/vexine/backend/internal/model"
	"github.com/pageza/vexine/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestProfileRequestDefaultsAndNormalization(t *testing.T) {
	req := ProfileRequest{
		Age:           intPtr(40),
		HeightCm:      floatPtr(175),
		WeightKg:      floatPtr(80),
		Goal:          "lose weight",
		ActivityLevel: "very active",
	}

	p, err := req.Profile()
	require.NoError(t, err)

	assert.Equal(t, 40, p.Age)
	assert.Equal(t, 175.0, p.HeightCm)
	assert.Equal(t, 80.0, p.WeightKg)
	assert.Equal(t, model.GoalLoseWeight, p.Goal)
	assert.Equal(t, model.ActivityVeryActive, p.ActivityLevel)
	// unset selections keep the form defaults
	assert.Equal(t, model.GenderMale, p.Gender)
	assert.Equal(t, model.BodyAverage, p.CurrentBodyType)
	assert.Equal(t, model.DesiredAthletic, p.DesiredBodyType)
	assert.Equal(t, model.FitnessBeginner, p.FitnessLevel)
}

func TestProfileRequestInvalidInputBeforeRange(t *testing.T) {
	req := ProfileRequest{Age: intPtr(30), HeightCm: floatPtr(0), WeightKg: floatPtr(70)}
	_, err := req.Profile()
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	req = ProfileRequest{Age: intPtr(30), HeightCm: floatPtr(170), WeightKg: floatPtr(-1)}
	_, err = req.Profile()
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestProfileRequestRanges(t *testing.T) {
	tests := []struct {
		name  string
		req   ProfileRequest
		field string
	}{
		{"too young", ProfileRequest{Age: intPtr(9), HeightCm: floatPtr(170), WeightKg: floatPtr(70)}, "age"},
		{"too old", ProfileRequest{Age: intPtr(101), HeightCm: floatPtr(170), WeightKg: floatPtr(70)}, "age"},
		{"too short", ProfileRequest{Age: intPtr(30), HeightCm: floatPtr(99.9), WeightKg: floatPtr(70)}, "height_cm"},
		{"too heavy", ProfileRequest{Age: intPtr(30), HeightCm: floatPtr(170), WeightKg: floatPtr(200.5)}, "weight_kg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Profile()
			var rangeErr *RangeError
			require.True(t, errors.As(err, &rangeErr), "got %v", err)
			assert.Equal(t, tt.field, rangeErr.Field)
			assert.False(t, errors.Is(err, service.ErrInvalidInput))
		})
	}

	edges := ProfileRequest{Age: intPtr(10), HeightCm: floatPtr(250), WeightKg: floatPtr(30)}
	_, err := edges.Profile()
	assert.NoError(t, err)
}

func TestRecommendationRequestSelector(t *testing.T) {
	sel := RecommendationRequest{
		BMICategory:     "obese",
		Goal:            "Gain Muscle",
		FitnessLevel:    "advanced",
		DesiredBodyType: "lean",
	}.Selector()

	assert.Equal(t, model.Selector{
		BMICategory:     model.BMIObese,
		Goal:            model.GoalGainMuscle,
		FitnessLevel:    model.FitnessAdvanced,
		DesiredBodyType: model.DesiredLean,
	}, sel)
}

func TestRecommendationRequestSelectorDefaults(t *testing.T) {
	sel := RecommendationRequest{BMICategory: "normal"}.Selector()

	def := model.DefaultProfile()
	assert.Equal(t, model.Selector{
		BMICategory:     model.BMINormal,
		Goal:            def.Goal,
		FitnessLevel:    def.FitnessLevel,
		DesiredBodyType: def.DesiredBodyType,
	}, sel)
}

func TestNewOptionsResponse(t *testing.T) {
	resp := NewOptionsResponse()
	assert.Equal(t, model.DefaultProfile(), resp.Defaults)
	assert.Equal(t, InputRange{Min: 100, Max: 250}, resp.Ranges["height_cm"])
	assert.Len(t, resp.Options.FitnessLevels, 3)
}

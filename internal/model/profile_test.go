package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpellings(t *testing.T) {
	assert.Equal(t, GoalLoseWeight, NormalizeGoal("lose weight"))
	assert.Equal(t, GoalGainMuscle, NormalizeGoal("Gain Muscle"))
	assert.Equal(t, GoalMaintain, NormalizeGoal("maintain current"))
	assert.Equal(t, GoalImproveFitness, NormalizeGoal("improve-fitness"))
	assert.Equal(t, ActivityVeryActive, NormalizeActivityLevel("very active"))
	assert.Equal(t, ActivityVeryActive, NormalizeActivityLevel("  VERY_ACTIVE "))
	assert.Equal(t, FitnessAdvanced, NormalizeFitnessLevel("Advanced"))
	assert.Equal(t, DesiredMuscular, NormalizeDesiredBody("muscular"))
	assert.Equal(t, BodyOverweight, NormalizeBodyType("Overweight"))
	assert.Equal(t, GenderFemale, NormalizeGender("FEMALE"))
}

func TestNormalizeKeepsUnknownValues(t *testing.T) {
	assert.Equal(t, ActivityLevel("couch_potato"), NormalizeActivityLevel("couch potato"))
	assert.Equal(t, Goal("bulk"), NormalizeGoal("bulk"))
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, 25, p.Age)
	assert.Equal(t, GenderMale, p.Gender)
	assert.Equal(t, 170.0, p.HeightCm)
	assert.Equal(t, 70.0, p.WeightKg)
	assert.Equal(t, BodyAverage, p.CurrentBodyType)
	assert.Equal(t, DesiredAthletic, p.DesiredBodyType)
	assert.Equal(t, FitnessBeginner, p.FitnessLevel)
	assert.Equal(t, GoalMaintain, p.Goal)
	assert.Equal(t, ActivityModerate, p.ActivityLevel)
}

func TestCategoryPresentation(t *testing.T) {
	tests := []struct {
		category BMICategory
		severity Severity
		rng      string
	}{
		{BMIUnderweight, SeverityLow, "< 18.5"},
		{BMINormal, SeverityHealthy, "18.5 - 24.9"},
		{BMIOverweight, SeverityElevated, "25.0 - 29.9"},
		{BMIObese, SeverityHigh, ">= 30.0"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.severity, tt.category.Severity())
			assert.Equal(t, tt.rng, tt.category.RangeText())
		})
	}
}

func TestAllOptionsOrder(t *testing.T) {
	opts := AllOptions()
	assert.Equal(t, []Goal{GoalLoseWeight, GoalGainMuscle, GoalMaintain, GoalImproveFitness}, opts.Goals)
	assert.Len(t, opts.ActivityLevels, 5)
	assert.Len(t, opts.CurrentBodyTypes, 5)
	assert.Len(t, opts.DesiredBodyTypes, 4)
}

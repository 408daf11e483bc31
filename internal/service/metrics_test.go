package service

import (
	"math"
	"testing"

	"github.com/pageza/vexine/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		wantErr  bool
	}{
		{"valid", 180, 75, false},
		{"zero height", 0, 75, true},
		{"negative weight", 180, -1, true},
		{"zero weight", 180, 0, true},
		{"nan height", math.NaN(), 75, true},
		{"inf weight", 180, math.Inf(1), true},
		{"negative inf height", math.Inf(-1), 75, true},
		{"tiny but positive", 0.001, 0.001, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.heightCm, tt.weightKg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryForBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want model.BMICategory
	}{
		{10, model.BMIUnderweight},
		{18.49, model.BMIUnderweight},
		{18.5, model.BMINormal},
		{24.99, model.BMINormal},
		{25.0, model.BMIOverweight},
		{29.99, model.BMIOverweight},
		{30.0, model.BMIObese},
		{45, model.BMIObese},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFor(tt.bmi), "bmi=%v", tt.bmi)
	}
}

func TestActivityMultiplier(t *testing.T) {
	assert.Equal(t, 1.2, ActivityMultiplier(model.ActivitySedentary))
	assert.Equal(t, 1.375, ActivityMultiplier(model.ActivityLight))
	assert.Equal(t, 1.55, ActivityMultiplier(model.ActivityModerate))
	assert.Equal(t, 1.725, ActivityMultiplier(model.ActivityActive))
	assert.Equal(t, 1.9, ActivityMultiplier(model.ActivityVeryActive))
	assert.Equal(t, 1.55, ActivityMultiplier("couch_potato"))
	assert.Equal(t, 1.55, ActivityMultiplier(""))
}

func TestCalculateBMR(t *testing.T) {
	assert.InDelta(t, 1755.0, CalculateBMR(model.GenderMale, 25, 180, 75), 1e-9)
	assert.InDelta(t, 1589.0, CalculateBMR(model.GenderFemale, 30, 160, 90), 1e-9)
	// anything but male takes the female constant
	assert.Equal(t, CalculateBMR(model.GenderFemale, 40, 170, 70), CalculateBMR("", 40, 170, 70))
}

func TestComputeMetricsMaleModerate(t *testing.T) {
	p := model.Profile{
		Age:           25,
		Gender:        model.GenderMale,
		HeightCm:      180,
		WeightKg:      75,
		ActivityLevel: model.ActivityModerate,
	}

	m, err := ComputeMetrics(p)
	require.NoError(t, err)

	assert.InDelta(t, 23.148, m.BMI, 0.001)
	assert.Equal(t, model.BMINormal, m.BMICategory)
	assert.Equal(t, model.SeverityHealthy, m.Severity)
	assert.Equal(t, "18.5 - 24.9", m.RangeText)
	assert.InDelta(t, 1755.0, m.BMR, 1e-9)
	assert.Equal(t, 1.55, m.ActivityMultiplier)
	assert.InDelta(t, 2720.25, m.MaintenanceCalories, 1e-6)
	assert.InDelta(t, 3020.25, m.SurplusCalories, 1e-6)
	assert.InDelta(t, 2220.25, m.DeficitCalories, 1e-6)
	assert.InDelta(t, 59.94, m.IdealWeightRange.Min, 1e-9)
	assert.InDelta(t, 80.676, m.IdealWeightRange.Max, 1e-9)
}

func TestComputeMetricsFemaleObese(t *testing.T) {
	p := model.Profile{
		Age:           30,
		Gender:        model.GenderFemale,
		HeightCm:      160,
		WeightKg:      90,
		ActivityLevel: model.ActivitySedentary,
	}

	m, err := ComputeMetrics(p)
	require.NoError(t, err)

	assert.InDelta(t, 35.156, m.BMI, 0.001)
	assert.Equal(t, model.BMIObese, m.BMICategory)
	assert.Equal(t, model.SeverityHigh, m.Severity)
	assert.InDelta(t, 1589.0*1.2, m.MaintenanceCalories, 1e-6)
}

func TestComputeMetricsRejectsInvalidInput(t *testing.T) {
	p := model.DefaultProfile()
	p.HeightCm = 0
	m, err := ComputeMetrics(p)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, m)

	p = model.DefaultProfile()
	p.WeightKg = -1
	m, err = ComputeMetrics(p)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, m)
}

func TestComputeMetricsCalorieOffsets(t *testing.T) {
	levels := model.AllOptions().ActivityLevels
	for age := model.MinAge; age <= model.MaxAge; age += 15 {
		for h := model.MinHeightCm; h <= model.MaxHeightCm; h += 25 {
			for w := model.MinWeightKg; w <= model.MaxWeightKg; w += 17 {
				for i, g := range []model.Gender{model.GenderMale, model.GenderFemale} {
					p := model.Profile{Age: age, Gender: g, HeightCm: h, WeightKg: w, ActivityLevel: levels[(age+i)%len(levels)]}
					m, err := ComputeMetrics(p)
					require.NoError(t, err)
					assert.InDelta(t, 300.0, m.SurplusCalories-m.MaintenanceCalories, 1e-9)
					assert.InDelta(t, 500.0, m.MaintenanceCalories-m.DeficitCalories, 1e-9)
					assert.InDelta(t, w/((h/100)*(h/100)), m.BMI, 1e-12)
				}
			}
		}
	}
}

func TestIdealWeightScalesQuadratically(t *testing.T) {
	base := IdealWeight(100)
	double := IdealWeight(200)
	assert.Less(t, base.Min, base.Max)
	assert.InDelta(t, 4*base.Min, double.Min, 1e-9)
	assert.InDelta(t, 4*base.Max, double.Max, 1e-9)
	assert.InDelta(t, 18.5, base.Min, 1e-12)
	assert.InDelta(t, 24.9, base.Max, 1e-12)
}

func TestComputeMetricsIsIdempotent(t *testing.T) {
	p := model.DefaultProfile()
	first, err := ComputeMetrics(p)
	require.NoError(t, err)
	second, err := ComputeMetrics(p)
	require.NoError(t, err)
	assert.Equal(t, *first, *second)
	assert.NotSame(t, first, second)
}

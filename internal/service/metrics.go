package service

import "github.com/pageza/vexine/backend/internal/model"

const (
	// SurplusOffset and DeficitOffset are fixed, independent of BMI.
	SurplusOffset = 300.0
	DeficitOffset = 500.0

	defaultMultiplier = 1.55

	idealBMILow  = 18.5
	idealBMIHigh = 24.9
)

// activityMultipliers maps activity levels to their maintenance multiplier.
var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

// ActivityMultiplier returns the multiplier for level, or 1.55 when the level
// is not recognized.
func ActivityMultiplier(level model.ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return defaultMultiplier
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) float64 {
	h := heightCm / 100.0
	return weightKg / (h * h)
}

// CategoryFor places bmi into its bracket. Each bracket includes its lower
// bound: 18.5 is normal, 25 is overweight, 30 is obese.
func CategoryFor(bmi float64) model.BMICategory {
	switch {
	case bmi < 18.5:
		return model.BMIUnderweight
	case bmi < 25.0:
		return model.BMINormal
	case bmi < 30.0:
		return model.BMIOverweight
	default:
		return model.BMIObese
	}
}

// CalculateBMR applies Mifflin-St Jeor. Any gender other than male uses the
// female constant.
func CalculateBMR(gender model.Gender, age int, heightCm, weightKg float64) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == model.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// IdealWeight returns the weights that give a BMI of 18.5 and 24.9.
func IdealWeight(heightCm float64) model.IdealWeightRange {
	h := heightCm / 100.0
	return model.IdealWeightRange{
		Min: idealBMILow * h * h,
		Max: idealBMIHigh * h * h,
	}
}

// ComputeMetrics validates p and derives every metric from it.
func ComputeMetrics(p model.Profile) (*model.Metrics, error) {
	if err := Validate(p.HeightCm, p.WeightKg); err != nil {
		return nil, err
	}

	bmi := CalculateBMI(p.HeightCm, p.WeightKg)
	category := CategoryFor(bmi)
	bmr := CalculateBMR(p.Gender, p.Age, p.HeightCm, p.WeightKg)
	multiplier := ActivityMultiplier(p.ActivityLevel)
	maintenance := bmr * multiplier

	return &model.Metrics{
		BMI:                 bmi,
		BMICategory:         category,
		Severity:            category.Severity(),
		RangeText:           category.RangeText(),
		BMR:                 bmr,
		ActivityMultiplier:  multiplier,
		MaintenanceCalories: maintenance,
		SurplusCalories:     maintenance + SurplusOffset,
		DeficitCalories:     maintenance - DeficitOffset,
		IdealWeightRange:    IdealWeight(p.HeightCm),
	}, nil
}

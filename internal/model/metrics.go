package model

// BMICategory is one of the four half-open BMI brackets.
type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// Severity is the colour bracket a front end should use for a category.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityHealthy  Severity = "healthy"
	SeverityElevated Severity = "elevated"
	SeverityHigh     Severity = "high"
)

// Severity returns the display bracket for c.
func (c BMICategory) Severity() Severity {
	switch c {
	case BMIUnderweight:
		return SeverityLow
	case BMINormal:
		return SeverityHealthy
	case BMIOverweight:
		return SeverityElevated
	default:
		return SeverityHigh
	}
}

// RangeText describes the BMI interval that c covers.
func (c BMICategory) RangeText() string {
	switch c {
	case BMIUnderweight:
		return "< 18.5"
	case BMINormal:
		return "18.5 - 24.9"
	case BMIOverweight:
		return "25.0 - 29.9"
	default:
		return ">= 30.0"
	}
}

// IdealWeightRange is the weight span that maps to a normal BMI at a height.
type IdealWeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Metrics holds every number derived from a Profile.
type Metrics struct {
	BMI                 float64          `json:"bmi"`
	BMICategory         BMICategory      `json:"bmi_category"`
	Severity            Severity         `json:"severity"`
	RangeText           string           `json:"range_text"`
	BMR                 float64          `json:"bmr"`
	ActivityMultiplier  float64          `json:"activity_multiplier"`
	MaintenanceCalories float64          `json:"maintenance_calories"`
	SurplusCalories     float64          `json:"surplus_calories"`
	DeficitCalories     float64          `json:"deficit_calories"`
	IdealWeightRange    IdealWeightRange `json:"ideal_weight_range"`
}

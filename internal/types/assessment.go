package types

import (
	"fmt"

	"github.com/pageza/vexine/backend/internal/model"
	"github.com/pageza/vexine/backend/internal/service"
)

// ProfileRequest is the wire form of a profile. Empty selections fall back to
// the form defaults; spellings such as "lose weight" are accepted.
type ProfileRequest struct {
	Age             *int     `json:"age" binding:"required"`
	Gender          string   `json:"gender"`
	HeightCm        *float64 `json:"height_cm" binding:"required"`
	WeightKg        *float64 `json:"weight_kg" binding:"required"`
	CurrentBodyType string   `json:"current_body_type"`
	DesiredBodyType string   `json:"desired_body_type"`
	FitnessLevel    string   `json:"fitness_level"`
	Goal            string   `json:"goal"`
	ActivityLevel   string   `json:"activity_level"`
}

// RangeError reports a value outside the range a collector accepts.
type RangeError struct {
	Field string
	Min   float64
	Max   float64
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g, got %g", e.Field, e.Min, e.Max, e.Value)
}

// Profile converts r into a model.Profile. Height and weight go through the
// core validator first, so non-positive values surface as
// service.ErrInvalidInput rather than as a range error.
func (r ProfileRequest) Profile() (model.Profile, error) {
	p := model.DefaultProfile()
	if r.Age != nil {
		p.Age = *r.Age
	}
	if r.HeightCm != nil {
		p.HeightCm = *r.HeightCm
	}
	if r.WeightKg != nil {
		p.WeightKg = *r.WeightKg
	}
	if r.Gender != "" {
		p.Gender = model.NormalizeGender(r.Gender)
	}
	if r.CurrentBodyType != "" {
		p.CurrentBodyType = model.NormalizeBodyType(r.CurrentBodyType)
	}
	if r.DesiredBodyType != "" {
		p.DesiredBodyType = model.NormalizeDesiredBody(r.DesiredBodyType)
	}
	if r.FitnessLevel != "" {
		p.FitnessLevel = model.NormalizeFitnessLevel(r.FitnessLevel)
	}
	if r.Goal != "" {
		p.Goal = model.NormalizeGoal(r.Goal)
	}
	if r.ActivityLevel != "" {
		p.ActivityLevel = model.NormalizeActivityLevel(r.ActivityLevel)
	}

	if err := service.Validate(p.HeightCm, p.WeightKg); err != nil {
		return model.Profile{}, err
	}
	if err := checkRange("age", float64(p.Age), model.MinAge, model.MaxAge); err != nil {
		return model.Profile{}, err
	}
	if err := checkRange("height_cm", p.HeightCm, model.MinHeightCm, model.MaxHeightCm); err != nil {
		return model.Profile{}, err
	}
	if err := checkRange("weight_kg", p.WeightKg, model.MinWeightKg, model.MaxWeightKg); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

func checkRange(field string, v, min, max float64) error {
	if v < min || v > max {
		return &RangeError{Field: field, Min: min, Max: max, Value: v}
	}
	return nil
}

// RecommendationRequest carries the selector for a standalone recommendation
// lookup.
type RecommendationRequest struct {
	BMICategory     string `json:"bmi_category" binding:"required,oneof=underweight normal overweight obese"`
	Goal            string `json:"goal"`
	FitnessLevel    string `json:"fitness_level"`
	DesiredBodyType string `json:"desired_body_type"`
}

// Selector converts r into a model.Selector. Empty fields take the same form
// defaults as ProfileRequest.
func (r RecommendationRequest) Selector() model.Selector {
	def := model.DefaultProfile()
	sel := model.Selector{
		BMICategory:     model.BMICategory(r.BMICategory),
		Goal:            def.Goal,
		FitnessLevel:    def.FitnessLevel,
		DesiredBodyType: def.DesiredBodyType,
	}
	if r.Goal != "" {
		sel.Goal = model.NormalizeGoal(r.Goal)
	}
	if r.FitnessLevel != "" {
		sel.FitnessLevel = model.NormalizeFitnessLevel(r.FitnessLevel)
	}
	if r.DesiredBodyType != "" {
		sel.DesiredBodyType = model.NormalizeDesiredBody(r.DesiredBodyType)
	}
	return sel
}

// InputRange is an inclusive bound on a numeric field.
type InputRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// OptionsResponse describes everything a front end needs to build its form.
type OptionsResponse struct {
	Options  model.Options         `json:"options"`
	Defaults model.Profile         `json:"defaults"`
	Ranges   map[string]InputRange `json:"ranges"`
}

// NewOptionsResponse builds the options payload.
func NewOptionsResponse() OptionsResponse {
	return OptionsResponse{
		Options:  model.AllOptions(),
		Defaults: model.DefaultProfile(),
		Ranges: map[string]InputRange{
			"age":       {Min: model.MinAge, Max: model.MaxAge},
			"height_cm": {Min: model.MinHeightCm, Max: model.MaxHeightCm},
			"weight_kg": {Min: model.MinWeightKg, Max: model.MaxWeightKg},
		},
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

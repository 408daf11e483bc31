package model

import (
	"time"

	"github.com/google/uuid"
)

// Selector is the tuple that fully determines the recommendation text.
type Selector struct {
	BMICategory     BMICategory  `json:"bmi_category"`
	Goal            Goal         `json:"goal"`
	FitnessLevel    FitnessLevel `json:"fitness_level"`
	DesiredBodyType DesiredBody  `json:"desired_body_type"`
}

// Recommendations are three ordered tip lists. Order is significant.
type Recommendations struct {
	NutritionTips []string `json:"nutrition_tips"`
	ExerciseTips  []string `json:"exercise_tips"`
	LifestyleTips []string `json:"lifestyle_tips"`
}

// Assessment is the full result of one pipeline run.
type Assessment struct {
	ID              uuid.UUID       `json:"id"`
	Profile         Profile         `json:"profile"`
	Metrics         Metrics         `json:"metrics"`
	Recommendations Recommendations `json:"recommendations"`
	CreatedAt       time.Time       `json:"created_at"`
}

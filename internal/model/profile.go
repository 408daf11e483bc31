package model

import "strings"

// Gender selects the Mifflin-St Jeor constant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// BodyType is the user's self-reported current build.
type BodyType string

const (
	BodyUnderweight BodyType = "underweight"
	BodyAverage     BodyType = "average"
	BodyAthletic    BodyType = "athletic"
	BodyOverweight  BodyType = "overweight"
	BodyObese       BodyType = "obese"
)

// DesiredBody is the build the user is working towards.
type DesiredBody string

const (
	DesiredLean     DesiredBody = "lean"
	DesiredAthletic DesiredBody = "athletic"
	DesiredMuscular DesiredBody = "muscular"
	DesiredMaintain DesiredBody = "maintain"
)

// FitnessLevel is the user's training experience.
type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

// Goal is the user's stated objective.
type Goal string

const (
	GoalLoseWeight     Goal = "lose_weight"
	GoalGainMuscle     Goal = "gain_muscle"
	GoalMaintain       Goal = "maintain"
	GoalImproveFitness Goal = "improve_fitness"
)

// ActivityLevel picks the maintenance-calorie multiplier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Input ranges a collector is expected to enforce before building a Profile.
const (
	MinAge      = 10
	MaxAge      = 100
	MinHeightCm = 100.0
	MaxHeightCm = 250.0
	MinWeightKg = 30.0
	MaxWeightKg = 200.0
)

// Profile is one calculation request. It is never mutated after construction;
// recalculating means building a new Profile.
type Profile struct {
	Age             int           `json:"age"`
	Gender          Gender        `json:"gender"`
	HeightCm        float64       `json:"height_cm"`
	WeightKg        float64       `json:"weight_kg"`
	CurrentBodyType BodyType      `json:"current_body_type"`
	DesiredBodyType DesiredBody   `json:"desired_body_type"`
	FitnessLevel    FitnessLevel  `json:"fitness_level"`
	Goal            Goal          `json:"goal"`
	ActivityLevel   ActivityLevel `json:"activity_level"`
}

// DefaultProfile returns the values a fresh input form starts with.
func DefaultProfile() Profile {
	return Profile{
		Age:             25,
		Gender:          GenderMale,
		HeightCm:        170.0,
		WeightKg:        70.0,
		CurrentBodyType: BodyAverage,
		DesiredBodyType: DesiredAthletic,
		FitnessLevel:    FitnessBeginner,
		Goal:            GoalMaintain,
		ActivityLevel:   ActivityModerate,
	}
}

// Options lists every selectable value, in display order.
type Options struct {
	Genders          []Gender        `json:"genders"`
	CurrentBodyTypes []BodyType      `json:"current_body_types"`
	DesiredBodyTypes []DesiredBody   `json:"desired_body_types"`
	FitnessLevels    []FitnessLevel  `json:"fitness_levels"`
	Goals            []Goal          `json:"goals"`
	ActivityLevels   []ActivityLevel `json:"activity_levels"`
}

// AllOptions returns the selection lists offered to users.
func AllOptions() Options {
	return Options{
		Genders:          []Gender{GenderMale, GenderFemale},
		CurrentBodyTypes: []BodyType{BodyUnderweight, BodyAverage, BodyAthletic, BodyOverweight, BodyObese},
		DesiredBodyTypes: []DesiredBody{DesiredLean, DesiredAthletic, DesiredMuscular, DesiredMaintain},
		FitnessLevels:    []FitnessLevel{FitnessBeginner, FitnessIntermediate, FitnessAdvanced},
		Goals:            []Goal{GoalLoseWeight, GoalGainMuscle, GoalMaintain, GoalImproveFitness},
		ActivityLevels:   []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive},
	}
}

// canonical lowercases, trims and turns spaces and dashes into underscores, so
// "Very Active" and "lose-weight" match their enum values.
func canonical(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), "_")
	return strings.ReplaceAll(s, "-", "_")
}

// NormalizeGoal maps user spellings onto a Goal. Unknown values are returned
// canonicalized but otherwise untouched.
func NormalizeGoal(s string) Goal {
	switch c := canonical(s); c {
	case "maintain_current", "maintain_weight":
		return GoalMaintain
	default:
		return Goal(c)
	}
}

// NormalizeActivityLevel maps user spellings onto an ActivityLevel.
func NormalizeActivityLevel(s string) ActivityLevel {
	return ActivityLevel(canonical(s))
}

// NormalizeFitnessLevel maps user spellings onto a FitnessLevel.
func NormalizeFitnessLevel(s string) FitnessLevel {
	return FitnessLevel(canonical(s))
}

// NormalizeDesiredBody maps user spellings onto a DesiredBody.
func NormalizeDesiredBody(s string) DesiredBody {
	return DesiredBody(canonical(s))
}

// NormalizeBodyType maps user spellings onto a BodyType.
func NormalizeBodyType(s string) BodyType {
	return BodyType(canonical(s))
}

// NormalizeGender maps user spellings onto a Gender.
func NormalizeGender(s string) Gender {
	return Gender(canonical(s))
}

package service

import "github.com/pageza/vexine/backend/internal/model"

// NutritionTips: baseline, BMI block, goal block (gain muscle / lose weight
// only), then the advanced block.
func NutritionTips(category model.BMICategory, goal model.Goal, level model.FitnessLevel) []string {
	return nutritionRules.Apply(model.Selector{
		BMICategory:  category,
		Goal:         goal,
		FitnessLevel: level,
	})
}

// ExerciseTips: fitness block, BMI block (none for normal), desired body block
// (none for maintain), then goal block.
func ExerciseTips(category model.BMICategory, goal model.Goal, level model.FitnessLevel, desired model.DesiredBody) []string {
	return exerciseRules.Apply(model.Selector{
		BMICategory:     category,
		Goal:            goal,
		FitnessLevel:    level,
		DesiredBodyType: desired,
	})
}

// LifestyleTips: eight universal tips plus a beginner or advanced block.
func LifestyleTips(level model.FitnessLevel) []string {
	return lifestyleRules.Apply(model.Selector{FitnessLevel: level})
}

// ComputeRecommendations assembles all three lists for sel.
func ComputeRecommendations(sel model.Selector) model.Recommendations {
	return model.Recommendations{
		NutritionTips: NutritionTips(sel.BMICategory, sel.Goal, sel.FitnessLevel),
		ExerciseTips:  ExerciseTips(sel.BMICategory, sel.Goal, sel.FitnessLevel, sel.DesiredBodyType),
		LifestyleTips: LifestyleTips(sel.FitnessLevel),
	}
}

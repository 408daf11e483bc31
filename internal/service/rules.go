package service

import "github.com/pageza/vexine/backend/internal/model"

// Stages, in the order their tips are emitted.
const (
	StageBaseline = "baseline"
	StageFitness  = "fitness"
	StageBMI      = "bmi"
	StageBody     = "body"
	StageGoal     = "goal"
	StageLevel    = "level"
)

// TipRule binds a selector predicate to a fixed block of tips. Within a stage
// at most one rule matches any selector.
type TipRule struct {
	Stage string
	Name  string
	When  func(model.Selector) bool
	Tips  []string
}

// RuleTable is evaluated top to bottom; every matching rule appends its block.
type RuleTable []TipRule

// Apply returns a freshly allocated tip list for sel.
func (t RuleTable) Apply(sel model.Selector) []string {
	tips := make([]string, 0, 16)
	for _, r := range t {
		if r.When(sel) {
			tips = append(tips, r.Tips...)
		}
	}
	return tips
}

func always(model.Selector) bool { return true }

func inCategory(c model.BMICategory) func(model.Selector) bool {
	return func(s model.Selector) bool { return s.BMICategory == c }
}

func withGoal(g model.Goal) func(model.Selector) bool {
	return func(s model.Selector) bool { return s.Goal == g }
}

func atLevel(f model.FitnessLevel) func(model.Selector) bool {
	return func(s model.Selector) bool { return s.FitnessLevel == f }
}

// pastIntermediate matches advanced and any level that is neither beginner nor
// intermediate.
func pastIntermediate(s model.Selector) bool {
	return s.FitnessLevel != model.FitnessBeginner && s.FitnessLevel != model.FitnessIntermediate
}

func wantsBody(d model.DesiredBody) func(model.Selector) bool {
	return func(s model.Selector) bool { return s.DesiredBodyType == d }
}

var nutritionRules = RuleTable{
	{Stage: StageBaseline, Name: "hydration and meals", When: always, Tips: []string{
		"Hydration: 3-4 liters of water daily minimum",
		"Meal frequency: 5-6 small meals for optimal metabolism",
	}},

	{Stage: StageBMI, Name: "underweight", When: inCategory(model.BMIUnderweight), Tips: []string{
		"Caloric surplus: +300-500 calories above maintenance",
		"Protein: 1.8-2.2g per kg bodyweight daily",
		"Healthy fats: Nuts, avocados, olive oil, fatty fish",
		"Dense carbs: Oats, rice, pasta, sweet potatoes",
	}},
	{Stage: StageBMI, Name: "obese", When: inCategory(model.BMIObese), Tips: []string{
		"Caloric deficit: -500-750 calories below maintenance",
		"Protein: 1.6-2.0g per kg to preserve muscle mass",
		"Eliminate: Sugary drinks, processed foods, refined carbs",
		"High volume: Fill 50% of plate with vegetables",
		"Meal timing: Stop eating 3 hours before bed",
	}},
	{Stage: StageBMI, Name: "overweight", When: inCategory(model.BMIOverweight), Tips: []string{
		"Moderate deficit: -300-500 calories daily",
		"Protein: 1.4-1.8g per kg bodyweight",
		"Complex carbs: Switch to whole grains, reduce refined carbs",
		"Smart snacking: Greek yogurt, nuts (portioned), fruits",
	}},
	{Stage: StageBMI, Name: "normal", When: inCategory(model.BMINormal), Tips: []string{
		"Balanced macros: 40% carbs / 30% protein / 30% fats",
		"Protein: 1.2-1.6g per kg for maintenance",
		"Food variety: Include all food groups in moderation",
	}},

	{Stage: StageGoal, Name: "gain muscle", When: withGoal(model.GoalGainMuscle), Tips: []string{
		"Post-workout: 30g protein within 30 mins",
		"Pre-workout carbs: Oats, banana, rice for energy",
		"Protein boost: Increase to 2.0-2.2g per kg",
	}},
	{Stage: StageGoal, Name: "lose weight", When: withGoal(model.GoalLoseWeight), Tips: []string{
		"Tracking: Use MyFitnessPal or similar app",
		"Fiber: 30g+ daily from vegetables and fruits",
		"Sodium: Limit to reduce water retention",
	}},

	{Stage: StageLevel, Name: "advanced", When: atLevel(model.FitnessAdvanced), Tips: []string{
		"Nutrient timing: Carb cycling on training days",
		"Supplements: Consider creatine, protein powder, BCAAs",
	}},
}

// exerciseRules has no block for a normal BMI.
var exerciseRules = RuleTable{
	{Stage: StageFitness, Name: "beginner", When: atLevel(model.FitnessBeginner), Tips: []string{
		"Frequency: 3-4 sessions per week, 30-45 mins each",
		"Cardio foundation: Walking/jogging 20-30 mins, 3x weekly",
		"Bodyweight basics: Squats, push-ups, planks (2x10 reps)",
		"Form first: Master technique before adding weight",
		"Recovery: 48 hours rest between training same muscles",
	}},
	{Stage: StageFitness, Name: "intermediate", When: atLevel(model.FitnessIntermediate), Tips: []string{
		"Frequency: 4-5 sessions weekly, 45-60 mins each",
		"Split training: Upper/lower or push/pull/legs",
		"Cardio: 30-40 mins, 3x weekly (running, cycling, swimming)",
		"Progressive overload: Increase weight 2.5-5% weekly",
	}},
	{Stage: StageFitness, Name: "advanced", When: pastIntermediate, Tips: []string{
		"Frequency: 5-6 sessions weekly, varied intensity",
		"Advanced splits: PPL or bro-split with periodization",
		"Intensity techniques: Drop sets, supersets, rest-pause",
		"Deload week: Every 4-6 weeks reduce volume by 50%",
	}},

	{Stage: StageBMI, Name: "underweight", When: inCategory(model.BMIUnderweight), Tips: []string{
		"Strength focus: 70% resistance, 30% cardio",
		"Compounds: Deadlifts, squats, bench press, rows (4x6-8)",
		"Cardio limit: 2x weekly maximum, 20 mins sessions",
	}},
	{Stage: StageBMI, Name: "obese", When: inCategory(model.BMIObese), Tips: []string{
		"Low-impact cardio: Swimming, cycling, elliptical",
		"Duration: Start 15-20 mins, progress to 45 mins",
		"Resistance: 2x weekly to preserve muscle mass",
		"Flexibility: Daily stretching or yoga for mobility",
	}},
	{Stage: StageBMI, Name: "overweight", When: inCategory(model.BMIOverweight), Tips: []string{
		"HIIT training: 20-30 mins, 3-4x weekly",
		"Resistance: 3x weekly full-body or split routine",
		"Active recovery: Walking, swimming on rest days",
	}},

	{Stage: StageBody, Name: "muscular", When: wantsBody(model.DesiredMuscular), Tips: []string{
		"Heavy compounds: 4-6 reps, 4-5 sets, 80-85% 1RM",
		"Core lifts: Deadlift, squat, bench, OHP, rows",
		"Time under tension: Control eccentric phase (3 secs)",
	}},
	{Stage: StageBody, Name: "lean", When: wantsBody(model.DesiredLean), Tips: []string{
		"Circuit training: 12-15 reps, minimal rest (30s)",
		"Metabolic conditioning: Burpees, kettlebell swings",
		"HIIT: 30s work / 30s rest intervals, 20 mins",
	}},
	{Stage: StageBody, Name: "athletic", When: wantsBody(model.DesiredAthletic), Tips: []string{
		"Functional training: TRX, kettlebells, battle ropes",
		"Plyometrics: Box jumps, jump squats, burpees",
		"Agility: Ladder drills, cone drills, sprint intervals",
	}},

	{Stage: StageGoal, Name: "lose weight", When: withGoal(model.GoalLoseWeight), Tips: []string{
		"Calorie burn target: 300-500 per session",
		"Daily steps: Aim for 10,000+ via pedometer",
	}},
	{Stage: StageGoal, Name: "gain muscle", When: withGoal(model.GoalGainMuscle), Tips: []string{
		"Cardio minimal: 2x weekly max to preserve mass",
		"Progressive overload: Track and beat lifts weekly",
	}},
}

var lifestyleRules = RuleTable{
	{Stage: StageBaseline, Name: "universal", When: always, Tips: []string{
		"Sleep priority: 7-9 hours nightly for recovery and hormones",
		"Stress management: 10 mins daily meditation or breathing",
		"Progress tracking: Weekly photos, measurements, weight log",
		"Consistency: Results visible after 8-12 weeks minimum",
		"Accountability: Training partner or coach recommended",
		"Meal prep: Prepare 3 days in advance to avoid bad choices",
		"Listen to body: Rest when fatigued to prevent injury",
		"Supplementation: Multivitamin, Vitamin D, Omega-3 basics",
	}},
	{Stage: StageLevel, Name: "beginner", When: atLevel(model.FitnessBeginner), Tips: []string{
		"Habit formation: Start small, build gradually",
		"No comparison: Focus on personal progress only",
		"Learning phase: Watch form videos, ask for help",
	}},
	{Stage: StageLevel, Name: "advanced", When: atLevel(model.FitnessAdvanced), Tips: []string{
		"Coaching: Consider hiring specialist for optimization",
		"Periodization: Plan mesocycles to avoid plateaus",
		"Recovery tools: Foam rolling, massage, ice baths",
		"Advanced metrics: Track HRV, sleep quality, readiness",
	}},
}

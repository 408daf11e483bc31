// Command assess runs one health assessment from command-line flags and
// prints the report.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pageza/vexine/backend/internal/logging"
	"github.com/pageza/vexine/backend/internal/model"
	"github.com/pageza/vexine/backend/internal/service"
	"github.com/pageza/vexine/backend/internal/types"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	def := model.DefaultProfile()

	fs := flag.NewFlagSet("assess", flag.ContinueOnError)
	fs.SetOutput(stderr)
	age := fs.Int("age", def.Age, "age in years")
	gender := fs.String("gender", string(def.Gender), "male or female")
	height := fs.Float64("height", def.HeightCm, "height in cm")
	weight := fs.Float64("weight", def.WeightKg, "weight in kg")
	current := fs.String("current-body", string(def.CurrentBodyType), "current body type")
	desired := fs.String("desired-body", string(def.DesiredBodyType), "desired body type")
	level := fs.String("fitness", string(def.FitnessLevel), "fitness level")
	goal := fs.String("goal", string(def.Goal), "fitness goal")
	activity := fs.String("activity", string(def.ActivityLevel), "activity level")
	asJSON := fs.Bool("json", false, "print the assessment as JSON")
	logLevel := fs.String("log-level", "warn", "log level")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := logging.New(*logLevel, false, stderr)

	req := types.ProfileRequest{
		Age:             age,
		Gender:          *gender,
		HeightCm:        height,
		WeightKg:        weight,
		CurrentBodyType: *current,
		DesiredBodyType: *desired,
		FitnessLevel:    *level,
		Goal:            *goal,
		ActivityLevel:   *activity,
	}
	profile, err := req.Profile()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	svc := service.NewAssessmentService(logger)
	assessment, err := svc.Assess(context.Background(), profile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(assessment); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	writeReport(stdout, assessment)
	return 0
}

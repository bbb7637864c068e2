package models

import "strings"

// Stage is one step of the acquisition-to-sale pipeline a bike moves
// through. Transitions are not restricted: operators may move a bike to
// any stage at any time.
type Stage string

const (
	StageAcquisition Stage = "Acquisition"
	StageEvaluation  Stage = "Evaluation"
	StageServicing   Stage = "Servicing"
	StageMedia       Stage = "Media"
	StageListed      Stage = "Listed"
	StageSold        Stage = "Sold"
	StageUnknown     Stage = "Unknown"
)

// stageOrder is the canonical pipeline order.
var stageOrder = []Stage{
	StageAcquisition,
	StageEvaluation,
	StageServicing,
	StageMedia,
	StageListed,
	StageSold,
}

// TotalStages is the number of pipeline steps.
const TotalStages = 6

// NormalizeStage maps a stored stage string, whatever its casing, to one
// of the six canonical stages. Anything else buckets to StageUnknown.
func NormalizeStage(raw string) Stage {
	s := strings.TrimSpace(raw)
	if s == "" {
		return StageUnknown
	}
	s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	for _, stage := range stageOrder {
		if Stage(s) == stage {
			return stage
		}
	}
	return StageUnknown
}

// Step returns the 1-based pipeline position of the stage, 0 for unknown.
func (s Stage) Step() int {
	for i, stage := range stageOrder {
		if s == stage {
			return i + 1
		}
	}
	return 0
}

// StageProgress describes how far through the pipeline a bike is.
// Display-only, never used for gating.
type StageProgress struct {
	Step       int     `json:"step"`
	TotalSteps int     `json:"total_steps"`
	Percent    float64 `json:"percent"`
}

// Progress computes pipeline progress for a raw stage value.
func Progress(raw string) StageProgress {
	step := NormalizeStage(raw).Step()
	return StageProgress{
		Step:       step,
		TotalSteps: TotalStages,
		Percent:    float64(step) / float64(TotalStages) * 100,
	}
}

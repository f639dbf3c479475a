package scene

import (
	"fmt"
	"strings"

	"anthrobot/internal/synth"
	"anthrobot/internal/taxonomy"
)

// StageFrame is one point of a life-cycle time series.
type StageFrame struct {
	Stage           taxonomy.StageID `json:"stage"`
	Timepoint       string           `json:"timepoint"`
	ElapsedHours    float64          `json:"elapsed_hours"`
	SizeMicrometers float64          `json:"size_micrometers"`
	KeyEvent        string           `json:"key_event,omitempty"`
	Bot             Bot              `json:"anthrobot"`
}

// LifeCycleSequence is an ordered developmental time series of one entity.
type LifeCycleSequence struct {
	SequenceID          string                `json:"sequence_id"`
	Morphotype          taxonomy.MorphotypeID `json:"morphotype"`
	StartStage          taxonomy.StageID      `json:"start_stage"`
	EndStage            taxonomy.StageID      `json:"end_stage"`
	Frames              []StageFrame          `json:"frames"`
	CriticalTransitions []string              `json:"critical_transitions"`
}

// stageSizeFactor gives the body size at each stage as a fraction of the
// mature reference size. The progenitor is a single cell with a fixed size
// regardless of the eventual bot.
var stageSizeFactor = map[taxonomy.StageID]float64{
	taxonomy.StageEarlySpheroid: 0.3,
	taxonomy.StageEversion:      0.6,
	taxonomy.StageMature:        1.0,
	taxonomy.StageSenescent:     0.8,
}

// progenitorSize is the founding-cell diameter in micrometers.
const progenitorSize = 15.0

// criticalTransitions annotates the dramatic moments of the progression.
var criticalTransitions = []string{
	"Eversion (day 7-10): inside-out turning, cilia reorient to the surface",
	"Maturation (day 10): stable motile form achieved",
	"Senescence (day 45+): natural biodegradation begins",
}

// GenerateLifeCycle produces one synthesized frame per stage in the
// inclusive [start, end] range, in developmental order. The reference size
// is the mature body size and must lie in the anthrobot size domain; earlier
// stages scale down from it. Scaled stage sizes below that domain (the
// progenitor is a lone cell) are synthesized at the domain floor while the
// frame reports the biological size.
func (c *Composer) GenerateLifeCycle(morphotype taxonomy.MorphotypeID, start, end taxonomy.StageID, matureSize float64) (LifeCycleSequence, error) {
	startIdx := taxonomy.StageIndex(start)
	if startIdx < 0 {
		return LifeCycleSequence{}, &synth.ValidationError{Field: "start_stage", Value: string(start), Domain: stageDomain()}
	}
	endIdx := taxonomy.StageIndex(end)
	if endIdx < 0 {
		return LifeCycleSequence{}, &synth.ValidationError{Field: "end_stage", Value: string(end), Domain: stageDomain()}
	}
	if startIdx > endIdx {
		return LifeCycleSequence{}, &OrderError{Start: start, End: end}
	}
	if matureSize < taxonomy.SizeMin || matureSize > taxonomy.SizeMax {
		return LifeCycleSequence{}, &synth.ValidationError{
			Field:  "size_micrometers",
			Value:  matureSize,
			Domain: fmt.Sprintf("[%g, %g]", taxonomy.SizeMin, taxonomy.SizeMax),
		}
	}

	seq := LifeCycleSequence{
		SequenceID:          entityID(string(morphotype) + "/lifecycle/" + string(start) + "/" + string(end)),
		Morphotype:          morphotype,
		StartStage:          start,
		EndStage:            end,
		CriticalTransitions: criticalTransitions,
	}

	for i := startIdx; i <= endIdx; i++ {
		stage := taxonomy.StageOrder[i]
		rec, err := c.store.Stage(stage)
		if err != nil {
			return LifeCycleSequence{}, err
		}

		size := progenitorSize
		if f, ok := stageSizeFactor[stage]; ok {
			size = matureSize * f
		}

		bundle, err := c.synth.Synthesize(morphotype, clampSize(size), stage, taxonomy.StyleScientific)
		if err != nil {
			return LifeCycleSequence{}, err
		}

		keyEvent := rec.Event
		if keyEvent == "" {
			keyEvent = rec.Fate
		}
		seq.Frames = append(seq.Frames, StageFrame{
			Stage:           stage,
			Timepoint:       rec.Timepoint,
			ElapsedHours:    rec.ElapsedHours,
			SizeMicrometers: size,
			KeyEvent:        keyEvent,
			Bot: Bot{
				BotID:           i - startIdx + 1,
				EntityID:        entityID(string(morphotype) + "/lifecycle/" + string(stage)),
				Morphotype:      morphotype,
				SizeMicrometers: size,
				Bundle:          bundle,
			},
		})
	}
	return seq, nil
}

func stageDomain() string {
	names := make([]string, len(taxonomy.StageOrder))
	for i, id := range taxonomy.StageOrder {
		names[i] = string(id)
	}
	return strings.Join(names, " | ")
}

// clampSize pins a stage size into the synthesizable domain.
func clampSize(size float64) float64 {
	if size < taxonomy.SizeMin {
		return taxonomy.SizeMin
	}
	if size > taxonomy.SizeMax {
		return taxonomy.SizeMax
	}
	return size
}

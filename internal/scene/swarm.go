package scene

import (
	"fmt"
	"math"
	"sort"

	"anthrobot/internal/synth"
	"anthrobot/internal/taxonomy"
)

// mixTolerance is how far the morphotype proportions may drift from summing
// to exactly 1 before the mix is rejected.
const mixTolerance = 1e-6

// DefaultMix is the equal-thirds morphotype distribution used when the
// caller does not supply one.
var DefaultMix = map[taxonomy.MorphotypeID]float64{
	taxonomy.Morphotype1: 0.33,
	taxonomy.Morphotype2: 0.33,
	taxonomy.Morphotype3: 0.34,
}

// Arrangement is the scene-level spatial layout selected by the behavior.
// It lives on the scene, not inside individual bundles.
type Arrangement struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Spacing     string `json:"spacing"`
}

// Swarm is a composed multi-entity scene.
type Swarm struct {
	SceneID      string                        `json:"scene_id"`
	TotalBots    int                           `json:"total_bots"`
	Distribution map[taxonomy.MorphotypeID]int `json:"morphotype_distribution"`
	SizeRange    string                        `json:"size_range"`
	Bots         []Bot                         `json:"individual_bots"`
	Arrangement  Arrangement                   `json:"spatial_arrangement"`
	Collective   taxonomy.Behavior             `json:"collective_behavior"`
	ImagingStyle taxonomy.StyleID              `json:"imaging_style"`
	Note         string                        `json:"synthesis_note"`
}

// swarmSize is the declared reproducible size policy: bot i (1-based) gets
// 50 + (i*30 mod 300) micrometers. Spread without a random source.
func swarmSize(i int) float64 {
	return 50 + float64((i*30)%300)
}

// SimulateSwarm composes a swarm of botCount entities distributed over the
// morphotype mix, with the collective behavior attached as scene metadata.
// A nil mix means DefaultMix. Counts are allocated by largest remainder so
// they always sum exactly to botCount.
func (c *Composer) SimulateSwarm(botCount int, mix map[taxonomy.MorphotypeID]float64, behavior taxonomy.BehaviorID, style taxonomy.StyleID) (Swarm, error) {
	if botCount < 1 {
		return Swarm{}, &synth.ValidationError{Field: "bot_count", Value: botCount, Domain: ">= 1"}
	}
	if mix == nil {
		mix = DefaultMix
	}
	sum := 0.0
	for id, p := range mix {
		if _, err := c.store.Morphotype(id); err != nil {
			return Swarm{}, &synth.ValidationError{Field: "morphotype_mix", Value: string(id), Domain: "morphotype_1 | morphotype_2 | morphotype_3"}
		}
		if p < 0 {
			return Swarm{}, &synth.ValidationError{Field: "morphotype_mix", Value: p, Domain: "proportions must be >= 0"}
		}
		sum += p
	}
	if math.Abs(sum-1) > mixTolerance {
		return Swarm{}, &synth.ValidationError{Field: "morphotype_mix", Value: sum, Domain: "proportions must sum to 1"}
	}
	collective, err := c.store.Behavior(behavior)
	if err != nil {
		return Swarm{}, &synth.ValidationError{Field: "behavior", Value: string(behavior), Domain: "swimming | wound_seeking | bridge_formation"}
	}

	counts := allocate(botCount, mix)

	swarm := Swarm{
		SceneID:      entityID(fmt.Sprintf("swarm/%d/%s/%s", botCount, behavior, style)),
		TotalBots:    botCount,
		Distribution: counts,
		Arrangement: Arrangement{
			Type:        collective.Arrangement,
			Description: collective.ArrangementNote,
			Spacing:     collective.Spacing,
		},
		Collective:   collective,
		ImagingStyle: style,
		Note: fmt.Sprintf("Swarm of %d anthrobots engaged in %s - emphasize both individual morphologies and the collective pattern",
			botCount, behavior),
	}

	minSize, maxSize := math.Inf(1), math.Inf(-1)
	botID := 1
	for _, id := range taxonomy.MorphotypeIDs {
		for n := 0; n < counts[id]; n++ {
			size := swarmSize(botID)
			bundle, err := c.synth.Synthesize(id, size, taxonomy.StageMature, style)
			if err != nil {
				return Swarm{}, err
			}
			swarm.Bots = append(swarm.Bots, Bot{
				BotID:           botID,
				EntityID:        entityID(fmt.Sprintf("%s/bot/%d", swarm.SceneID, botID)),
				Morphotype:      id,
				SizeMicrometers: size,
				Bundle:          bundle,
			})
			minSize = math.Min(minSize, size)
			maxSize = math.Max(maxSize, size)
			botID++
		}
	}
	swarm.SizeRange = fmt.Sprintf("%.0f-%.0f um", minSize, maxSize)
	return swarm, nil
}

// allocate distributes botCount across the mix by largest remainder: floor
// each quota, then hand the leftover bots to the largest fractional parts.
// Ties break by canonical morphotype order, keeping the result deterministic.
func allocate(botCount int, mix map[taxonomy.MorphotypeID]float64) map[taxonomy.MorphotypeID]int {
	type quota struct {
		id   taxonomy.MorphotypeID
		rem  float64
		rank int
	}

	counts := make(map[taxonomy.MorphotypeID]int, len(mix))
	var quotas []quota
	allocated := 0
	for rank, id := range taxonomy.MorphotypeIDs {
		p, ok := mix[id]
		if !ok {
			continue
		}
		exact := float64(botCount) * p
		floor := int(math.Floor(exact))
		counts[id] = floor
		allocated += floor
		quotas = append(quotas, quota{id: id, rem: exact - float64(floor), rank: rank})
	}

	sort.SliceStable(quotas, func(i, j int) bool {
		if quotas[i].rem != quotas[j].rem {
			return quotas[i].rem > quotas[j].rem
		}
		return quotas[i].rank < quotas[j].rank
	})

	for i := 0; allocated < botCount; i = (i + 1) % len(quotas) {
		counts[quotas[i].id]++
		allocated++
	}
	return counts
}

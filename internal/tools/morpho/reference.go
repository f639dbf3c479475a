package morpho

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"anthrobot/internal/tools"
)

// The reference tools render taxonomy tables as markdown overviews, the way
// a methods section would present them. They take no arguments and cannot
// fail: the store vouched for table completeness at load.

// ListMorphotypes lists the three morphotypes with descriptions.
func (s *Set) ListMorphotypes() *tools.Tool {
	return &tools.Tool{
		Name:        "list_morphotypes",
		Description: "List all three anthrobot morphotypes with descriptions",
		Category:    tools.CategoryTaxonomy,
		Schema:      tools.Schema{Properties: map[string]tools.Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			var b strings.Builder
			b.WriteString("# Anthrobot Morphotypes (from Gumuskaya et al. 2023)\n\n")
			for _, m := range s.store.Morphotypes() {
				fmt.Fprintf(&b, "## %s\n", m.Name)
				fmt.Fprintf(&b, "**Type:** %s\n", m.ID)
				fmt.Fprintf(&b, "**Description:** %s\n\n", m.Description)
			}
			return b.String(), nil
		},
	}
}

// MovementVocabulary lists the movement taxonomy.
func (s *Set) MovementVocabulary() *tools.Tool {
	return &tools.Tool{
		Name:        "get_movement_vocabulary",
		Description: "Get the complete taxonomy of anthrobot movement types",
		Category:    tools.CategoryTaxonomy,
		Schema:      tools.Schema{Properties: map[string]tools.Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			var b strings.Builder
			b.WriteString("# Anthrobot Movement Vocabulary\n\n")
			b.WriteString("Movement emerges deterministically from morphology:\n\n")
			for _, m := range s.store.Movements() {
				fmt.Fprintf(&b, "## %s\n", title(string(m.Kind)))
				fmt.Fprintf(&b, "**Morphological Cause:** %s\n", m.MorphologicalCause)
				fmt.Fprintf(&b, "**Speed:** %s\n", m.Speed)
				fmt.Fprintf(&b, "**Trajectory:** %s\n", m.Trajectory)
				fmt.Fprintf(&b, "**Visual Signature:** %s\n", m.VisualSignature)
				fmt.Fprintf(&b, "**Intentionality:** %s\n\n", m.Intentionality)
			}
			return b.String(), nil
		},
	}
}

// LifeCycleStages lists the developmental progression.
func (s *Set) LifeCycleStages() *tools.Tool {
	return &tools.Tool{
		Name:        "get_life_cycle_stages",
		Description: "Get the temporal progression through the anthrobot life cycle",
		Category:    tools.CategoryTaxonomy,
		Schema:      tools.Schema{Properties: map[string]tools.Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			var b strings.Builder
			b.WriteString("# Anthrobot Life Cycle (45-60 day lifespan)\n\n")
			for _, st := range s.store.Stages() {
				fmt.Fprintf(&b, "## %s\n", title(string(st.ID)))
				fmt.Fprintf(&b, "**Timepoint:** %s\n", st.Timepoint)
				fmt.Fprintf(&b, "**Morphology:** %s\n", st.Morphology)
				fmt.Fprintf(&b, "**Visual:** %s\n", st.Visual)
				if st.GeneExpression != "" {
					fmt.Fprintf(&b, "**Gene Expression:** %s\n", st.GeneExpression)
				}
				if st.Event != "" {
					fmt.Fprintf(&b, "**Key Event:** %s\n", st.Event)
				}
				if st.EpigeneticState != "" {
					fmt.Fprintf(&b, "**Epigenetic State:** %s\n", st.EpigeneticState)
				}
				if st.Behavior != "" {
					fmt.Fprintf(&b, "**Behavior:** %s\n", st.Behavior)
				}
				if st.Fate != "" {
					fmt.Fprintf(&b, "**Fate:** %s\n", st.Fate)
				}
				b.WriteString("\n")
			}
			return b.String(), nil
		},
	}
}

// ImagingAesthetics lists the imaging styles and fluorescence channels.
func (s *Set) ImagingAesthetics() *tools.Tool {
	return &tools.Tool{
		Name:        "get_imaging_aesthetics",
		Description: "Get imaging specifications, color palettes and channel assignments",
		Category:    tools.CategoryTaxonomy,
		Schema:      tools.Schema{Properties: map[string]tools.Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			var b strings.Builder
			b.WriteString("# Anthrobot Imaging Aesthetics\n\n")

			b.WriteString("## Fluorescence Channels\n\n")
			for _, name := range sortedKeys(s.store.Channels()) {
				ch := s.store.Channels()[name]
				fmt.Fprintf(&b, "**%s**\n", title(name))
				fmt.Fprintf(&b, "- Stain: %s\n", ch.Stain)
				fmt.Fprintf(&b, "- Color: %s\n", ch.Color)
				fmt.Fprintf(&b, "- Targets: %s\n", ch.Targets)
				fmt.Fprintf(&b, "- Visual Effect: %s\n\n", ch.VisualEffect)
			}

			comp := s.store.Composite()
			b.WriteString("### Composite Aesthetic\n")
			fmt.Fprintf(&b, "- Corona Effect: %s\n", comp.CoronaEffect)
			fmt.Fprintf(&b, "- Depth Perception: %s\n", comp.DepthPerception)
			fmt.Fprintf(&b, "- Color Harmony: %s\n\n", comp.ColorHarmony)

			for _, style := range s.store.Styles() {
				fmt.Fprintf(&b, "## %s\n", title(string(style.ID)))
				fmt.Fprintf(&b, "**Modality:** %s\n", style.Modality)
				fmt.Fprintf(&b, "**Contrast:** %s\n", style.Contrast)
				fmt.Fprintf(&b, "**Blur:** %s\n", style.Blur)
				for _, k := range sortedKeys(style.Palette) {
					fmt.Fprintf(&b, "- %s: %s\n", k, style.Palette[k])
				}
				b.WriteString("\n")
			}
			return b.String(), nil
		},
	}
}

// ScaleReferences gives scale context for micrometer sizes.
func (s *Set) ScaleReferences() *tools.Tool {
	return &tools.Tool{
		Name:        "get_scale_references",
		Description: "Get scale context for anthrobot size visualization",
		Category:    tools.CategoryTaxonomy,
		Schema:      tools.Schema{Properties: map[string]tools.Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			sc := s.store.Scale()
			var b strings.Builder
			b.WriteString("# Anthrobot Scale Context\n\n")
			b.WriteString("## Cellular Scale Context\n")
			fmt.Fprintf(&b, "**Anthrobot Size Range:** %s\n\n", sc.CellularScale.AnthrobotSize)
			b.WriteString("**Comparisons:**\n")
			for _, c := range sc.CellularScale.Comparison {
				fmt.Fprintf(&b, "- %s\n", c)
			}
			fmt.Fprintf(&b, "\n**Visual Niche:** %s\n\n", sc.CellularScale.VisualNiche)
			b.WriteString("## Relative to Source Cells\n")
			fmt.Fprintf(&b, "- Single tracheal cell: %s\n", sc.RelativeToSource.SingleCell)
			fmt.Fprintf(&b, "- Mature anthrobot: %s\n", sc.RelativeToSource.MatureBot)
			fmt.Fprintf(&b, "- Scaling factor: %s\n", sc.RelativeToSource.ScalingFactor)
			return b.String(), nil
		},
	}
}

// IntentionalityPrinciples explains why the aesthetics work.
func (s *Set) IntentionalityPrinciples() *tools.Tool {
	return &tools.Tool{
		Name:        "get_intentionality_principles",
		Description: "Get the morphospace principles behind anthrobot aesthetics",
		Category:    tools.CategoryTaxonomy,
		Schema:      tools.Schema{Properties: map[string]tools.Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			in := s.store.Intentionality()
			var b strings.Builder
			b.WriteString("# Anthrobot Intentionality Principles\n\n")
			fmt.Fprintf(&b, "## Core Principle: %s\n", in.CorePrinciple.Concept)
			fmt.Fprintf(&b, "%s\n\n", in.CorePrinciple.Explanation)
			fmt.Fprintf(&b, "### Levin Framework:\n%s\n\n", in.CorePrinciple.LevinFramework)

			for _, key := range sortedKeys(in.Principles) {
				p := in.Principles[key]
				fmt.Fprintf(&b, "## %s\n", title(key))
				fmt.Fprintf(&b, "**Principle:** %s\n", p.Principle)
				writeIf(&b, "Physics", p.Physics)
				writeIf(&b, "Mechanism", p.Mechanism)
				writeIf(&b, "Discovery", p.Discovery)
				writeIf(&b, "Hypothesis", p.Hypothesis)
				writeIf(&b, "Gene Expression", p.GeneExpression)
				writeIf(&b, "Visual Consequence", p.VisualConsequence)
				writeIf(&b, "Visual Signature", p.VisualSignature)
				writeIf(&b, "Philosophical Implication", p.PhilosophicalImplication)
				b.WriteString("\n")
			}
			return b.String(), nil
		},
	}
}

// CompositionDomains suggests sibling taxonomies that compose with this one.
func (s *Set) CompositionDomains() *tools.Tool {
	return &tools.Tool{
		Name:        "suggest_composition_domains",
		Description: "Suggest other visual domains that compose with anthrobot morphology",
		Category:    tools.CategoryTaxonomy,
		Schema:      tools.Schema{Properties: map[string]tools.Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			var b strings.Builder
			b.WriteString("# Composition Opportunities for Anthrobot Morphology\n\n")
			targets := s.store.CompositionTargets()
			for _, name := range sortedKeys(targets) {
				t := targets[name]
				fmt.Fprintf(&b, "## %s\n", title(name))
				b.WriteString("**Shared Structure:**\n")
				for _, st := range t.SharedStructure {
					fmt.Fprintf(&b, "- %s\n", st)
				}
				if nt := t.NaturalTransformation; nt != nil {
					b.WriteString("\n**Natural Transformation:**\n")
					fmt.Fprintf(&b, "- Source: %s\n", nt.Source)
					fmt.Fprintf(&b, "- Target: %s\n", nt.Target)
					b.WriteString("- Component mappings:\n")
					for _, k := range sortedKeys(nt.Components) {
						fmt.Fprintf(&b, "  - %s: %s\n", k, nt.Components[k])
					}
				}
				if len(t.ConceptualBridge) > 0 {
					b.WriteString("\n**Conceptual Bridge:**\n")
					for _, k := range sortedKeys(t.ConceptualBridge) {
						fmt.Fprintf(&b, "- %s: %s\n", k, t.ConceptualBridge[k])
					}
				}
				if len(t.FunctionalMapping) > 0 {
					b.WriteString("\n**Functional Mapping:**\n")
					for _, k := range sortedKeys(t.FunctionalMapping) {
						fmt.Fprintf(&b, "- %s: %s\n", k, t.FunctionalMapping[k])
					}
				}
				b.WriteString("\n")
			}
			return b.String(), nil
		},
	}
}

// ResearchAttribution cites the primary sources.
func (s *Set) ResearchAttribution() *tools.Tool {
	return &tools.Tool{
		Name:        "get_research_attribution",
		Description: "Get research citations and educational resources",
		Category:    tools.CategoryTaxonomy,
		Schema:      tools.Schema{Properties: map[string]tools.Property{}},
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			c := s.store.Citations()
			var b strings.Builder
			b.WriteString("# Anthrobot Research Attribution\n\n")
			b.WriteString("## Primary Research Papers\n\n")
			fmt.Fprintf(&b, "### Original Discovery (2023)\n%s\n\n", c.PrimarySource)
			fmt.Fprintf(&b, "### Life Cycle Study (2025)\n%s\n\n", c.LifeCycleSource)
			fmt.Fprintf(&b, "### Philosophical Framework\n%s\n\n", c.LevinPhilosophy)
			if c.EducationalGateway.Description != "" {
				b.WriteString("## Educational Resources\n\n")
				fmt.Fprintf(&b, "%s\n\n", c.EducationalGateway.Description)
				b.WriteString("**Links:**\n")
				for _, l := range c.EducationalGateway.Links {
					fmt.Fprintf(&b, "- %s\n", l)
				}
			}
			return b.String(), nil
		},
	}
}

// title turns a snake_case key into a display heading.
func title(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func writeIf(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "**%s:** %s\n", label, value)
	}
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

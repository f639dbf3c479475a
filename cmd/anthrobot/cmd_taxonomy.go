package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// taxonomyTopics maps a CLI topic to the reference tool that renders it.
var taxonomyTopics = map[string]string{
	"morphotypes":    "list_morphotypes",
	"movement":       "get_movement_vocabulary",
	"stages":         "get_life_cycle_stages",
	"imaging":        "get_imaging_aesthetics",
	"scale":          "get_scale_references",
	"intentionality": "get_intentionality_principles",
	"composition":    "suggest_composition_domains",
	"attribution":    "get_research_attribution",
}

var taxonomyPlain bool

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy [topic]",
	Short: "Render a taxonomy reference table in the terminal",
	Long: `Prints one of the built-in reference tables as styled markdown.

Topics: ` + strings.Join(topicNames(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runTaxonomy,
}

func init() {
	taxonomyCmd.Flags().BoolVar(&taxonomyPlain, "plain", false, "print raw markdown without terminal styling")
}

func topicNames() []string {
	names := make([]string, 0, len(taxonomyTopics))
	for name := range taxonomyTopics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	toolName, ok := taxonomyTopics[args[0]]
	if !ok {
		return fmt.Errorf("unknown topic %q (topics: %s)", args[0], strings.Join(topicNames(), ", "))
	}

	result, err := registry.Execute(cmd.Context(), toolName, map[string]any{})
	if err != nil {
		return err
	}

	if taxonomyPlain {
		fmt.Println(result.Output)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(result.Output)
		return nil
	}
	rendered, err := renderer.Render(result.Output)
	if err != nil {
		fmt.Println(result.Output)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

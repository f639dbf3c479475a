package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var callArgsJSON string

var callCmd = &cobra.Command{
	Use:   "call [tool]",
	Short: "Invoke one tool and print its output",
	Long: `Runs a single registered tool with JSON arguments and prints the
result to stdout.

Example:
  anthrobot call calculate_size_effects --args '{"size_micrometers": 150}'`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVar(&callArgsJSON, "args", "{}", "tool arguments as a JSON object")
}

func runCall(cmd *cobra.Command, args []string) error {
	var toolArgs map[string]any
	if err := json.Unmarshal([]byte(callArgsJSON), &toolArgs); err != nil {
		return fmt.Errorf("invalid --args JSON: %w", err)
	}

	result, err := registry.Execute(cmd.Context(), args[0], toolArgs)
	if err != nil {
		return err
	}
	fmt.Println(result.Output)
	return nil
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range registry.All() {
			fmt.Printf("%-32s %-10s %s\n", t.Name, t.Category, t.Description)
		}
		return nil
	},
}

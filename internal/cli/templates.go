package cli

import (
	"fmt"

	"github.com/skillpack-labs/skillpack/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available bundle template kinds",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Available template kinds:")
		for _, kind := range scaffold.Kinds() {
			desc, useCases, _ := scaffold.Describe(kind)
			fmt.Printf("\n%s\n  %s\n  Example use cases:\n", kind, desc)
			for _, uc := range useCases {
				fmt.Printf("    - %s\n", uc)
			}
		}
		return nil
	},
}

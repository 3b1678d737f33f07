package cli

import (
	"fmt"

	"github.com/skillpack-labs/skillpack/internal/bundle"
	"github.com/skillpack-labs/skillpack/internal/validate"
	"github.com/spf13/cobra"
)

var validateStrict bool

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Also validate frontmatter against the JSON Schema (findings are warnings)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <bundle-dir>",
	Short: "Validate a skill bundle against the compliance rules",
	Long: `Run the full validation pipeline against one skill bundle and print an
itemized report. Blocking issues make the command exit non-zero; warnings
are advisory and never affect the exit code.

Example:
  skillpack validate ./my-skill`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := validate.New(bundle.New(args[0]))
		v.Strict = validateStrict

		report := v.Run()
		if !report.IsValid() {
			return fmt.Errorf("validation failed with %d error(s)", len(report.Issues))
		}
		return nil
	},
}

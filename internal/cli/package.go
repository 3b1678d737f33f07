package cli

import (
	"github.com/skillpack-labs/skillpack/internal/bundle"
	"github.com/skillpack-labs/skillpack/internal/config"
	"github.com/skillpack-labs/skillpack/internal/pack"
	"github.com/spf13/cobra"
)

var (
	packageOutputDir    string
	packageInstructions bool
)

func init() {
	packageCmd.Flags().StringVar(&packageOutputDir, "output-dir", "", "Output directory for the archive (default: bundle's parent directory)")
	packageCmd.Flags().BoolVar(&packageInstructions, "with-instructions", false, "Also write a <name>-INSTALL.md companion document")
	rootCmd.AddCommand(packageCmd)
}

var packageCmd = &cobra.Command{
	Use:   "package <bundle-dir>",
	Short: "Package a skill bundle into a distributable archive",
	Long: `Archive a skill bundle as <name>.zip after a minimal integrity check.
Dotfiles are excluded and every entry is stored under a single top-level
folder named after the bundle.

Examples:
  skillpack package ./my-skill
  skillpack package ./my-skill --output-dir dist --with-instructions`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir := packageOutputDir
		if outputDir == "" {
			config.Load()
			outputDir = config.Get(config.KeyPackageOutputDir)
		}

		p := pack.New(bundle.New(args[0]))
		if packageInstructions {
			_, err := p.PackageWithInstructions(outputDir)
			return err
		}
		_, err := p.Package(outputDir)
		return err
	},
}

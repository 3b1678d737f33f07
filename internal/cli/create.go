package cli

import (
	"fmt"
	"path/filepath"

	"github.com/skillpack-labs/skillpack/internal/config"
	"github.com/skillpack-labs/skillpack/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	createOutputDir   string
	createKind        string
	createDescription string
	createSpecFile    string
	createTags        []string
)

func init() {
	createCmd.Flags().StringVar(&createOutputDir, "output-dir", "", "Parent directory for the new bundle (default: current directory)")
	createCmd.Flags().StringVar(&createKind, "kind", string(scaffold.KindSimple), "Template kind: simple, intermediate, or complex")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Skill description for the frontmatter")
	createCmd.Flags().StringVar(&createSpecFile, "spec", "", "JSON spec file driving generation (overrides name/flags)")
	createCmd.Flags().StringSliceVar(&createTags, "tags", nil, "Frontmatter tags")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Scaffold a new skill bundle from a template",
	Long: `Create a new skill bundle from one of the built-in template kinds.
The bundle name is normalized to kebab-case.

Examples:
  skillpack create my-skill --description "Summarizes long documents"
  skillpack create converter --kind intermediate
  skillpack create --spec skill-spec.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			kind scaffold.Kind
			data *scaffold.Data
		)

		if createSpecFile != "" {
			spec, err := scaffold.LoadSpec(createSpecFile)
			if err != nil {
				return err
			}
			kind = spec.Kind
			data = spec.Data()
		} else {
			if len(args) == 0 {
				return fmt.Errorf("a bundle name is required unless --spec is given")
			}
			kind = scaffold.Kind(createKind)
			if !scaffold.ValidKind(kind) {
				return fmt.Errorf("unknown kind %q (valid: %v)", createKind, scaffold.Kinds())
			}
			data = scaffold.NewData(args[0], createDescription)
			data.Tags = createTags
		}

		parentDir := createOutputDir
		if parentDir == "" {
			config.Load()
			parentDir = config.Get(config.KeyCreateOutputDir)
		}
		outDir := filepath.Join(parentDir, data.Name)

		result, err := scaffold.Generate(kind, data, outDir)
		if err != nil {
			return err
		}

		fmt.Printf("Created %s bundle at %s\n", kind, result.OutputDir)
		for _, f := range result.Files {
			fmt.Printf("  + %s\n", f)
		}
		for _, w := range result.Warnings {
			fmt.Printf("  ⚠ %s\n", w)
		}

		fmt.Println("\nNext steps:")
		fmt.Printf("  1. Edit %s/SKILL.md to describe your skill\n", result.OutputDir)
		fmt.Printf("  2. Run 'skillpack validate %s'\n", result.OutputDir)
		fmt.Printf("  3. Run 'skillpack package %s'\n", result.OutputDir)
		return nil
	},
}

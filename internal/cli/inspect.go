package cli

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/skillpack-labs/skillpack/internal/pack"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive.zip>",
	Short: "List the entries of a packaged skill archive",
	Long: `Open a produced archive read-only and print its file entries with their
uncompressed sizes. Nothing is extracted or installed.

Example:
  skillpack inspect dist/my-skill.zip`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archivePath := args[0]

		entries, err := pack.List(archivePath)
		if err != nil {
			return err
		}

		printer := message.NewPrinter(language.English)
		var total uint64
		for _, e := range entries {
			printer.Printf("  %10d  %s\n", e.Size, e.Name)
			total += e.Size
		}

		info, err := os.Stat(archivePath)
		if err != nil {
			return fmt.Errorf("stat archive: %w", err)
		}
		printer.Printf("\n%d entries, %d bytes uncompressed, %d bytes archived\n",
			len(entries), total, info.Size())
		return nil
	},
}

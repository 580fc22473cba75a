package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/gostcite/internal/pipeline"
	"github.com/ppiankov/gostcite/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outPath  string
	noCache  bool
	cacheDir string
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format <file>...",
	Short: "Format sources into a sorted reference list",
	Long: `Format reads source descriptions and prints the reference list:
- YAML/JSON files hold a "sources" list; every entry names its kind
- XLSX workbooks hold one sheet per kind with field names in the first row
- Entries are validated, formatted and sorted alphabetically
- Any invalid or unsupported entry fails the whole run

Kinds: book, internet_resource, articles_collection, journal_article, dissertation

Example:
  gostcite format sources.yaml
  gostcite format sources.xlsx --format markdown
  gostcite format books.yaml web.json -o references.xlsx --format xlsx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: stdout)")
	formatCmd.Flags().StringP("format", "f", "text", "output format ("+strings.Join(render.Formats, ", ")+")")
	formatCmd.Flags().Bool("numbered", true, "number the entries")
	formatCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the citation cache")
	formatCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist the citation cache in this directory")

	_ = viper.BindPFlag("output.format", formatCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.numbered", formatCmd.Flags().Lookup("numbered"))
	_ = viper.BindPFlag("cache.dir", formatCmd.Flags().Lookup("cache-dir"))
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	if err := checkOutput(cfg.Output.Format, outPath); err != nil {
		return err
	}

	p := pipeline.New(cfg, logger)

	result, err := p.Run(context.Background(), args, cmd.OutOrStdout(), outPath)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Formatted %d sources\n", result.Records)
		if outPath != "" {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", outPath)
		}
	}
	return nil
}

// checkOutput rejects formats that cannot go to stdout
func checkOutput(format, path string) error {
	if render.NormalizeFormat(format) == "xlsx" && path == "" {
		return fmt.Errorf("xlsx output requires --output")
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/ppiankov/gostcite/internal/cache"
	"github.com/spf13/cobra"
)

var clearDir string

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the citation cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached citation",
	Long: `Remove every citation persisted in the cache directory.

Run it after changing templates or upgrading gostcite when --cache-dir
(cache.dir) is set. The in-memory cache lives for a single run and needs no clearing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if clearDir != "" {
			cfg.Cache.Dir = clearDir
		}
		if cfg.Cache.Dir == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No cache directory configured, nothing to clear")
			return nil
		}

		if err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL).Clear(); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Cleared cache: %s\n", cfg.Cache.Dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)

	cacheClearCmd.Flags().StringVar(&clearDir, "cache-dir", "", "cache directory to clear (default: cache.dir)")
}

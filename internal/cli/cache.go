package cli

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pokedex/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the response cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached responses and views",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if c.cfg.Cache.Backend == backendFile && !c.noCache {
				dir, err := c.cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					printInfo("Cache is empty")
					return nil
				}
			}

			backend, err := c.newCache(ctx)
			if err != nil {
				return err
			}
			defer backend.Close()

			clearer, ok := backend.(cache.Clearer)
			if !ok {
				printWarning("The %s cache cannot be cleared", c.cfg.Cache.Backend)
				return nil
			}
			spinner := newSpinnerWithContext(ctx, "Clearing cache...")
			spinner.Start()
			count, err := clearer.Clear(ctx)
			if err != nil {
				spinner.StopWithError("Could not clear the cache")
				return fmt.Errorf("clear cache: %w", err)
			}

			spinner.StopWithSuccess(fmt.Sprintf("Cleared %d cached entries", count))
			printDetail("Backend: %s", c.cacheLocation())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.Out, c.cacheLocation())
			return nil
		},
	}
}

// cacheLocation describes the configured backend: the directory for the file
// cache, the address for redis and mongo.
func (c *CLI) cacheLocation() string {
	if c.noCache {
		return backendNone
	}
	switch c.cfg.Cache.Backend {
	case backendRedis:
		return "redis://" + c.cfg.Cache.RedisAddr
	case backendMongo:
		if u, err := url.Parse(c.cfg.Cache.MongoURI); err == nil {
			return u.Redacted()
		}
		return backendMongo
	case backendNone:
		return backendNone
	}
	dir, err := c.cacheDir()
	if err != nil {
		return backendNone
	}
	return dir
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/cache"
	"github.com/syntaxpresso/core/internal/config"
	"github.com/syntaxpresso/core/internal/output"
)

// initCmd bootstraps .syntaxpresso for a project: it writes the
// default config file and can drop the classification cache.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the .syntaxpresso configuration for a project",
	RunE:  runInit,
}

var (
	initCwd        string
	initResetCache bool
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initCwd, "cwd", "", "Project working directory")
	initCmd.Flags().BoolVar(&initResetCache, "reset-cache", false, "Drop all cached classifications")
	initCmd.MarkFlagRequired("cwd")
}

func runInit(cmd *cobra.Command, args []string) error {
	const name = "init"

	configPath, err := config.SaveDefault(initCwd)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, initCwd, err)
	}

	if initResetCache {
		if err := resetCache(initCwd); err != nil {
			return emitError[output.FileResponse](cmd, name, initCwd, err)
		}
	}

	verbosef("%s: wrote %s", name, configPath)
	return emit(cmd, name, initCwd, output.FileResponse{FilePath: configPath})
}

// resetCache drops every cached classification for the project.
func resetCache(cwd string) error {
	dir, err := config.EnsureConfigDir(cwd)
	if err != nil {
		return err
	}
	c, err := cache.Open(dir)
	if err != nil {
		return err
	}
	defer c.Close()

	n, err := c.Count()
	if err != nil {
		return err
	}
	if err := c.Clear(); err != nil {
		return err
	}
	verbosef("init: cleared %d cached classifications from %s", n, c.Path())
	return nil
}

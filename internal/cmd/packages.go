package cmd

import (
	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
	"github.com/syntaxpresso/core/internal/scan"
)

// getAllPackagesCmd lists the packages declared under a source set.
var getAllPackagesCmd = &cobra.Command{
	Use:   "get-all-packages",
	Short: "List the packages under a source directory",
	RunE:  runGetAllPackages,
}

var (
	getAllPackagesCwd       string
	getAllPackagesSourceDir string
)

func init() {
	rootCmd.AddCommand(getAllPackagesCmd)
	getAllPackagesCmd.Flags().StringVar(&getAllPackagesCwd, "cwd", "", "Project working directory")
	getAllPackagesCmd.Flags().StringVar(&getAllPackagesSourceDir, "source-directory", "main", "Source set (main|test)")
	getAllPackagesCmd.MarkFlagRequired("cwd")
}

func runGetAllPackages(cmd *cobra.Command, args []string) error {
	const name = "get-all-packages"

	dir, err := jpa.ParseSourceDir(getAllPackagesSourceDir)
	if err != nil {
		return emitError[output.PackagesResponse](cmd, name, getAllPackagesCwd, err)
	}
	root, err := sourceRoot(getAllPackagesCwd, dir)
	if err != nil {
		return emitError[output.PackagesResponse](cmd, name, getAllPackagesCwd, err)
	}

	descs, err := scanProject(getAllPackagesCwd, root)
	if err != nil {
		return emitError[output.PackagesResponse](cmd, name, getAllPackagesCwd, err)
	}

	packages := scan.Packages(descs)
	return emit(cmd, name, getAllPackagesCwd, output.PackagesResponse{
		Packages:        packages,
		PackagesCount:   len(packages),
		RootPackageName: scan.RootPackage(packages),
	})
}

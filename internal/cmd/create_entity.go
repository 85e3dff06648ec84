package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/gen"
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
)

// createJPAEntityCmd writes a fresh @Entity file, optionally extending
// a mapped superclass.
var createJPAEntityCmd = &cobra.Command{
	Use:   "create-jpa-entity",
	Short: "Create a new JPA entity file",
	RunE:  runCreateJPAEntity,
}

var (
	createEntityCwd           string
	createEntityPackage       string
	createEntityName          string
	createEntitySuperclass    string
	createEntitySuperclassPkg string
)

func init() {
	rootCmd.AddCommand(createJPAEntityCmd)
	createJPAEntityCmd.Flags().StringVar(&createEntityCwd, "cwd", "", "Project working directory")
	createJPAEntityCmd.Flags().StringVar(&createEntityPackage, "package-name", "", "Package of the new entity")
	createJPAEntityCmd.Flags().StringVar(&createEntityName, "file-name", "", "Name of the new entity")
	createJPAEntityCmd.Flags().StringVar(&createEntitySuperclass, "superclass-type", "", "Superclass to extend")
	createJPAEntityCmd.Flags().StringVar(&createEntitySuperclassPkg, "superclass-package-name", "", "Package of the superclass")
	createJPAEntityCmd.MarkFlagRequired("cwd")
	createJPAEntityCmd.MarkFlagRequired("package-name")
	createJPAEntityCmd.MarkFlagRequired("file-name")
}

func runCreateJPAEntity(cmd *cobra.Command, args []string) error {
	const name = "create-jpa-entity"

	typeName := gen.PascalCase(createEntityName)
	path, err := javaFilePath(createEntityCwd, jpa.SourceMain, createEntityPackage, typeName)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, createEntityCwd, err)
	}
	if _, err := os.Stat(path); err == nil {
		return emitError[output.FileResponse](cmd, name, createEntityCwd,
			fmt.Errorf("file already exists: %s", path))
	}

	content := gen.EntityFileContent(createEntityPackage, typeName,
		createEntitySuperclass, createEntitySuperclassPkg)
	if err := writeSourceFile(path, []byte(content)); err != nil {
		return emitError[output.FileResponse](cmd, name, createEntityCwd, err)
	}

	verbosef("%s: wrote %s", name, path)
	return emit(cmd, name, createEntityCwd, output.FileResponse{
		FilePath: path,
		FileType: string(jpa.FileClass),
	})
}

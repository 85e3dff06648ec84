package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/gen"
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
)

// createJavaFileCmd writes a fresh Java file with one empty type.
var createJavaFileCmd = &cobra.Command{
	Use:   "create-java-file",
	Short: "Create a new Java file with an empty type declaration",
	RunE:  runCreateJavaFile,
}

var (
	createFileCwd       string
	createFilePackage   string
	createFileName      string
	createFileType      string
	createFileSourceDir string
)

func init() {
	rootCmd.AddCommand(createJavaFileCmd)
	createJavaFileCmd.Flags().StringVar(&createFileCwd, "cwd", "", "Project working directory")
	createJavaFileCmd.Flags().StringVar(&createFilePackage, "package-name", "", "Package of the new type")
	createJavaFileCmd.Flags().StringVar(&createFileName, "file-name", "", "Name of the new type")
	createJavaFileCmd.Flags().StringVar(&createFileType, "file-type", "", "Type kind (class|interface|enum|record|annotation)")
	createJavaFileCmd.Flags().StringVar(&createFileSourceDir, "source-directory", "main", "Source set (main|test)")
	createJavaFileCmd.MarkFlagRequired("cwd")
	createJavaFileCmd.MarkFlagRequired("package-name")
	createJavaFileCmd.MarkFlagRequired("file-name")
	createJavaFileCmd.MarkFlagRequired("file-type")
}

func runCreateJavaFile(cmd *cobra.Command, args []string) error {
	const name = "create-java-file"

	kind, err := jpa.ParseFileType(createFileType)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, createFileCwd, err)
	}
	dir, err := jpa.ParseSourceDir(createFileSourceDir)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, createFileCwd, err)
	}

	typeName := gen.PascalCase(createFileName)
	path, err := javaFilePath(createFileCwd, dir, createFilePackage, typeName)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, createFileCwd, err)
	}
	if _, err := os.Stat(path); err == nil {
		return emitError[output.FileResponse](cmd, name, createFileCwd,
			fmt.Errorf("file already exists: %s", path))
	}

	content := gen.NewFileContent(createFilePackage, typeName, kind)
	if err := writeSourceFile(path, []byte(content)); err != nil {
		return emitError[output.FileResponse](cmd, name, createFileCwd, err)
	}

	verbosef("%s: wrote %s", name, path)
	return emit(cmd, name, createFileCwd, output.FileResponse{
		FilePath: path,
		FileType: string(kind),
	})
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
	"github.com/syntaxpresso/core/internal/scan"
)

// getJavaFilesCmd lists files declaring a given kind of top-level type.
var getJavaFilesCmd = &cobra.Command{
	Use:   "get-java-files",
	Short: "List Java files declaring a given kind of type",
	RunE:  runGetJavaFiles,
}

var (
	getJavaFilesCwd      string
	getJavaFilesFileType string
)

func init() {
	rootCmd.AddCommand(getJavaFilesCmd)
	getJavaFilesCmd.Flags().StringVar(&getJavaFilesCwd, "cwd", "", "Project working directory")
	getJavaFilesCmd.Flags().StringVar(&getJavaFilesFileType, "file-type", "", "Type kind (class|interface|enum|record|annotation)")
	getJavaFilesCmd.MarkFlagRequired("cwd")
	getJavaFilesCmd.MarkFlagRequired("file-type")
}

func runGetJavaFiles(cmd *cobra.Command, args []string) error {
	const name = "get-java-files"

	kind, err := jpa.ParseFileType(getJavaFilesFileType)
	if err != nil {
		return emitError[output.FilesResponse](cmd, name, getJavaFilesCwd, err)
	}

	descs, err := scanProject(getJavaFilesCwd, getJavaFilesCwd)
	if err != nil {
		return emitError[output.FilesResponse](cmd, name, getJavaFilesCwd, err)
	}

	matched := scan.FilesOfType(descs, kind)
	files := make([]output.FileResponse, 0, len(matched))
	for _, d := range matched {
		files = append(files, output.FileResponse{FilePath: d.Path, FileType: string(d.TypeKind)})
	}
	return emit(cmd, name, getJavaFilesCwd, output.FilesResponse{
		Files:      files,
		FilesCount: len(files),
	})
}

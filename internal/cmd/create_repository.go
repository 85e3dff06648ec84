package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/config"
	"github.com/syntaxpresso/core/internal/gen"
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
	"github.com/syntaxpresso/core/internal/scan"
)

// createJPARepositoryCmd synthesizes a Spring Data repository for an
// entity. The identifier type resolves from the entity itself first,
// then from the optional superclass source.
var createJPARepositoryCmd = &cobra.Command{
	Use:   "create-jpa-repository",
	Short: "Create a Spring Data repository for an entity",
	RunE:  runCreateJPARepository,
}

var (
	createRepoCwd           string
	createRepoEntityB64     string
	createRepoEntityPath    string
	createRepoSuperclassB64 string
)

func init() {
	rootCmd.AddCommand(createJPARepositoryCmd)
	createJPARepositoryCmd.Flags().StringVar(&createRepoCwd, "cwd", "", "Project working directory")
	createJPARepositoryCmd.Flags().StringVar(&createRepoEntityB64, "entity-file-b64-src", "", "Base64-encoded entity source")
	createJPARepositoryCmd.Flags().StringVar(&createRepoEntityPath, "entity-file-path", "", "Path to the entity file")
	createJPARepositoryCmd.Flags().StringVar(&createRepoSuperclassB64, "b64-superclass-source", "", "Base64-encoded superclass source")
	createJPARepositoryCmd.MarkFlagRequired("cwd")
	createJPARepositoryCmd.MarkFlagRequired("entity-file-b64-src")
	createJPARepositoryCmd.MarkFlagRequired("entity-file-path")
}

func runCreateJPARepository(cmd *cobra.Command, args []string) error {
	const name = "create-jpa-repository"

	entityPath, err := resolveWithin(createRepoCwd, createRepoEntityPath)
	if err != nil {
		return emitError[output.RepositoryResponse](cmd, name, createRepoCwd, err)
	}
	entitySource, err := decodeSource(createRepoEntityB64)
	if err != nil {
		return emitError[output.RepositoryResponse](cmd, name, createRepoCwd, err)
	}

	var superclassSource []byte
	if createRepoSuperclassB64 != "" {
		superclassSource, err = decodeSource(createRepoSuperclassB64)
		if err != nil {
			return emitError[output.RepositoryResponse](cmd, name, createRepoCwd, err)
		}
	}

	cfg, err := config.Load(createRepoCwd)
	if err != nil {
		verbosef("config: %v, using defaults", err)
		cfg = config.DefaultConfig()
	}

	repo, err := gen.Repository(entitySource, superclassSource, cfg.Generator.RepositoryPackage)
	if err != nil {
		var missing *gen.MissingIdentifierError
		if errors.As(err, &missing) {
			resp := output.RepositoryResponse{IDFieldFound: false}
			verbosef("%s: %v", name, err)
			return emit(cmd, name, createRepoCwd, resp)
		}
		return emitError[output.RepositoryResponse](cmd, name, createRepoCwd, err)
	}

	repoPath, err := javaFilePath(createRepoCwd, jpa.SourceMain, repo.Package, repo.Name)
	if err != nil {
		return emitError[output.RepositoryResponse](cmd, name, createRepoCwd, err)
	}
	if repo.Package == "" {
		// Default-package entity: put the repository next to it.
		repoPath = filepath.Join(filepath.Dir(entityPath), repo.Name+".java")
	}
	if _, err := os.Stat(repoPath); err == nil {
		return emitError[output.RepositoryResponse](cmd, name, createRepoCwd,
			fmt.Errorf("file already exists: %s", repoPath))
	}

	if err := writeSourceFile(repoPath, []byte(repo.Content)); err != nil {
		return emitError[output.RepositoryResponse](cmd, name, createRepoCwd, err)
	}

	verbosef("%s: wrote %s", name, repoPath)
	resp := output.RepositoryResponse{
		IDFieldFound: true,
		Repository:   &output.FileResponse{FilePath: repoPath, FileType: string(jpa.FileInterface)},
	}
	if superclassSource != nil {
		if d, err := scan.ClassifySource(superclassSource, ""); err == nil {
			resp.SuperclassType = d.Name
		}
	}
	return emit(cmd, name, createRepoCwd, resp)
}

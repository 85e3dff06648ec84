package cmd

import (
	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/output"
	"github.com/syntaxpresso/core/internal/scan"
)

// getAllJPAEntitiesCmd lists every @Entity type in the project.
var getAllJPAEntitiesCmd = &cobra.Command{
	Use:   "get-all-jpa-entities",
	Short: "List all JPA entity types in the project",
	RunE:  runGetAllJPAEntities,
}

// getAllJPAMappedSuperclassesCmd lists every @MappedSuperclass type.
var getAllJPAMappedSuperclassesCmd = &cobra.Command{
	Use:   "get-all-jpa-mapped-superclasses",
	Short: "List all JPA mapped superclasses in the project",
	RunE:  runGetAllJPAMappedSuperclasses,
}

var (
	getAllJPAEntitiesCwd           string
	getAllJPAMappedSuperclassesCwd string
)

func init() {
	rootCmd.AddCommand(getAllJPAEntitiesCmd)
	getAllJPAEntitiesCmd.Flags().StringVar(&getAllJPAEntitiesCwd, "cwd", "", "Project working directory")
	getAllJPAEntitiesCmd.MarkFlagRequired("cwd")

	rootCmd.AddCommand(getAllJPAMappedSuperclassesCmd)
	getAllJPAMappedSuperclassesCmd.Flags().StringVar(&getAllJPAMappedSuperclassesCwd, "cwd", "", "Project working directory")
	getAllJPAMappedSuperclassesCmd.MarkFlagRequired("cwd")
}

func runGetAllJPAEntities(cmd *cobra.Command, args []string) error {
	return listClassified(cmd, "get-all-jpa-entities", getAllJPAEntitiesCwd, scan.KindEntity)
}

func runGetAllJPAMappedSuperclasses(cmd *cobra.Command, args []string) error {
	return listClassified(cmd, "get-all-jpa-mapped-superclasses", getAllJPAMappedSuperclassesCwd, scan.KindMappedSuperclass)
}

func listClassified(cmd *cobra.Command, name, cwd string, kind scan.Kind) error {
	descs, err := scanProject(cwd, cwd)
	if err != nil {
		return emitError[output.TypesResponse](cmd, name, cwd, err)
	}

	matched := scan.Filter(descs, kind)
	verbosef("%s: %d of %d files matched", name, len(matched), len(descs))

	types := typeResponses(matched)
	return emit(cmd, name, cwd, output.TypesResponse{
		Types:      types,
		TypesCount: len(types),
	})
}

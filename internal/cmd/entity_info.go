package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/output"
	"github.com/syntaxpresso/core/internal/scan"
)

// getJPAEntityInfoCmd describes one entity: package, superclass, id
// field and every declared field. Source comes from a file path or
// directly as base64.
var getJPAEntityInfoCmd = &cobra.Command{
	Use:   "get-jpa-entity-info",
	Short: "Describe a JPA entity's structure",
	RunE:  runGetJPAEntityInfo,
}

var (
	entityInfoCwd      string
	entityInfoFilePath string
	entityInfoB64Src   string
)

func init() {
	rootCmd.AddCommand(getJPAEntityInfoCmd)
	getJPAEntityInfoCmd.Flags().StringVar(&entityInfoCwd, "cwd", "", "Project working directory")
	getJPAEntityInfoCmd.Flags().StringVar(&entityInfoFilePath, "entity-file-path", "", "Path to the entity file")
	getJPAEntityInfoCmd.Flags().StringVar(&entityInfoB64Src, "b64-source-code", "", "Base64-encoded entity source")
	getJPAEntityInfoCmd.MarkFlagRequired("cwd")
}

func runGetJPAEntityInfo(cmd *cobra.Command, args []string) error {
	const name = "get-jpa-entity-info"

	source, err := entityInfoSource()
	if err != nil {
		return emitError[output.EntityInfoResponse](cmd, name, entityInfoCwd, err)
	}

	info, err := scan.DescribeEntity(source)
	if err != nil {
		return emitError[output.EntityInfoResponse](cmd, name, entityInfoCwd, err)
	}

	resp := output.EntityInfoResponse{
		PackageName:    info.Package,
		TypeName:       info.Name,
		SuperclassName: info.Superclass,
		Fields:         make([]output.FieldResponse, 0, len(info.Fields)),
	}
	if info.ID != nil {
		resp.IDField = &output.FieldResponse{FieldName: info.ID.Name, FieldType: info.ID.Type}
	}
	for _, f := range info.Fields {
		resp.Fields = append(resp.Fields, output.FieldResponse{FieldName: f.Name, FieldType: f.Type})
	}
	return emit(cmd, name, entityInfoCwd, resp)
}

// entityInfoSource loads the entity source from whichever input flag
// was given.
func entityInfoSource() ([]byte, error) {
	switch {
	case entityInfoB64Src != "":
		return decodeSource(entityInfoB64Src)
	case entityInfoFilePath != "":
		path, err := resolveWithin(entityInfoCwd, entityInfoFilePath)
		if err != nil {
			return nil, err
		}
		return os.ReadFile(path)
	default:
		return nil, errors.New("either --entity-file-path or --b64-source-code is required")
	}
}

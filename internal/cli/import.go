package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"bitacora_materiales/internal/client/apierr"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Upload an xlsx catalog for the configured origin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return userErr(err)
			}
			defer f.Close()

			rep, err := app.client.ImportCatalog(cmd.Context(), app.Config.Origen, filepath.Base(file), f)
			if err != nil {
				if b, ok := apierr.AsBusiness(err); !ok || b.Code != "PARTIAL_IMPORT" {
					return userErr(err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Leídas: %d  Omitidas: %d  Guardadas: %d  Fallidas: %d\n",
				rep.Read, rep.Skipped, rep.Written, rep.Failed)
			if err != nil {
				return userErr(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "xlsx file to import")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

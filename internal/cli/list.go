package cli

import (
	"fmt"
	"strings"

	response "bitacora_materiales/internal/adapter/http/dto/response"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newListCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the materials recorded on a logbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := app.Config.Bitacora
			if id == "" {
				return userErr(errMissingBitacora)
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			var bit response.BitacoraResponse
			var items []response.MaterialResponse
			g.Go(func() error {
				var err error
				bit, err = app.client.GetBitacora(ctx, id)
				return err
			})
			g.Go(func() error {
				var err error
				items, err = app.client.ListMaterials(ctx, id)
				return err
			})
			if err := g.Wait(); err != nil {
				return userErr(err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"bitacora": bit, "items": items})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bitácora %s · %s\nBrigadas: %s\n\n", bit.ID, bit.Titulo, strings.Join(bit.Brigadas, ", "))
			if len(items) == 0 {
				fmt.Fprintln(out, "Sin materiales registrados")
				return nil
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "ID\tFECHA\tCODIGO\tDESCRIPCION\tCANTIDAD\tUNIDAD\tBRIGADA")
			for _, it := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					it.ID, it.CreatedAt, it.Codigo, it.Descripcion, it.Cantidad.String(), it.Unidad, it.Brigada)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

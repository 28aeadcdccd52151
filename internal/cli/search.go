package cli

import (
	"fmt"
	"strings"

	"bitacora_materiales/internal/adapter/http/dto/response"
	"bitacora_materiales/internal/client/search"

	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search the catalog of the configured origin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")
			s := search.New(app.client, search.WithTimeout(app.Config.Timeout))
			defer s.Close()

			items, err := s.Search(cmd.Context(), term, app.Config.Origen)
			if err != nil {
				return userErr(err)
			}
			if asJSON {
				out := make([]response.CatalogItemResponse, 0, len(items))
				for _, it := range items {
					out = append(out, response.FromCatalogItem(it))
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Sin resultados")
				return nil
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "CODIGO\tDESCRIPCION\tUNIDAD\tCOSTO")
			for _, it := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", it.Codigo, it.DisplayDescription(), it.Unidad, it.Costo.StringFixed(2))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"bitacora_materiales/internal/client/reconcile"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm := reconcile.AlwaysConfirm
			if !yes {
				confirm = promptConfirmer(cmd)
			}
			rec := reconcile.New(app.client, app.Config.Bitacora, app.Config.Origen, confirm)

			removed, err := rec.Remove(cmd.Context(), args[0])
			if err != nil {
				return userErr(err)
			}
			if !removed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelado")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Material eliminado")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// promptConfirmer reads s/y from the command's stdin.
func promptConfirmer(cmd *cobra.Command) reconcile.Confirmer {
	return reconcile.ConfirmFunc(func(_ context.Context, prompt string) bool {
		fmt.Fprintf(cmd.OutOrStdout(), "%s [s/N]: ", prompt)
		line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "s", "si", "sí", "y", "yes":
			return true
		}
		return false
	})
}

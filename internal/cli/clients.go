package cli

import (
	"github.com/spf13/cobra"
)

var clientsAll bool

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List billing clients",
	Args:  cobra.NoArgs,
	RunE:  runClients,
}

func init() {
	clientsCmd.Flags().BoolVar(&clientsAll, "all", false, "Include archived clients")
}

func runClients(cmd *cobra.Command, args []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if clientsAll {
		clients, err := api.ListAllClients(ctx)
		if err != nil {
			return err
		}
		return printJSON(clients)
	}
	clients, err := api.ListClients(ctx)
	if err != nil {
		return err
	}
	return printJSON(clients)
}

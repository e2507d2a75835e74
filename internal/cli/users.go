package cli

import (
	"github.com/spf13/cobra"
)

var usersDeleted bool

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List subscription users",
	Args:  cobra.NoArgs,
	RunE:  runUsers,
}

func init() {
	usersCmd.Flags().BoolVar(&usersDeleted, "deleted", false, "Show deleted users")
}

func runUsers(cmd *cobra.Command, args []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if usersDeleted {
		users, err := api.ListDeletedUsers(ctx)
		if err != nil {
			return err
		}
		return printJSON(users)
	}
	users, err := api.ListUsers(ctx)
	if err != nil {
		return err
	}
	return printJSON(users)
}

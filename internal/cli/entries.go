package cli

import (
	"github.com/spf13/cobra"

	"github.com/nicou/tick-api/tick"
)

var (
	entriesStart   string
	entriesEnd     string
	entriesUpdated string
	entriesUser    int
	entriesProject int
	entriesTask    int
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List time entries",
	Long: `List time entries. The API requires either --start and --end together,
or --updated alone.`,
	Args: cobra.NoArgs,
	RunE: runEntries,
}

func init() {
	entriesCmd.Flags().StringVar(&entriesStart, "start", "", "Start date (YYYY-MM-DD)")
	entriesCmd.Flags().StringVar(&entriesEnd, "end", "", "End date (YYYY-MM-DD)")
	entriesCmd.Flags().StringVar(&entriesUpdated, "updated", "", "Only entries updated since this time")
	entriesCmd.Flags().IntVar(&entriesUser, "user", 0, "Limit to one user id")
	entriesCmd.Flags().IntVar(&entriesProject, "project", 0, "Limit to one project id")
	entriesCmd.Flags().IntVar(&entriesTask, "task", 0, "Limit to one task id")
}

func runEntries(cmd *cobra.Command, args []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	filter := tick.EntryFilter{
		StartDate: entriesStart,
		EndDate:   entriesEnd,
		UpdatedAt: entriesUpdated,
	}

	var entries []tick.Entry
	switch {
	case entriesUser > 0:
		entries, err = api.ListUserEntries(ctx, entriesUser, filter)
	case entriesProject > 0:
		entries, err = api.ListProjectEntries(ctx, entriesProject, filter)
	case entriesTask > 0:
		entries, err = api.ListTaskEntries(ctx, entriesTask, filter)
	default:
		entries, err = api.ListEntries(ctx, filter)
	}
	if err != nil {
		return err
	}
	return printJSON(entries)
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/nicou/tick-api/tick"
)

var (
	logTask  int
	logHours float64
	logDate  string
	logNotes string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a time entry",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().IntVar(&logTask, "task", 0, "Task id to log against")
	logCmd.Flags().Float64Var(&logHours, "hours", 0, "Hours worked")
	logCmd.Flags().StringVar(&logDate, "date", "", "Entry date (YYYY-MM-DD, defaults to today)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Entry notes")
}

func runLog(cmd *cobra.Command, args []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}
	params := tick.EntryParams{
		Date:   logDate,
		Notes:  logNotes,
		TaskID: logTask,
	}
	if logHours != 0 {
		params.Hours = &logHours
	}
	entry, err := api.CreateEntry(cmd.Context(), params)
	if err != nil {
		return err
	}
	return printJSON(entry)
}

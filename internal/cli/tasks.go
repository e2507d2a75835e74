package cli

import (
	"github.com/spf13/cobra"

	"github.com/nicou/tick-api/tick"
)

var (
	tasksProject int
	tasksClosed  bool
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runTasks,
}

func init() {
	tasksCmd.Flags().IntVar(&tasksProject, "project", 0, "Limit to one project id")
	tasksCmd.Flags().BoolVar(&tasksClosed, "closed", false, "Show closed tasks")
}

func runTasks(cmd *cobra.Command, args []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var tasks []tick.Task
	switch {
	case tasksProject > 0 && tasksClosed:
		tasks, err = api.ListClosedProjectTasks(ctx, tasksProject)
	case tasksProject > 0:
		tasks, err = api.ListProjectTasks(ctx, tasksProject)
	case tasksClosed:
		tasks, err = api.ListClosedTasks(ctx)
	default:
		tasks, err = api.ListTasks(ctx)
	}
	if err != nil {
		return err
	}
	return printJSON(tasks)
}

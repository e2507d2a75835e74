package cli

import (
	"github.com/spf13/cobra"
)

var (
	projectsClosed bool
	projectsPage   int
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

func init() {
	projectsCmd.Flags().BoolVar(&projectsClosed, "closed", false, "Show closed projects")
	projectsCmd.Flags().IntVar(&projectsPage, "page", 0, "Page number (100 per page)")
}

func runProjects(cmd *cobra.Command, args []string) error {
	api, err := newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if projectsClosed {
		projects, err := api.ListClosedProjects(ctx, projectsPage)
		if err != nil {
			return err
		}
		return printJSON(projects)
	}
	projects, err := api.ListProjects(ctx, projectsPage)
	if err != nil {
		return err
	}
	return printJSON(projects)
}

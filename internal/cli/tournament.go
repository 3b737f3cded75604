package cli

import (
	"github.com/spf13/cobra"
)

func newTournamentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournaments",
		Short: "Tournament commands",
	}

	cmd.AddCommand(newTournamentsListCmd())
	cmd.AddCommand(newTournamentsCreateCmd())
	cmd.AddCommand(newTournamentsUpdateCmd())
	cmd.AddCommand(newTournamentsDeleteCmd())

	return cmd
}

func newTournamentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visible tournaments",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TournamentsResult

			if err := client.Get("/api/v1/tournaments", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTournamentsCreateCmd() *cobra.Command {
	var name, start, end, location, description, status string
	var players []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tournament",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":        name,
				"startDate":   start,
				"endDate":     end,
				"location":    location,
				"description": description,
				"status":      status,
				"playerIds":   players,
			}
			var result TournamentResult

			if err := client.Post("/api/v1/tournaments", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Tournament)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Tournament name (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&location, "location", "", "Venue")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&status, "status", "", "Status")
	cmd.Flags().StringSliceVar(&players, "players", nil, "Squad player ids")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTournamentsUpdateCmd() *cobra.Command {
	var name, start, end, location, description, status string
	var players []string

	cmd := &cobra.Command{
		Use:   "update <tournament-id>",
		Short: "Update a tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("start") {
				req["startDate"] = start
			}
			if cmd.Flags().Changed("end") {
				req["endDate"] = end
			}
			if cmd.Flags().Changed("location") {
				req["location"] = location
			}
			if cmd.Flags().Changed("description") {
				req["description"] = description
			}
			if cmd.Flags().Changed("status") {
				req["status"] = status
			}
			if cmd.Flags().Changed("players") {
				req["playerIds"] = players
			}

			var updated TournamentResult
			if err := client.Put("/api/v1/tournaments/"+args[0], req, &updated); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(updated.Tournament)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Tournament name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&location, "location", "", "Venue")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&status, "status", "", "Status")
	cmd.Flags().StringSliceVar(&players, "players", nil, "Squad player ids")

	return cmd
}

func newTournamentsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <tournament-id>",
		Short: "Delete a tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MessageResult

			if err := client.Delete("/api/v1/tournaments/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

func newMatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Match schedule commands",
	}

	cmd.AddCommand(newMatchesListCmd())
	cmd.AddCommand(newMatchesCreateCmd())
	cmd.AddCommand(newMatchesUpdateCmd())
	cmd.AddCommand(newMatchesDeleteCmd())

	return cmd
}

func newMatchesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visible matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchesResult

			if err := client.Get("/api/v1/matches", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchesCreateCmd() *cobra.Command {
	var title, opponent, date, timeOfDay, location string
	var players []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a match",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"title":     title,
				"opponent":  opponent,
				"date":      date,
				"time":      timeOfDay,
				"location":  location,
				"playerIds": players,
			}
			var result MatchResult

			if err := client.Post("/api/v1/matches", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Match)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Match title (required)")
	cmd.Flags().StringVar(&opponent, "opponent", "", "Opposing team")
	cmd.Flags().StringVar(&date, "date", "", "Match date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Kickoff time")
	cmd.Flags().StringVar(&location, "location", "", "Venue")
	cmd.Flags().StringSliceVar(&players, "players", nil, "Squad player ids")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newMatchesUpdateCmd() *cobra.Command {
	var title, opponent, date, timeOfDay, location, result, score string
	var players []string

	cmd := &cobra.Command{
		Use:   "update <match-id>",
		Short: "Update a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("title") {
				req["title"] = title
			}
			if cmd.Flags().Changed("opponent") {
				req["opponent"] = opponent
			}
			if cmd.Flags().Changed("date") {
				req["date"] = date
			}
			if cmd.Flags().Changed("time") {
				req["time"] = timeOfDay
			}
			if cmd.Flags().Changed("location") {
				req["location"] = location
			}
			if cmd.Flags().Changed("result") {
				req["result"] = result
			}
			if cmd.Flags().Changed("score") {
				req["score"] = score
			}
			if cmd.Flags().Changed("players") {
				req["playerIds"] = players
			}

			var updated MatchResult
			if err := client.Put("/api/v1/matches/"+args[0], req, &updated); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(updated.Match)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Match title")
	cmd.Flags().StringVar(&opponent, "opponent", "", "Opposing team")
	cmd.Flags().StringVar(&date, "date", "", "Match date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Kickoff time")
	cmd.Flags().StringVar(&location, "location", "", "Venue")
	cmd.Flags().StringVar(&result, "result", "", "Match result")
	cmd.Flags().StringVar(&score, "score", "", "Final score")
	cmd.Flags().StringSliceVar(&players, "players", nil, "Squad player ids")

	return cmd
}

func newMatchesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <match-id>",
		Short: "Delete a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MessageResult

			if err := client.Delete("/api/v1/matches/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

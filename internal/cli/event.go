package cli

import (
	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Team event commands",
	}

	cmd.AddCommand(newEventsListCmd())
	cmd.AddCommand(newEventsCreateCmd())
	cmd.AddCommand(newEventsUpdateCmd())
	cmd.AddCommand(newEventsDeleteCmd())

	return cmd
}

func newEventsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visible events",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result EventsResult

			if err := client.Get("/api/v1/events", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventsCreateCmd() *cobra.Command {
	var title, description, date, timeOfDay, location, eventType string
	var players []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"title":       title,
				"description": description,
				"date":        date,
				"time":        timeOfDay,
				"location":    location,
				"type":        eventType,
				"playerIds":   players,
			}
			var result EventResult

			if err := client.Post("/api/v1/events", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Event)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title (required)")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Start time")
	cmd.Flags().StringVar(&location, "location", "", "Venue")
	cmd.Flags().StringVar(&eventType, "type", "", "Event type (e.g. training, meeting)")
	cmd.Flags().StringSliceVar(&players, "players", nil, "Invited player ids")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newEventsUpdateCmd() *cobra.Command {
	var title, description, date, timeOfDay, location, eventType string
	var players []string

	cmd := &cobra.Command{
		Use:   "update <event-id>",
		Short: "Update an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("title") {
				req["title"] = title
			}
			if cmd.Flags().Changed("description") {
				req["description"] = description
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
			if cmd.Flags().Changed("type") {
				req["type"] = eventType
			}
			if cmd.Flags().Changed("players") {
				req["playerIds"] = players
			}

			var updated EventResult
			if err := client.Put("/api/v1/events/"+args[0], req, &updated); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(updated.Event)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Start time")
	cmd.Flags().StringVar(&location, "location", "", "Venue")
	cmd.Flags().StringVar(&eventType, "type", "", "Event type")
	cmd.Flags().StringSliceVar(&players, "players", nil, "Invited player ids")

	return cmd
}

func newEventsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MessageResult

			if err := client.Delete("/api/v1/events/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newPlayersListCmd())
	cmd.AddCommand(newPlayersCreateCmd())
	cmd.AddCommand(newPlayersUpdateCmd())
	cmd.AddCommand(newPlayersDeleteCmd())

	return cmd
}

func newPlayersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayersResult

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayersCreateCmd() *cobra.Command {
	var name, email, phone, position, dob, user, pass string
	var jersey int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a player and provision their login account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":         name,
				"email":        email,
				"phone":        phone,
				"position":     position,
				"jerseyNumber": jersey,
				"dateOfBirth":  dob,
				"username":     user,
				"password":     pass,
			}
			var result CreatedPlayerResult

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&position, "position", "", "Playing position")
	cmd.Flags().IntVar(&jersey, "jersey", 0, "Jersey number")
	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&user, "user", "", "Login username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Login password (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newPlayersUpdateCmd() *cobra.Command {
	var name, email, phone, position, dob, status string
	var jersey int

	cmd := &cobra.Command{
		Use:   "update <player-id>",
		Short: "Update a player's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only send fields that were set on the command line
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("email") {
				req["email"] = email
			}
			if cmd.Flags().Changed("phone") {
				req["phone"] = phone
			}
			if cmd.Flags().Changed("position") {
				req["position"] = position
			}
			if cmd.Flags().Changed("jersey") {
				req["jerseyNumber"] = jersey
			}
			if cmd.Flags().Changed("dob") {
				req["dateOfBirth"] = dob
			}
			if cmd.Flags().Changed("status") {
				req["status"] = status
			}

			var result PlayerResult
			if err := client.Put("/api/v1/players/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Player)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&position, "position", "", "Playing position")
	cmd.Flags().IntVar(&jersey, "jersey", 0, "Jersey number")
	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Status: active, inactive")

	return cmd
}

func newPlayersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <player-id>",
		Short: "Remove a player and their login account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MessageResult

			if err := client.Delete("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

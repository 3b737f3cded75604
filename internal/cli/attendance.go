package cli

import (
	"github.com/spf13/cobra"
)

func newAttendanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Attendance record commands",
	}

	cmd.AddCommand(newAttendanceListCmd())
	cmd.AddCommand(newAttendanceRecordCmd())
	cmd.AddCommand(newAttendanceUpdateCmd())
	cmd.AddCommand(newAttendanceDeleteCmd())

	return cmd
}

func newAttendanceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List visible attendance records",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AttendanceResult

			if err := client.Get("/api/v1/attendance", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAttendanceRecordCmd() *cobra.Command {
	var player, date, status, notes string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a player's attendance",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"playerId": player,
				"date":     date,
				"status":   status,
				"notes":    notes,
			}
			var result AttendanceRecordResult

			if err := client.Post("/api/v1/attendance", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Attendance)
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "Player id (required)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Status: present, absent, late (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newAttendanceUpdateCmd() *cobra.Command {
	var date, status, notes string

	cmd := &cobra.Command{
		Use:   "update <attendance-id>",
		Short: "Update an attendance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("date") {
				req["date"] = date
			}
			if cmd.Flags().Changed("status") {
				req["status"] = status
			}
			if cmd.Flags().Changed("notes") {
				req["notes"] = notes
			}

			var updated AttendanceRecordResult
			if err := client.Put("/api/v1/attendance/"+args[0], req, &updated); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(updated.Attendance)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Status: present, absent, late")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newAttendanceDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <attendance-id>",
		Short: "Delete an attendance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MessageResult

			if err := client.Delete("/api/v1/attendance/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andy/worklog/internal/domain"
	"github.com/spf13/cobra"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Manage time entries",
	Long:  `List, add, edit, and delete time entries.`,
}

var entriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var clientID *int64
		if cmd.Flags().Changed("client") {
			id, _ := cmd.Flags().GetInt64("client")
			clientID = &id
		}

		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		if start, end = resolveDateFlag(start), resolveDateFlag(end); start == "" || end == "" {
			return fmt.Errorf("--start and --end are required (YYYY-MM-DD, 'today', or 'yesterday')")
		}

		entries, err := appInstance.EntryRepo.ListForRange(ctx, appInstance.CurrentUser.ID, start, end, clientID)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No entries found")
			return nil
		}

		// Print table header
		fmt.Printf("%-5s %-12s %-20s %-25s %-15s %-8s\n", "ID", "Date", "Client", "Job", "Service", "Hours")
		fmt.Println(strings.Repeat("-", 90))

		totalMinutes := 0
		for _, entry := range entries {
			fmt.Printf("%-5d %-12s %-20s %-25s %-15s %-8s\n",
				entry.ID,
				entry.EntryDate,
				truncate(entry.ClientName, 20),
				truncate(entry.JobName, 25),
				truncate(entry.ServiceName, 15),
				formatHours(entry.Hours()),
			)
			totalMinutes += entry.DurationMinutes
		}

		fmt.Println(strings.Repeat("-", 90))
		fmt.Printf("Total: %d entries, %s\n", len(entries), formatHours(float64(totalMinutes)/60.0))
		return nil
	},
}

var entriesAddCmd = &cobra.Command{
	Use:   "add [job_id] [service_id] [date] [duration]",
	Short: "Log a time entry",
	Long: `Log a time entry against a job.

Duration accepts minutes ("90"), hours ("1.5h"), or hours:minutes ("1:30").
Date accepts YYYY-MM-DD, "today", or "yesterday".`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		jobID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid job ID: %w", err)
		}
		serviceID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid service ID: %w", err)
		}

		entryDate := resolveDateFlag(args[2])
		if entryDate == "" {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD, 'today', or 'yesterday'", args[2])
		}

		minutes, err := parseDuration(args[3])
		if err != nil {
			return err
		}

		// Verify the job exists before writing
		job, err := appInstance.CatalogRepo.GetJob(ctx, jobID)
		if err != nil {
			return fmt.Errorf("failed to get job: %w", err)
		}

		entry := domain.NewTimeEntry(appInstance.CurrentUser.ID, jobID, serviceID, entryDate, minutes)

		if cmd.Flags().Changed("task") {
			taskID, _ := cmd.Flags().GetInt64("task")
			entry.TaskID = &taskID
		}
		entry.Notes, _ = cmd.Flags().GetString("notes")

		if err := entry.Validate(); err != nil {
			return fmt.Errorf("invalid entry: %w", err)
		}

		if err := appInstance.EntryRepo.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}

		fmt.Printf("✓ Entry logged (ID: %d)\n", entry.ID)
		fmt.Printf("  Job: %s\n", job.Name)
		fmt.Printf("  Date: %s\n", entry.EntryDate)
		fmt.Printf("  Hours: %s\n", formatHours(entry.Hours()))

		return nil
	},
}

var entriesEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a time entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry ID: %w", err)
		}

		entry, err := appInstance.EntryRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get entry: %w", err)
		}

		// Update fields if flags provided
		if cmd.Flags().Changed("date") {
			date, _ := cmd.Flags().GetString("date")
			if date = resolveDateFlag(date); date == "" {
				return fmt.Errorf("invalid date: expected YYYY-MM-DD, 'today', or 'yesterday'")
			}
			entry.EntryDate = date
		}
		if cmd.Flags().Changed("duration") {
			durStr, _ := cmd.Flags().GetString("duration")
			minutes, err := parseDuration(durStr)
			if err != nil {
				return err
			}
			entry.DurationMinutes = minutes
		}
		if cmd.Flags().Changed("notes") {
			entry.Notes, _ = cmd.Flags().GetString("notes")
		}

		reason, _ := cmd.Flags().GetString("reason")
		if reason == "" {
			return fmt.Errorf("--reason flag is required for editing entries")
		}

		if err := entry.Validate(); err != nil {
			return fmt.Errorf("invalid entry: %w", err)
		}

		if err := appInstance.EntryRepo.Update(ctx, entry, reason); err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}

		fmt.Printf("✓ Entry updated (ID: %d)\n", entry.ID)
		return nil
	},
}

var entriesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a time entry (soft delete)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry ID: %w", err)
		}

		reason, _ := cmd.Flags().GetString("reason")
		if reason == "" {
			return fmt.Errorf("--reason flag is required for deleting entries")
		}

		if err := appInstance.EntryRepo.SoftDelete(ctx, id, reason); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		fmt.Printf("✓ Entry deleted (ID: %d)\n", id)
		return nil
	},
}

var entriesHistoryCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Show edit history for an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry ID: %w", err)
		}

		history, err := appInstance.EntryRepo.GetHistory(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get history: %w", err)
		}

		if len(history) == 0 {
			fmt.Println("No edit history for this entry")
			return nil
		}

		fmt.Printf("Edit History for Entry #%d:\n\n", id)
		for _, h := range history {
			fmt.Printf("%s - %s: %q -> %q\n",
				h.ChangedAt.Format("2006-01-02 15:04:05"), h.FieldName, h.OldValue, h.NewValue)
			if h.ChangeReason != "" {
				fmt.Printf("  Reason: %s\n", h.ChangeReason)
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	entriesCmd.AddCommand(entriesListCmd)
	entriesCmd.AddCommand(entriesAddCmd)
	entriesCmd.AddCommand(entriesEditCmd)
	entriesCmd.AddCommand(entriesDeleteCmd)
	entriesCmd.AddCommand(entriesHistoryCmd)

	// List flags
	entriesListCmd.Flags().Int64("client", 0, "Filter by client ID")
	entriesListCmd.Flags().String("start", "", "Start date (YYYY-MM-DD or 'today')")
	entriesListCmd.Flags().String("end", "", "End date (YYYY-MM-DD or 'today')")

	// Add flags
	entriesAddCmd.Flags().Int64("task", 0, "Task ID within the job")
	entriesAddCmd.Flags().String("notes", "", "Free-text notes")

	// Edit flags
	entriesEditCmd.Flags().String("date", "", "New entry date")
	entriesEditCmd.Flags().String("duration", "", "New duration")
	entriesEditCmd.Flags().String("notes", "", "New notes")
	entriesEditCmd.Flags().String("reason", "", "Reason for edit (required)")

	// Delete flags
	entriesDeleteCmd.Flags().String("reason", "", "Reason for deletion (required)")
}

// resolveDateFlag turns a date argument into a YYYY-MM-DD string, accepting
// "today" and "yesterday" shorthands. Returns "" on invalid input.
func resolveDateFlag(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return time.Now().Format(domain.DateLayout)
	case "yesterday":
		return time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)
	case "":
		return ""
	default:
		if _, err := time.Parse(domain.DateLayout, s); err != nil {
			return ""
		}
		return s
	}
}

// parseDuration converts a duration argument to whole minutes. Accepts plain
// minutes ("90"), decimal hours ("1.5h"), or hours:minutes ("1:30").
func parseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		hours, err1 := strconv.Atoi(parts[0])
		mins, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || mins < 0 || mins > 59 {
			return 0, fmt.Errorf("invalid duration %q: expected H:MM", s)
		}
		return hours*60 + mins, nil
	}

	if strings.HasSuffix(s, "h") {
		hours, err := strconv.ParseFloat(strings.TrimSuffix(s, "h"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: expected hours like 1.5h", s)
		}
		return int(hours*60 + 0.5), nil
	}

	minutes, err := strconv.Atoi(strings.TrimSuffix(s, "m"))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: expected minutes, H:MM, or hours like 1.5h", s)
	}
	return minutes, nil
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andy/worklog/internal/domain"
	"github.com/andy/worklog/internal/report"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the period dashboard",
	Long: `Show logged entries grouped by day, with period totals and averages.

Examples:
  worklog dashboard                       # today's entries
  worklog dashboard --period week
  worklog dashboard --period month --weekly
  worklog dashboard --period month --client 3 --search redesign`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		periodStr, _ := cmd.Flags().GetString("period")
		if !cmd.Flags().Changed("period") && appInstance.Config.Dashboard.DefaultPeriod != "" {
			periodStr = appInstance.Config.Dashboard.DefaultPeriod
		}
		period, err := parsePeriod(periodStr)
		if err != nil {
			return err
		}

		weekly, _ := cmd.Flags().GetBool("weekly")
		if weekly && period != report.PeriodMonth {
			return fmt.Errorf("--weekly requires --period month")
		}

		filter := domain.FilterState{}
		if cmd.Flags().Changed("client") {
			id, _ := cmd.Flags().GetInt64("client")
			filter.ClientID = &id
		}
		filter.SearchQuery, _ = cmd.Flags().GetString("search")

		dash, err := appInstance.DashboardService.GetDashboard(
			ctx, appInstance.CurrentUser.ID, period, filter, time.Now())
		if err != nil {
			return fmt.Errorf("failed to build dashboard: %w", err)
		}

		fmt.Printf("%s: %s – %s\n\n",
			dash.Period,
			dash.Range.Start.Format("Mon 2 Jan 2006"),
			dash.Range.End.Format("Mon 2 Jan 2006"))

		if dash.EmptyState != report.EmptyStateNone {
			fmt.Println(emptyStateMessage(dash.EmptyState))
			return nil
		}

		if weekly {
			printWeekGroups(dash.WeekGroups)
		} else {
			printDateGroups(dash.Groups)
		}

		printStats(dash.Stats)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().String("period", "today", "Period: today, week, or month")
	dashboardCmd.Flags().Int64("client", 0, "Filter by client ID")
	dashboardCmd.Flags().String("search", "", "Filter by search text")
	dashboardCmd.Flags().Bool("weekly", false, "Group the month view by week")
}

func printDateGroups(groups []report.EntryGroup) {
	for _, g := range groups {
		fmt.Printf("%s  %s\n", g.Date.Format("Mon 2 Jan"), formatHours(g.TotalHours))
		for _, e := range g.Entries {
			printEntryLine(e)
		}
		fmt.Println()
	}
}

func printWeekGroups(groups []report.WeekGroup) {
	for _, g := range groups {
		fmt.Printf("%s  %s\n", g.Label, formatHours(g.TotalHours))
		for _, e := range g.Entries {
			printEntryLine(e)
		}
		fmt.Println()
	}
}

func printEntryLine(e *domain.TimeEntry) {
	desc := e.JobName
	if e.JobNumber != "" {
		desc = fmt.Sprintf("%s [%s]", desc, e.JobNumber)
	}
	if e.ClientName != "" {
		desc = e.ClientName + " / " + desc
	}
	if e.ServiceName != "" {
		desc += " · " + e.ServiceName
	}
	fmt.Printf("  #%-4d %-50s %8s\n", e.ID, truncate(desc, 50), formatHours(e.Hours()))
	if e.Notes != "" {
		fmt.Printf("        %s\n", truncate(e.Notes, 60))
	}
}

func printStats(stats report.DashboardStats) {
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Total: %s across %d entries\n", formatHours(stats.TotalHours), stats.EntryCount)

	if stats.TopClient != nil {
		fmt.Printf("Top client: %s (%s)\n", stats.TopClient.Name, formatHours(stats.TopClient.Hours))
	}
	if stats.DaysWithEntries != nil {
		fmt.Printf("Days with entries: %d", *stats.DaysWithEntries)
		if stats.AveragePerDay != nil {
			fmt.Printf(" (avg %s/day)", formatHours(*stats.AveragePerDay))
		}
		fmt.Println()
	}
	if stats.WeeksInMonth != nil && stats.AveragePerWeek != nil {
		fmt.Printf("Weekly average: %s over %d weeks\n", formatHours(*stats.AveragePerWeek), *stats.WeeksInMonth)
	}
}

func emptyStateMessage(s report.EmptyState) string {
	switch s {
	case report.EmptyStateCombined:
		return "No entries match your search and client filter."
	case report.EmptyStateSearch:
		return "No entries match your search."
	case report.EmptyStateFilter:
		return "No entries for this client in this period."
	case report.EmptyStateFirstTime:
		return "Welcome! Log your first entry with: worklog entries add"
	default:
		return "No entries for this period."
	}
}

// formatHours renders hours with one decimal, e.g. "7.5h"
func formatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

// parsePeriod maps a flag value onto a period selector
func parsePeriod(s string) (report.Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today", "day", "":
		return report.PeriodToday, nil
	case "week":
		return report.PeriodWeek, nil
	case "month":
		return report.PeriodMonth, nil
	default:
		return report.PeriodToday, fmt.Errorf("invalid period %q: expected today, week, or month", s)
	}
}

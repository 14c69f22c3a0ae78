package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Team-wide reporting",
}

var teamComplianceCmd = &cobra.Command{
	Use:   "compliance",
	Short: "Show how many team members have logged time this period",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		periodStr, _ := cmd.Flags().GetString("period")
		period, err := parsePeriod(periodStr)
		if err != nil {
			return err
		}

		result, err := appInstance.TeamService.GetCompliance(ctx, period, time.Now())
		if err != nil {
			return fmt.Errorf("failed to compute compliance: %w", err)
		}

		fmt.Printf("Team compliance for %s (%s – %s)\n\n",
			result.Period,
			result.Range.Start.Format("2 Jan 2006"),
			result.Range.End.Format("2 Jan 2006"))

		if result.Compliance.TeamSize == 0 {
			fmt.Println("No active team members")
			return nil
		}

		fmt.Printf("%-25s %-10s %-8s\n", "Member", "Logged", "Hours")
		fmt.Println(strings.Repeat("-", 45))
		for _, m := range result.Members {
			logged := "no"
			if m.HasLogged {
				logged = "yes"
			}
			fmt.Printf("%-25s %-10s %-8s\n", truncate(m.User.Name, 25), logged, formatHours(m.Hours))
		}

		fmt.Println(strings.Repeat("-", 45))
		fmt.Printf("%d of %d members logged time (%.0f%%)\n",
			result.Compliance.MembersLogged,
			result.Compliance.TeamSize,
			result.Compliance.Rate*100)
		return nil
	},
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List team members",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		all, _ := cmd.Flags().GetBool("all")

		users, err := appInstance.UserRepo.List(ctx, !all)
		if err != nil {
			return fmt.Errorf("failed to list team members: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No team members found")
			return nil
		}

		fmt.Printf("%-5s %-25s %-30s %-8s\n", "ID", "Name", "Email", "Active")
		fmt.Println(strings.Repeat("-", 70))
		for _, u := range users {
			active := "yes"
			if !u.IsActive {
				active = "no"
			}
			fmt.Printf("%-5d %-25s %-30s %-8s\n", u.ID, truncate(u.Name, 25), truncate(u.Email, 30), active)
		}
		return nil
	},
}

func init() {
	teamCmd.AddCommand(teamComplianceCmd)
	teamCmd.AddCommand(teamListCmd)

	teamComplianceCmd.Flags().String("period", "week", "Period: today, week, or month")
	teamListCmd.Flags().Bool("all", false, "Include inactive members")
}

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

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage projects, jobs, services, and tasks",
	Long: `Manage the reference data entries are logged against: projects under
clients, jobs under projects, services, and optional tasks under jobs.`,
}

var projectsAddCmd = &cobra.Command{
	Use:   "add-project [client_id] [name]",
	Short: "Add a project under a client",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		clientID, err := parseID(args[0], "client")
		if err != nil {
			return err
		}

		now := time.Now()
		project := &domain.Project{
			ClientID:  clientID,
			Name:      strings.TrimSpace(args[1]),
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := appInstance.CatalogRepo.CreateProject(ctx, project); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		fmt.Printf("✓ Project created: %s (ID: %d)\n", project.Name, project.ID)
		return nil
	},
}

var projectsListCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var clientID *int64
		if cmd.Flags().Changed("client") {
			id, _ := cmd.Flags().GetInt64("client")
			clientID = &id
		}

		projects, err := appInstance.CatalogRepo.ListProjects(ctx, clientID)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		if len(projects) == 0 {
			fmt.Println("No projects found")
			return nil
		}

		fmt.Printf("%-5s %-10s %-35s\n", "ID", "Client", "Name")
		fmt.Println(strings.Repeat("-", 55))
		for _, p := range projects {
			fmt.Printf("%-5d %-10d %-35s\n", p.ID, p.ClientID, truncate(p.Name, 35))
		}
		return nil
	},
}

var jobsAddCmd = &cobra.Command{
	Use:   "add-job [project_id] [name]",
	Short: "Add a job under a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		projectID, err := parseID(args[0], "project")
		if err != nil {
			return err
		}

		now := time.Now()
		job := &domain.Job{
			ProjectID: projectID,
			Name:      strings.TrimSpace(args[1]),
			CreatedAt: now,
			UpdatedAt: now,
		}
		job.JobNumber, _ = cmd.Flags().GetString("number")

		if err := appInstance.CatalogRepo.CreateJob(ctx, job); err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}

		fmt.Printf("✓ Job created: %s (ID: %d)\n", job.Name, job.ID)
		return nil
	},
}

var jobsListCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var projectID *int64
		if cmd.Flags().Changed("project") {
			id, _ := cmd.Flags().GetInt64("project")
			projectID = &id
		}

		jobs, err := appInstance.CatalogRepo.ListJobs(ctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}

		if len(jobs) == 0 {
			fmt.Println("No jobs found")
			return nil
		}

		fmt.Printf("%-5s %-10s %-30s %-12s\n", "ID", "Project", "Name", "Number")
		fmt.Println(strings.Repeat("-", 60))
		for _, j := range jobs {
			fmt.Printf("%-5d %-10d %-30s %-12s\n", j.ID, j.ProjectID, truncate(j.Name, 30), j.JobNumber)
		}
		return nil
	},
}

var servicesAddCmd = &cobra.Command{
	Use:   "add-service [name]",
	Short: "Add a service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		now := time.Now()
		service := &domain.Service{
			Name:      strings.TrimSpace(args[0]),
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := appInstance.CatalogRepo.CreateService(ctx, service); err != nil {
			return fmt.Errorf("failed to create service: %w", err)
		}

		fmt.Printf("✓ Service created: %s (ID: %d)\n", service.Name, service.ID)
		return nil
	},
}

var servicesListCmd = &cobra.Command{
	Use:   "services",
	Short: "List services",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		services, err := appInstance.CatalogRepo.ListServices(ctx)
		if err != nil {
			return fmt.Errorf("failed to list services: %w", err)
		}

		if len(services) == 0 {
			fmt.Println("No services found")
			return nil
		}

		fmt.Printf("%-5s %-35s\n", "ID", "Name")
		fmt.Println(strings.Repeat("-", 40))
		for _, s := range services {
			fmt.Printf("%-5d %-35s\n", s.ID, truncate(s.Name, 35))
		}
		return nil
	},
}

var tasksAddCmd = &cobra.Command{
	Use:   "add-task [job_id] [name]",
	Short: "Add a task under a job",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		jobID, err := parseID(args[0], "job")
		if err != nil {
			return err
		}

		now := time.Now()
		task := &domain.Task{
			JobID:     jobID,
			Name:      strings.TrimSpace(args[1]),
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := appInstance.CatalogRepo.CreateTask(ctx, task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		fmt.Printf("✓ Task created: %s (ID: %d)\n", task.Name, task.ID)
		return nil
	},
}

var tasksListCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var jobID *int64
		if cmd.Flags().Changed("job") {
			id, _ := cmd.Flags().GetInt64("job")
			jobID = &id
		}

		tasks, err := appInstance.CatalogRepo.ListTasks(ctx, jobID)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found")
			return nil
		}

		fmt.Printf("%-5s %-10s %-30s\n", "ID", "Job", "Name")
		fmt.Println(strings.Repeat("-", 50))
		for _, t := range tasks {
			fmt.Printf("%-5d %-10d %-30s\n", t.ID, t.JobID, truncate(t.Name, 30))
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(projectsAddCmd)
	catalogCmd.AddCommand(projectsListCmd)
	catalogCmd.AddCommand(jobsAddCmd)
	catalogCmd.AddCommand(jobsListCmd)
	catalogCmd.AddCommand(servicesAddCmd)
	catalogCmd.AddCommand(servicesListCmd)
	catalogCmd.AddCommand(tasksAddCmd)
	catalogCmd.AddCommand(tasksListCmd)

	projectsListCmd.Flags().Int64("client", 0, "Filter by client ID")
	jobsAddCmd.Flags().String("number", "", "Customer-facing job number")
	jobsListCmd.Flags().Int64("project", 0, "Filter by project ID")
	tasksListCmd.Flags().Int64("job", 0, "Filter by job ID")
}

func parseID(s, kind string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID: %w", kind, err)
	}
	return id, nil
}

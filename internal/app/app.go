package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/andy/worklog/internal/config"
	"github.com/andy/worklog/internal/crypto"
	"github.com/andy/worklog/internal/db"
	"github.com/andy/worklog/internal/domain"
	"github.com/andy/worklog/internal/repository"
	"github.com/andy/worklog/internal/service"
	"golang.org/x/term"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	DB     *db.DB

	// The user rows entries are booked under on this machine
	CurrentUser *domain.User

	// Repositories
	ClientRepo  repository.ClientRepository
	EntryRepo   repository.TimeEntryRepository
	CatalogRepo repository.CatalogRepository
	UserRepo    repository.UserRepository

	// Services
	DashboardService service.DashboardService
	TeamService      service.TeamService
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config
// 2. Getting encryption key from keyring
// 3. Opening database
// 4. Running migrations
// 5. Creating repositories and services
// 6. Resolving the current user
func New(ctx context.Context) (*App, error) {
	// Load config from default path
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	// Ensure all necessary directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	// Get keyring for secure password storage
	keyring := crypto.NewKeyring()

	// Try to get existing encryption key
	password, err := keyring.GetKey()
	if err != nil {
		// No key exists, prompt user to set one
		fmt.Println("Setting up database encryption for the first time...")
		password, err = promptForPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}

		// Store the key in keyring
		if err := keyring.SetKey(password); err != nil {
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}

	// Open the database with encryption
	database, err := db.Open(cfg.Database.Path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations to ensure schema is up to date
	if err := database.RunMigrations(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create repositories
	clientRepo := repository.NewClientRepo(database)
	entryRepo := repository.NewEntryRepo(database)
	catalogRepo := repository.NewCatalogRepo(database)
	userRepo := repository.NewUserRepo(database)

	// Create services with their dependencies
	dashboardService := service.NewDashboardService(entryRepo)
	teamService := service.NewTeamService(entryRepo, userRepo)

	a := &App{
		Config:           cfg,
		DB:               database,
		ClientRepo:       clientRepo,
		EntryRepo:        entryRepo,
		CatalogRepo:      catalogRepo,
		UserRepo:         userRepo,
		DashboardService: dashboardService,
		TeamService:      teamService,
	}

	if err := a.resolveCurrentUser(ctx); err != nil {
		database.Close()
		return nil, err
	}

	return a, nil
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}

// resolveCurrentUser finds or creates the user row named in the config.
// When no name is configured the OS username is used, so a fresh install
// works without editing anything.
func (a *App) resolveCurrentUser(ctx context.Context) error {
	name := strings.TrimSpace(a.Config.User.Name)
	if name == "" {
		name = os.Getenv("USER")
	}
	if name == "" {
		return errors.New("no user name configured: set user.name in the config file")
	}

	user, err := a.UserRepo.GetByName(ctx, name)
	if err == nil {
		a.CurrentUser = user
		return nil
	}

	user = domain.NewUser(name)
	user.Email = a.Config.User.Email
	if err := a.UserRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user %q: %w", name, err)
	}

	a.CurrentUser = user
	return nil
}

// promptForPassword prompts user for a new database password (first run)
// This should be called when keyring has no stored key
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your work log will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for database encryption: ")

	// Read password securely (no echo)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	// Confirm password
	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after confirmation
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	// Check if passwords match
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Database encryption configured successfully")
	fmt.Println()

	return string(password), nil
}

package migrate

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/smartlock-inc/smartlock/internal/infrastructure/config"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/database"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/migration"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	dir        string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display every known migration and whether it has been applied.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new timestamped SQL migration file.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&dir, "dir", migration.ScriptsDir, "Directory the migration file is written to")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// session is an open database plus the migration manager for its driver.
type session struct {
	db      *gorm.DB
	manager *migration.Manager
	log     logger.Interface
}

func (s *session) close() {
	_ = database.Close(s.db, s.log)
}

func openSession() (*session, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slogLog, err := logger.New(&cfg.Logger, cfg.Server.Mode)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger(slogLog)

	manager, err := migration.NewManager(cfg.Database.Driver, log)
	if err != nil {
		return nil, err
	}

	gdb, err := database.Open(&cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &session{db: gdb, manager: manager, log: log}, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	s.log.Infow("running up migrations", "environment", env)
	return s.manager.Up(cmd.Context(), s.db)
}

func runDown(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	s.log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := s.manager.Down(cmd.Context(), s.db, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	s.log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	statuses, err := s.manager.Status(cmd.Context(), s.db)
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	return printStatus(statuses)
}

func printStatus(statuses []migration.Status) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Environment:\t%s\n\n", env)
	fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")

	for _, st := range statuses {
		state, appliedAt := "pending", "-"
		if st.Applied {
			state = "applied"
			appliedAt = st.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", st.Version, state, appliedAt, st.Source)
	}

	return w.Flush()
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := migration.Create(dir, name); err != nil {
		return err
	}

	fmt.Printf("Migration '%s' created in %s\n", name, dir)
	return nil
}

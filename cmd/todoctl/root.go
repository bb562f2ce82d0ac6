package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-todo-local/internal/config"
	"github.com/adanyl0v/go-todo-local/internal/services"
	"github.com/adanyl0v/go-todo-local/internal/storage"
	"github.com/adanyl0v/go-todo-local/internal/tasks"
)

type cli struct {
	logger zerolog.Logger
	slot   storage.Slot
	tasks  services.TaskService
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "todoctl",
		Short: "Manage the personal task list from the terminal",
		Long: `todoctl edits the same task list the HTTP server serves.

Storage is configured with the server's environment variables
(STORAGE_DRIVER, STORAGE_KEY, STORAGE_FILE_DIR, ...). ENV defaults to prod.`,
		Version:            Version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.open,
		PersistentPostRunE: c.close,
	}
	rootCmd.PersistentFlags().Bool("verbose", false, "Log storage activity to stderr")

	rootCmd.AddCommand(c.addCmd())
	rootCmd.AddCommand(c.listCmd())
	rootCmd.AddCommand(c.editCmd())
	rootCmd.AddCommand(c.toggleCmd())
	rootCmd.AddCommand(c.rmCmd())

	return rootCmd
}

func (c *cli) open(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	c.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().
		Timestamp().
		Logger()

	cfg, err := config.NewEnvReaderWithDefaultEnv(config.EnvProd).Read()
	if err != nil {
		return fmt.Errorf("failed to read env: %w", err)
	}

	ids, err := tasks.NewIDProvider(cfg.Tasks.IDFormat)
	if err != nil {
		return err
	}

	c.slot, err = storage.Open(cmd.Context(), cfg, c.logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	c.tasks, err = services.NewTaskService(cmd.Context(), c.logger, c.slot, tasks.SystemClock, ids)
	if err != nil {
		_ = c.slot.Close()
		c.slot = nil
		return err
	}
	return nil
}

func (c *cli) close(*cobra.Command, []string) error {
	if c.slot == nil {
		return nil
	}
	return c.slot.Close()
}

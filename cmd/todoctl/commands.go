package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/adanyl0v/go-todo-local/internal/models"
	"github.com/adanyl0v/go-todo-local/internal/tasks"
)

func addTaskFlags(flags *pflag.FlagSet) {
	flags.StringP("priority", "p", models.PriorityMedium, "Priority (high, medium, low)")
	flags.StringP("status", "s", models.StatusTodo, "Status (todo, in-progress, blocked, done)")
	flags.StringP("description", "d", "", "Longer description")
}

// changedString returns the flag value when it was set on the command line.
func changedString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetString(name)
	return &v
}

func (c *cli) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <topic>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			payload := models.TaskPayload{
				Topic:       &args[0],
				Priority:    changedString(flags, "priority"),
				Status:      changedString(flags, "status"),
				Description: changedString(flags, "description"),
			}

			task, err := c.tasks.Create(cmd.Context(), payload)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), task.ID)
			return nil
		},
	}
	addTaskFlags(cmd.Flags())
	return cmd
}

func (c *cli) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, open ones first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			return writeViews(cmd.OutOrStdout(), format, tasks.Views(c.tasks.List(cmd.Context())))
		},
	}
	cmd.Flags().StringP("output", "o", formatTable, "Output format (table, json, yaml)")
	return cmd
}

func (c *cli) editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the fields of a task",
		Long:  "Change the fields of a task. Fields without a flag keep their current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := c.tasks.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			payload := models.TaskPayload{
				Topic:       &current.Topic,
				Priority:    &current.Priority,
				Status:      &current.Status,
				Description: &current.Description,
			}
			flags := cmd.Flags()
			if v := changedString(flags, "topic"); v != nil {
				payload.Topic = v
			}
			if v := changedString(flags, "priority"); v != nil {
				payload.Priority = v
			}
			if v := changedString(flags, "status"); v != nil {
				payload.Status = v
			}
			if v := changedString(flags, "description"); v != nil {
				payload.Description = v
			}

			task, err := c.tasks.Update(cmd.Context(), args[0], payload)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", task.ID, tasks.StatusLabel(task.Status))
			return nil
		},
	}
	cmd.Flags().StringP("topic", "t", "", "Title of the task")
	addTaskFlags(cmd.Flags())
	return cmd
}

func (c *cli) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task complete, or reopen a completed one",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := c.tasks.ToggleComplete(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			state := "reopened"
			if task.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", task.ID, state)
			return nil
		},
	}
}

func (c *cli) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete tasks",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, id := range args {
				err := c.tasks.Delete(cmd.Context(), id)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", id, err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s deleted\n", id)
			}
			return errors.Join(errs...)
		},
	}
}

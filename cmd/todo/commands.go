package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaushVerse/nginx-docker/internal/app/todostore"
	"github.com/KaushVerse/nginx-docker/internal/core/domain"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos using the saved filter, search and sort",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().String("filter", "", "all, completed, active, pending, low, medium or high")
	cmd.Flags().String("search", "", "case-insensitive text to look for in title or description")
	cmd.Flags().String("sort", "", "newest, oldest, priority or manual")

	cmd.RunE = withSession(opts, func(cmd *cobra.Command, _ []string, s *session) error {
		if err := applyViewFlags(cmd, s.store); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatTodos(s.store.FilteredTodos()))
		return nil
	})
	return cmd
}

// applyViewFlags stores the view flags that were set on the command line.
func applyViewFlags(cmd *cobra.Command, store *todostore.Store) error {
	flags := cmd.Flags()
	if flags.Changed("filter") {
		value, _ := flags.GetString("filter")
		filter := domain.Filter(strings.ToLower(strings.TrimSpace(value)))
		if !filter.Valid() {
			return fmt.Errorf("unknown filter %q", value)
		}
		store.SetFilter(filter)
	}
	if flags.Changed("search") {
		value, _ := flags.GetString("search")
		store.SetSearchQuery(value)
	}
	if flags.Changed("sort") {
		value, _ := flags.GetString("sort")
		sortBy := domain.SortBy(strings.ToLower(strings.TrimSpace(value)))
		if !sortBy.Valid() {
			return fmt.Errorf("unknown sort %q", value)
		}
		store.SetSortBy(sortBy)
	}
	return nil
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	var description, priority string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "todo description")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(domain.PriorityMedium), "low, medium or high")

	cmd.RunE = withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
		p, err := parsePriority(priority)
		if err != nil {
			return err
		}
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return errors.New("title is required")
		}
		s.store.CreateTodo(cmd.Context(), title, description, p)
		return nil
	})
	return cmd
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	var title, description, priority string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the title, description or priority of a todo",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "low, medium or high")

	cmd.RunE = withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
		id := args[0]
		flags := cmd.Flags()
		// Unset flags keep the locally known values. Without a local copy
		// every field must be given.
		current, ok := findTodo(s.store.Todos(), id)
		if !ok && !(flags.Changed("title") && flags.Changed("description") && flags.Changed("priority")) {
			return fmt.Errorf("todo %s not found locally; run sync or pass --title, --description and --priority", id)
		}
		if !flags.Changed("title") {
			title = current.Title
		}
		if !flags.Changed("description") {
			description = current.Description
		}
		if !flags.Changed("priority") {
			priority = string(current.Priority)
		}
		if strings.TrimSpace(title) == "" {
			return errors.New("title is required")
		}
		p, err := parsePriority(priority)
		if err != nil {
			return err
		}

		s.store.UpdateTodo(cmd.Context(), id, strings.TrimSpace(title), description, p)
		return nil
	})
	return cmd
}

func newToggleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip the completed flag of a todo",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			s.store.ToggleTodo(cmd.Context(), args[0])
			return nil
		}),
	}
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a todo",
		Args:    cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			s.store.DeleteTodo(cmd.Context(), args[0])
			return nil
		}),
	}
}

func newMoveCmd(opts *rootOptions, use, short string, move func(*todostore.Store, string)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, args []string, s *session) error {
			if _, ok := findTodo(s.store.Todos(), args[0]); !ok {
				return fmt.Errorf("todo %s not found locally", args[0])
			}
			move(s.store, args[0])
			return nil
		}),
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show todo counters",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, _ []string, s *session) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatStats(s.store.Stats()))
			return nil
		}),
	}
}

func newSyncCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Replace the local todos with the server's list",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, _ []string, s *session) error {
			s.store.FetchTodos(cmd.Context())
			if !s.failed.Load() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d todos synced\n", len(s.store.Todos()))
			}
			return nil
		}),
	}
}

func parsePriority(value string) (domain.Priority, error) {
	p := domain.Priority(strings.ToLower(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", value)
	}
	return p, nil
}

func findTodo(todos []domain.Todo, id string) (domain.Todo, bool) {
	for _, todo := range todos {
		if todo.ID == id {
			return todo, true
		}
	}
	return domain.Todo{}, false
}

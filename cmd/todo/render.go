package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/KaushVerse/nginx-docker/internal/core/domain"
)

var (
	toastSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func renderToast(toast domain.Toast) string {
	switch toast.Severity {
	case domain.SeveritySuccess:
		return toastSuccessStyle.Render("✓ " + toast.Message)
	case domain.SeverityError:
		return toastErrorStyle.Render("✗ " + toast.Message)
	default:
		return toastInfoStyle.Render("• " + toast.Message)
	}
}

func formatTodos(todos []domain.Todo) string {
	if len(todos) == 0 {
		return mutedStyle.Render("no todos") + "\n"
	}

	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tPRIORITY\tORDER\tTITLE\tCREATED")
	for _, todo := range todos {
		done := "[ ]"
		if todo.Completed {
			done = "[x]"
		}
		created := ""
		if !todo.CreatedAt.IsZero() {
			created = todo.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			todo.ID, done, todo.Priority, strconv.Itoa(todo.Order), oneLine(todo.Title), created)
	}
	_ = w.Flush()
	return builder.String()
}

func formatStats(stats domain.Stats) string {
	return fmt.Sprintf("total: %d  completed: %d  pending: %d  high priority: %d",
		stats.Total, stats.Completed, stats.Pending, stats.HighPriority)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

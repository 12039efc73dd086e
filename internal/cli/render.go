package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/daykan/internal/cli/styles"
)

// RenderBoard renders today's board as one section per column
func RenderBoard(view BoardView) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Board for " + view.Date))
	b.WriteString("\n")

	for _, col := range view.Columns {
		b.WriteString("\n")
		b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("%s (%d)", col.Name, len(col.Tasks))))
		b.WriteString("\n")
		if len(col.Tasks) == 0 {
			b.WriteString(styles.SubtitleStyle.Render("  (empty)"))
			b.WriteString("\n")
			continue
		}
		for _, task := range col.Tasks {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				styles.SubtitleStyle.Render(fmt.Sprintf("#%d", task.ID)),
				styles.ValueStyle.Render(task.Title)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderTask renders a task card. The description is treated as markdown.
func RenderTask(view TaskView) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d %s", view.ID, view.Title)))
	b.WriteString("\n\n")
	b.WriteString(styles.Field("Date", view.Date) + "\n")
	if view.ColumnName != "" {
		b.WriteString(styles.Field("Column", view.ColumnName) + "\n")
	}
	b.WriteString(styles.Field("Created", view.CreatedAt.Local().Format("2006-01-02 15:04")) + "\n")
	if view.Archived {
		archivedAt := "yes"
		if view.ArchivedAt != nil {
			archivedAt = view.ArchivedAt.Local().Format("2006-01-02 15:04")
		}
		b.WriteString(styles.Field("Archived", archivedAt) + "\n")
	}

	if strings.TrimSpace(view.Description) != "" {
		b.WriteString("\n")
		b.WriteString(RenderMarkdown(view.Description, styles.CardWidth-6))
	}
	return styles.RenderCard(strings.TrimRight(b.String(), "\n"))
}

// RenderMarkdown renders md for the terminal, falling back to the raw text
func RenderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		slog.Warn("failed to create markdown renderer", "error", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		slog.Warn("failed to render markdown", "error", err)
		return md
	}
	return strings.Trim(out, "\n")
}

// RenderArchive renders an archive listing grouped by day
func RenderArchive(view ArchiveView) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s (%d archived)", view.Title, view.Count)))
	b.WriteString("\n")

	if view.Count == 0 {
		b.WriteString(styles.SubtitleStyle.Render("No archived tasks"))
		return b.String()
	}

	current := ""
	for _, task := range view.Tasks {
		if task.Date != current {
			current = task.Date
			b.WriteString("\n")
			b.WriteString(styles.HeaderStyle.Render(current))
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styles.SubtitleStyle.Render(fmt.Sprintf("#%d", task.ID)),
			styles.ArchivedStyle.Render(task.Title)))
	}
	return strings.TrimRight(b.String(), "\n")
}

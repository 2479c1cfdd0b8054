package task

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/handler"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/markdown"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task: description rendered as markdown, status, labels and checklist.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runShow),
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

type detailView struct {
	*models.TaskDetail
	style markdown.Style
}

func (d detailView) WriteHuman(w io.Writer) error {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", d.ID, d.Title)))
	content.WriteString("\n\n")

	metaLine := fmt.Sprintf("%s %s  %s %s",
		styles.LabelStyle.Render("Column:"), styles.ValueStyle.Render(d.ColumnName),
		styles.LabelStyle.Render("Status:"), styles.RenderStatus(d.Status))
	content.WriteString(metaLine)
	content.WriteString("\n")

	if d.DueDate != nil {
		content.WriteString(styles.LabelStyle.Render("Due:") + " " +
			styles.ValueStyle.Render(d.DueDate.Format("2006-01-02")) + "\n")
	}

	if len(d.Labels) > 0 {
		chips := make([]string, 0, len(d.Labels))
		for _, l := range d.Labels {
			chips = append(chips, styles.RenderLabelChip(l))
		}
		content.WriteString(styles.LabelStyle.Render("Labels:") + " " + strings.Join(chips, " ") + "\n")
	}

	if d.Description != "" {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")
		content.WriteString(markdown.RenderOrRaw(d.Description, styles.CardWidth-8, d.style))
		content.WriteString("\n")
	}

	if len(d.Checklist) > 0 {
		done := 0
		for _, item := range d.Checklist {
			if item.Done {
				done++
			}
		}
		content.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Checklist (%d/%d)", done, len(d.Checklist))))
		content.WriteString("\n")
		for _, item := range d.Checklist {
			mark := "[ ]"
			if item.Done {
				mark = "[x]"
			}
			fmt.Fprintf(&content, "  %s %s %s\n", mark, item.Text, styles.SubtitleStyle.Render(fmt.Sprintf("#%d", item.ID)))
		}
	}

	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Created %s · Updated %s",
		d.CreatedAt.Format("2006-01-02 15:04"), d.UpdatedAt.Format("2006-01-02 15:04"))))

	_, err := fmt.Fprintln(w, styles.RenderCard(content.String()))
	return err
}

func runShow(ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (any, error) {
	taskID, err := cli.ParseID(cmd, args, "id")
	if err != nil {
		return nil, &cli.UsageError{
			Message:    err.Error(),
			Suggestion: "Usage: tablero task show <id> or tablero task show --id=<id>",
		}
	}
	styles.Init(c.Config.ColorScheme)

	task, err := c.App.TaskService.GetTaskDetail(ctx, taskID)
	if err != nil {
		return nil, err
	}

	style := markdown.StylePlain
	if f, ok := cmd.OutOrStdout().(*os.File); ok && f == os.Stdout {
		style = markdown.StyleAuto
	}
	return detailView{TaskDetail: task, style: style}, nil
}

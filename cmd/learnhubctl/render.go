package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/system/tabs"
	"github.com/dalemusser/learnhub/internal/domain/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	categoryStyles = map[string]lipgloss.Style{
		models.CategoryBasic:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		models.CategoryIntermediate: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		models.CategoryAdvanced:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

// dots renders difficulty d as filled and empty circles.
func dots(d int) string {
	if d < 0 {
		d = 0
	}
	if d > models.MaxDifficulty {
		d = models.MaxDifficulty
	}
	return strings.Repeat("●", d) + strings.Repeat("○", models.MaxDifficulty-d)
}

func writeList(w io.Writer, c *catalog.Catalog, res catalog.Result) {
	if res.Empty() {
		fmt.Fprintln(w, mutedStyle.Render("No topics found matching your search."))
		return
	}
	for _, t := range res.Topics {
		mark := " "
		if c.HasContent(t.ID) {
			mark = "•"
		}
		cat := categoryStyles[t.Category].Width(12).Render(t.Category)
		fmt.Fprintf(w, "%s %s %-22s %s %s  %s\n",
			t.Icon, mark, t.ID, cat, dots(t.Difficulty), titleStyle.Render(t.Title))
	}
	p := c.Progress()
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d of %d topics · %d/%d completed", res.Count(), c.Len(), p.Completed, p.Total)))
}

// topicMarkdown lays out the requested sections of tc as markdown.
func topicMarkdown(tc models.TopicContent, sections []tabs.Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", tc.Icon, tc.Title)
	fmt.Fprintf(&b, "_%s_\n\n", tc.Description)
	fmt.Fprintf(&b, "%s · %s · %d concepts · %d examples\n\n",
		tc.Category, tc.Duration, len(tc.Concepts), len(tc.CodeExamples))

	for _, s := range sections {
		switch s {
		case tabs.Overview:
			b.WriteString("## What You'll Learn\n\n")
			b.WriteString(tc.Overview + "\n\n")
			b.WriteString("### Key Concepts\n\n")
			for _, c := range tc.Concepts {
				fmt.Fprintf(&b, "- %s\n", c)
			}
			b.WriteString("\n")
		case tabs.Examples:
			b.WriteString("## Examples\n\n")
			for _, ex := range tc.CodeExamples {
				fmt.Fprintf(&b, "### %s\n\n```csharp\n%s\n```\n\n%s\n\n", ex.Title, ex.Code, ex.Explanation)
			}
		case tabs.Exercises:
			b.WriteString("## Exercises\n\n")
			for _, ex := range tc.Exercises {
				fmt.Fprintf(&b, "### %s\n\n%s\n\n> **Hint:** %s\n\n", ex.Title, ex.Description, ex.Hint)
			}
		case tabs.Summary:
			b.WriteString("## Key Takeaways\n\n")
			for i, p := range tc.KeyPoints {
				fmt.Fprintf(&b, "%d. %s\n", i+1, p)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/cursor-chat-export/internal"
	"github.com/spf13/cobra"
)

var (
	listHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	listTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	listIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	listCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	listDateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available chat sessions",
	Long:  `List all chat sessions found in the database, with titles and message counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := loadSessions("")
		if err != nil {
			return err
		}
		displaySessions(sessions)
		return nil
	},
}

func displaySessions(sessions []*internal.Session) {
	if len(sessions) == 0 {
		fmt.Println(listHeaderStyle.Render("No sessions found"))
		return
	}

	fmt.Println(listHeaderStyle.Render(fmt.Sprintf("Found %d session(s)", len(sessions))))
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, listTitleStyle.Render("ID")+"\t"+listTitleStyle.Render("Title")+"\t"+listTitleStyle.Render("Messages")+"\t"+listTitleStyle.Render("Updated")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, session := range sessions {
		title := session.DisplayTitle()
		if len(title) > 50 {
			title = title[:47] + "..."
		}

		shortID := session.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			listIDStyle.Render(shortID),
			title,
			listCountStyle.Render(strconv.Itoa(len(session.Messages))),
			listDateStyle.Render(formatListDate(session.UpdatedAt)),
		)
	}

	_ = w.Flush()
}

func formatListDate(stamp string) string {
	if stamp == "" {
		return "—"
	}
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return "—"
	}

	diff := time.Since(t)
	switch {
	case diff < 24*time.Hour:
		return t.Format("Today 15:04")
	case diff < 7*24*time.Hour:
		return t.Format("Mon 15:04")
	case diff < 365*24*time.Hour:
		return t.Format("Jan 02 15:04")
	default:
		return t.Format("2006-01-02")
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}

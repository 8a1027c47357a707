package cmd

import (
	"github.com/iksnae/cursor-chat-export/internal/tui"
	"github.com/spf13/cobra"
)

var uiDumpRaw string

// uiCmd represents the ui command
var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse chats interactively in the terminal",
	Long:  `Launch an interactive terminal browser over all chat sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := loadSessions(uiDumpRaw)
		if err != nil {
			return err
		}
		return tui.Run(sessions)
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVar(&uiDumpRaw, "dump-raw", "", "Optional directory to dump raw JSON rows for debugging")
}

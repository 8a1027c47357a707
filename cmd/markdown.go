package cmd

import "github.com/spf13/cobra"

var (
	markdownOutDir  string
	markdownDumpRaw string
)

// markdownCmd represents the markdown command
var markdownCmd = &cobra.Command{
	Use:   "markdown",
	Short: "Export chats to Markdown files",
	Long: `Export all chat sessions to Markdown files, one file per session.

File names are derived from the session title; duplicate titles get
numeric suffixes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport("markdown", markdownOutDir, markdownDumpRaw)
	},
}

func init() {
	rootCmd.AddCommand(markdownCmd)
	markdownCmd.Flags().StringVar(&markdownOutDir, "out-dir", "chat_output_md", "Directory to write Markdown files to")
	markdownCmd.Flags().StringVar(&markdownDumpRaw, "dump-raw", "", "Optional directory to dump raw JSON rows for debugging")
}

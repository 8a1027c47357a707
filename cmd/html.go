package cmd

import "github.com/spf13/cobra"

var (
	htmlOutDir  string
	htmlDumpRaw string
)

// htmlCmd represents the html command
var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Export chats to styled HTML files",
	Long:  `Export all chat sessions to standalone HTML files with Tailwind CSS styling.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport("html", htmlOutDir, htmlDumpRaw)
	},
}

func init() {
	rootCmd.AddCommand(htmlCmd)
	htmlCmd.Flags().StringVar(&htmlOutDir, "out-dir", "chat_output_html", "Directory to write HTML files to")
	htmlCmd.Flags().StringVar(&htmlDumpRaw, "dump-raw", "", "Optional directory to dump raw JSON rows for debugging")
}

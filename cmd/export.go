package cmd

import "github.com/spf13/cobra"

var (
	exportFormat  string
	exportOutDir  string
	exportDumpRaw string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export chats in a structured format",
	Long: `Export chat sessions in a structured format (json, jsonl, yaml, md, html).

This is the generic counterpart to the markdown and html commands; use it
when you want machine-readable output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(exportFormat, exportOutDir, exportDumpRaw)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, jsonl, yaml, md, html)")
	exportCmd.Flags().StringVar(&exportOutDir, "out-dir", "./exports", "Output directory")
	exportCmd.Flags().StringVar(&exportDumpRaw, "dump-raw", "", "Optional directory to dump raw JSON rows for debugging")
}

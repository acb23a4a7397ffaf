package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all items as CSV",
	Long: `Export writes every item in the CSV format served by GET /api/item/export.
The output goes to stdout unless --out names a file.

Example:
  inventory export
  inventory export --out items.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all items as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := service.ListItems(commandContext(cmd))
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}

		output, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal items: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "destination file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	file, err := service.Export(commandContext(cmd))
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Cleanup(); err != nil {
			slog.Debug("export cleanup failed", "file", file.Name, "error", err)
		}
	}()

	src, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer src.Close()

	var dst io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		out, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer out.Close()
		dst = out
	}

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy export: %w", err)
	}

	slog.Info("export written", "rows", file.Rows, "out", exportOut)
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"abroadctl/internal/ui"
)

var documentsCmd = &cobra.Command{
	Use:     "documents",
	Aliases: []string{"docs"},
	Short:   "Manage uploaded documents",
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		if err := app.requireAuth(); err != nil {
			return err
		}

		docs, err := app.Documents.List(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(docs))
		for _, d := range docs {
			rows = append(rows, []string{d.ID, d.Type, d.Name, d.StudentID})
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.Table([]string{"ID", "TYPE", "NAME", "STUDENT"}, rows))
		return nil
	},
}

var documentsUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		if err := app.requireAuth(); err != nil {
			return err
		}

		studentID, _ := cmd.Flags().GetString("student")
		docType, _ := cmd.Flags().GetString("type")

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer file.Close()

		doc, err := app.Documents.Upload(cmd.Context(), studentID, docType, filepath.Base(args[0]), file)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Uploaded "+doc.Name+" as "+doc.ID))
		return nil
	},
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		if err := app.requireAuth(); err != nil {
			return err
		}

		if err := app.Documents.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Deleted document "+args[0]))
		return nil
	},
}

func init() {
	documentsUploadCmd.Flags().String("student", "", "student the document belongs to")
	documentsUploadCmd.Flags().String("type", "transcript", "document type (transcript, passport, visa, ...)")
	_ = documentsUploadCmd.MarkFlagRequired("student")

	documentsCmd.AddCommand(documentsListCmd, documentsUploadCmd, documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

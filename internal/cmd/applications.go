package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"abroadctl/internal/models"
	"abroadctl/internal/ui"
)

var applicationsCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"apps"},
	Short:   "Track study-abroad applications",
}

var applicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
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

		apps, err := app.Applications.List(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(apps))
		for _, a := range apps {
			fee := "due"
			if a.FeePaid {
				fee = "paid"
			}
			rows = append(rows, []string{a.ID, a.University, a.Program, a.Status, fee})
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.Table([]string{"ID", "UNIVERSITY", "PROGRAM", "STATUS", "FEE"}, rows))
		return nil
	},
}

var applicationsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one application",
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

		a, err := app.Applications.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fee := "due"
		if a.FeePaid {
			fee = "paid"
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.KeyValue([][2]string{
			{"ID", a.ID},
			{"Student", a.StudentID},
			{"University", a.University},
			{"Program", a.Program},
			{"Country", a.Country},
			{"Status", a.Status},
			{"Fee", fee},
		}))
		return nil
	},
}

var applicationsCreateCmd = &cobra.Command{
	Use:   "create <university> <program>",
	Short: "Submit an application",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		if err := app.requireAuth(); err != nil {
			return err
		}

		a := models.Application{University: args[0], Program: args[1]}
		a.Country, _ = cmd.Flags().GetString("country")
		a.StudentID, _ = cmd.Flags().GetString("student")

		created, err := app.Applications.Create(cmd.Context(), a)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Created application "+created.ID))
		return nil
	},
}

var applicationsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an application",
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

		a, err := app.Applications.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if v, _ := cmd.Flags().GetString("university"); v != "" {
			a.University = v
		}
		if v, _ := cmd.Flags().GetString("program"); v != "" {
			a.Program = v
		}
		if v, _ := cmd.Flags().GetString("country"); v != "" {
			a.Country = v
		}
		if _, err := app.Applications.Update(cmd.Context(), args[0], *a); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Updated application "+args[0]))
		return nil
	},
}

var applicationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Withdraw an application",
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

		if err := app.Applications.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Withdrew application "+args[0]))
		return nil
	},
}

var applicationsPayFeeCmd = &cobra.Command{
	Use:   "pay-fee <id>",
	Short: "Pay the application fee",
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

		a, err := app.Applications.PayFee(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render(
			fmt.Sprintf("Fee paid for %s — %s", a.University, a.Program)))
		return nil
	},
}

func init() {
	applicationsCreateCmd.Flags().String("country", "", "destination country")
	applicationsCreateCmd.Flags().String("student", "", "student ID (staff submitting on behalf of a student)")

	applicationsUpdateCmd.Flags().String("university", "", "university name")
	applicationsUpdateCmd.Flags().String("program", "", "program name")
	applicationsUpdateCmd.Flags().String("country", "", "destination country")

	applicationsCmd.AddCommand(applicationsListCmd, applicationsGetCmd, applicationsCreateCmd,
		applicationsUpdateCmd, applicationsDeleteCmd, applicationsPayFeeCmd)
	rootCmd.AddCommand(applicationsCmd)
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"abroadctl/internal/models"
	"abroadctl/internal/ui"
)

var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Manage student records",
}

var studentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		if err := app.requireStaff(); err != nil {
			return err
		}

		students, err := app.Students.List(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(students))
		for _, s := range students {
			rows = append(rows, []string{s.ID, s.Name, s.Email, s.TargetCountry})
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.Table([]string{"ID", "NAME", "EMAIL", "TARGET"}, rows))
		return nil
	},
}

var studentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one student",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		if err := app.requireStaff(); err != nil {
			return err
		}

		student, err := app.Students.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.KeyValue([][2]string{
			{"ID", student.ID},
			{"Name", student.Name},
			{"Email", student.Email},
			{"Nationality", student.Nationality},
			{"Country", student.TargetCountry},
			{"University", student.TargetUniversity},
		}))
		return nil
	},
}

var studentsCreateCmd = &cobra.Command{
	Use:   "create <name> <email>",
	Short: "Create a student record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		if err := app.requireStaff(); err != nil {
			return err
		}

		student := models.Student{Name: args[0], Email: args[1]}
		student.Nationality, _ = cmd.Flags().GetString("nationality")
		student.TargetCountry, _ = cmd.Flags().GetString("country")
		student.TargetUniversity, _ = cmd.Flags().GetString("university")

		created, err := app.Students.Create(cmd.Context(), student)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Created student "+created.ID))
		return nil
	},
}

var studentsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a student record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		if err := app.requireStaff(); err != nil {
			return err
		}

		student, err := app.Students.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if v, _ := cmd.Flags().GetString("name"); v != "" {
			student.Name = v
		}
		if v, _ := cmd.Flags().GetString("nationality"); v != "" {
			student.Nationality = v
		}
		if v, _ := cmd.Flags().GetString("country"); v != "" {
			student.TargetCountry = v
		}
		if v, _ := cmd.Flags().GetString("university"); v != "" {
			student.TargetUniversity = v
		}
		if _, err := app.Students.Update(cmd.Context(), args[0], *student); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Updated student "+args[0]))
		return nil
	},
}

var studentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a student record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()
		if err := app.requireStaff(); err != nil {
			return err
		}

		if err := app.Students.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Deleted student "+args[0]))
		return nil
	},
}

// dashboardCmd is the terminal rendition of the dashboard screens: staff see
// every student with their applications (partial results tolerated), while a
// student sees their own record and applications.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard for the current user",
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

		if app.Session.IsStudent() {
			return studentDashboard(cmd, app)
		}
		return staffDashboard(cmd, app)
	},
}

func staffDashboard(cmd *cobra.Command, app *App) error {
	overviews, err := app.Students.ListWithApplications(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading.Render(fmt.Sprintf("Students (%d)", len(overviews))))
	for _, ov := range overviews {
		fmt.Fprintf(out, "%s %s\n", ov.Student.Name, ui.Muted.Render("<"+ov.Student.Email+">"))
		if len(ov.Applications) == 0 {
			fmt.Fprintln(out, ui.Muted.Render("  no applications"))
			continue
		}
		for _, a := range ov.Applications {
			fmt.Fprintf(out, "  %s — %s (%s)\n", a.University, a.Program, a.Status)
		}
	}
	return nil
}

func studentDashboard(cmd *cobra.Command, app *App) error {
	student, err := app.Students.Profile(cmd.Context())
	if err != nil {
		return err
	}
	apps, err := app.Students.Applications(cmd.Context(), student.ID)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading.Render("My Applications ("+strconv.Itoa(len(apps))+"/5)"))
	if len(apps) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("No applications yet"))
		return nil
	}
	for _, a := range apps {
		fee := "fee due"
		if a.FeePaid {
			fee = "fee paid"
		}
		fmt.Fprintf(out, "%s — %s (%s, %s)\n", a.University, a.Program, a.Status, fee)
	}
	return nil
}

func init() {
	studentsCreateCmd.Flags().String("nationality", "", "student nationality")
	studentsCreateCmd.Flags().String("country", "", "target country")
	studentsCreateCmd.Flags().String("university", "", "target university")

	studentsUpdateCmd.Flags().String("name", "", "student name")
	studentsUpdateCmd.Flags().String("nationality", "", "student nationality")
	studentsUpdateCmd.Flags().String("country", "", "target country")
	studentsUpdateCmd.Flags().String("university", "", "target university")

	studentsCmd.AddCommand(studentsListCmd, studentsGetCmd, studentsCreateCmd, studentsUpdateCmd, studentsDeleteCmd)
	rootCmd.AddCommand(studentsCmd, dashboardCmd)
}

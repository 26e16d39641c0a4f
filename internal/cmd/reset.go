package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"abroadctl/internal/ui"
)

// The password reset flow is the app's three-step wizard: request a code,
// verify it, then set the new password.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a forgotten password",
}

var resetRequestCmd = &cobra.Command{
	Use:   "request <email>",
	Short: "Email a password reset code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.Session.RequestPasswordReset(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render(
			"If an account with that email exists, we've sent a password reset code."))
		return nil
	},
}

var resetVerifyCmd = &cobra.Command{
	Use:   "verify <email> <code>",
	Short: "Verify a reset code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.Session.VerifyResetCode(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Code verified. Run `abroadctl reset complete` to set a new password."))
		return nil
	},
}

var resetCompleteCmd = &cobra.Command{
	Use:   "complete <email> <code>",
	Short: "Set a new password with a verified code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		password, err := readPassword("New password: ")
		if err != nil {
			return err
		}
		if err := app.Session.CompletePasswordReset(cmd.Context(), args[0], args[1], password); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Password updated. You can sign in now."))
		return nil
	},
}

func init() {
	resetCmd.AddCommand(resetRequestCmd, resetVerifyCmd, resetCompleteCmd)
	rootCmd.AddCommand(resetCmd)
}

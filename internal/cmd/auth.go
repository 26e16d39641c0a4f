package cmd

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"abroadctl/internal/api"
	"abroadctl/internal/ui"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and persist the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		if err := app.Session.Login(cmd.Context(), args[0], password); err != nil {
			return err
		}
		user := app.Session.CurrentUser()
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render(fmt.Sprintf("Signed in as %s (%s)", user.Name, user.Role)))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and clear stored credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		app.Session.Logout(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Signed out"))
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <name> <email>",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		password, err := readPassword("Choose a password: ")
		if err != nil {
			return err
		}
		req := api.SignupRequest{Name: args[0], Email: args[1], Password: password}
		if err := app.Session.Signup(cmd.Context(), req); err != nil {
			return err
		}
		user := app.Session.CurrentUser()
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render(fmt.Sprintf("Welcome, %s", user.Name)))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		user := app.Session.CurrentUser()
		if user == nil {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Not signed in"))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.KeyValue([][2]string{
			{"Name", user.Name},
			{"Email", user.Email},
			{"Role", string(user.Role)},
			{"Server", app.Client.BaseURL()},
		}))
		return nil
	},
}

// readPassword prompts for a password without echoing.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	data, err := terminal.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, signupCmd, whoamiCmd)
}

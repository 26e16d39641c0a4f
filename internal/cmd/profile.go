package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"abroadctl/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
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

		user, err := app.Users.Profile(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.KeyValue([][2]string{
			{"Name", user.Name},
			{"Email", user.Email},
			{"Role", string(user.Role)},
			{"Avatar", user.Avatar},
		}))
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
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

		user := app.Session.CurrentUser()
		if v, _ := cmd.Flags().GetString("name"); v != "" {
			user.Name = v
		}
		if v, _ := cmd.Flags().GetString("email"); v != "" {
			user.Email = v
		}
		updated, err := app.Users.UpdateProfile(cmd.Context(), *user)
		if err != nil {
			return err
		}
		// Keep the cached user record in sync with the backend's copy.
		if err := app.Session.UpdateProfile(cmd.Context(), *updated); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Profile updated"))
		return nil
	},
}

var profileAvatarCmd = &cobra.Command{
	Use:   "avatar <image>",
	Short: "Upload a new avatar",
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

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer file.Close()

		updated, err := app.Users.UploadAvatar(cmd.Context(), filepath.Base(args[0]), file)
		if err != nil {
			return err
		}
		if err := app.Session.UpdateProfile(cmd.Context(), *updated); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Avatar updated"))
		return nil
	},
}

var profileSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change your settings",
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

		settings, err := app.Users.Settings(cmd.Context())
		if err != nil {
			return err
		}
		changed := false
		if cmd.Flags().Changed("notifications") {
			settings.Notifications, _ = cmd.Flags().GetBool("notifications")
			changed = true
		}
		if v, _ := cmd.Flags().GetString("language"); v != "" {
			settings.Language = v
			changed = true
		}
		if changed {
			if settings, err = app.Users.UpdateSettings(cmd.Context(), *settings); err != nil {
				return err
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.KeyValue([][2]string{
			{"Notifications", strconv.FormatBool(settings.Notifications)},
			{"Language", settings.Language},
		}))
		return nil
	},
}

var profilePasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Change your password",
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

		current, err := readPassword("Current password: ")
		if err != nil {
			return err
		}
		next, err := readPassword("New password: ")
		if err != nil {
			return err
		}
		if err := app.Users.ChangePassword(cmd.Context(), current, next); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Render("Password changed"))
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().String("name", "", "display name")
	profileUpdateCmd.Flags().String("email", "", "email address")

	profileSettingsCmd.Flags().Bool("notifications", true, "enable notifications")
	profileSettingsCmd.Flags().String("language", "", "preferred language")

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd, profileAvatarCmd, profileSettingsCmd, profilePasswordCmd)
	rootCmd.AddCommand(profileCmd)
}

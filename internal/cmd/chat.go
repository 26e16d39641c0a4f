package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"abroadctl/internal/tui"
	"abroadctl/internal/ui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with advisors and students",
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations",
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

		chats, err := app.Chats.List(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(chats))
		for _, c := range chats {
			names := ""
			for i, p := range c.Participants {
				if i > 0 {
					names += ", "
				}
				names += p.Name
			}
			rows = append(rows, []string{c.ID, names, c.LastMessage})
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.Table([]string{"ID", "WITH", "LAST MESSAGE"}, rows))
		return nil
	},
}

var chatOpenCmd = &cobra.Command{
	Use:   "open <chat-id>",
	Short: "Open a conversation",
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

		model := tui.NewChatModel(app.Chats, args[0], app.Session.CurrentUser().ID)
		program := tea.NewProgram(model)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("chat view: %w", err)
		}
		return nil
	},
}

func init() {
	chatCmd.AddCommand(chatListCmd, chatOpenCmd)
	rootCmd.AddCommand(chatCmd)
}

// Package tui implements the interactive chat view as a bubbletea program.
// Messages are loaded once when the conversation opens; enter sends the
// typed line through the chat service.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"abroadctl/internal/api"
	"abroadctl/internal/models"
)

var (
	ownMessageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F"))
	otherMessageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF"))
	promptStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#AFAFFF")).Bold(true)
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
)

type messagesLoadedMsg struct {
	messages []models.Message
	err      error
}

type messageSentMsg struct {
	message *models.Message
	err     error
}

// ChatModel is the bubbletea model for one open conversation.
type ChatModel struct {
	chats  *api.ChatService
	chatID string
	selfID string

	messages []models.Message
	input    string
	errText  string
	loaded   bool
	quitting bool
}

// NewChatModel creates a ChatModel for the given conversation. selfID is the
// current user's ID, used to align sent messages.
func NewChatModel(chats *api.ChatService, chatID, selfID string) ChatModel {
	return ChatModel{chats: chats, chatID: chatID, selfID: selfID}
}

// Init loads the message history.
func (m ChatModel) Init() tea.Cmd {
	return func() tea.Msg {
		messages, err := m.chats.Messages(context.Background(), m.chatID)
		return messagesLoadedMsg{messages: messages, err: err}
	}
}

// Update handles key input and service results.
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messagesLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.messages = msg.messages
		return m, nil

	case messageSentMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		if msg.message != nil {
			m.messages = append(m.messages, *msg.message)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input)
			m.input = ""
			if text == "" {
				return m, nil
			}
			return m, m.sendCmd(text)
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil
		case tea.KeySpace:
			m.input += " "
			return m, nil
		case tea.KeyRunes:
			m.input += string(msg.Runes)
			return m, nil
		}
	}
	return m, nil
}

func (m ChatModel) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.chats.Send(context.Background(), m.chatID, text)
		return messageSentMsg{message: message, err: err}
	}
}

// View renders the history and the input prompt.
func (m ChatModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	if !m.loaded {
		b.WriteString("Loading messages...\n")
	}
	for _, message := range m.messages {
		line := fmt.Sprintf("[%s] %s", message.SentAt.Format("15:04"), message.Text)
		if message.SenderID == m.selfID {
			b.WriteString(ownMessageStyle.Render("you  "+line) + "\n")
		} else {
			b.WriteString(otherMessageStyle.Render("them "+line) + "\n")
		}
	}
	if m.errText != "" {
		b.WriteString(errorStyle.Render("error: "+m.errText) + "\n")
	}
	b.WriteString(promptStyle.Render("> ") + m.input)
	b.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render("enter to send, esc to quit"))
	return b.String()
}

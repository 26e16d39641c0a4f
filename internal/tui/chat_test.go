package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"abroadctl/internal/models"
)

func typeRunes(t *testing.T, m ChatModel, text string) ChatModel {
	t.Helper()
	for _, r := range text {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		next, _ := m.Update(msg)
		m = next.(ChatModel)
	}
	return m
}

func TestChatModelTyping(t *testing.T) {
	m := NewChatModel(nil, "c1", "me")
	m = typeRunes(t, m, "hello there")
	if m.input != "hello there" {
		t.Errorf("input = %q, want %q", m.input, "hello there")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(ChatModel)
	if m.input != "hello ther" {
		t.Errorf("input after backspace = %q, want %q", m.input, "hello ther")
	}
}

func TestChatModelLoadsMessages(t *testing.T) {
	m := NewChatModel(nil, "c1", "me")
	messages := []models.Message{
		{ID: "m1", SenderID: "me", Text: "hi", SentAt: time.Now()},
		{ID: "m2", SenderID: "them", Text: "hello", SentAt: time.Now()},
	}
	next, _ := m.Update(messagesLoadedMsg{messages: messages})
	m = next.(ChatModel)

	if !m.loaded {
		t.Error("loaded = false after messagesLoadedMsg")
	}
	view := m.View()
	if !strings.Contains(view, "hi") || !strings.Contains(view, "hello") {
		t.Errorf("View() missing messages: %q", view)
	}
}

func TestChatModelEmptyInputNotSent(t *testing.T) {
	m := NewChatModel(nil, "c1", "me")
	m = typeRunes(t, m, "   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter on blank input produced a send command")
	}
}

func TestChatModelAppendsSentMessage(t *testing.T) {
	m := NewChatModel(nil, "c1", "me")
	sent := &models.Message{ID: "m3", SenderID: "me", Text: "sent", SentAt: time.Now()}
	next, _ := m.Update(messageSentMsg{message: sent})
	m = next.(ChatModel)

	if len(m.messages) != 1 || m.messages[0].ID != "m3" {
		t.Errorf("messages = %v, want the sent message appended", m.messages)
	}
}

func TestChatModelQuits(t *testing.T) {
	m := NewChatModel(nil, "c1", "me")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ChatModel)
	if !m.quitting {
		t.Error("quitting = false after esc")
	}
	if cmd == nil {
		t.Error("esc produced no quit command")
	}
}

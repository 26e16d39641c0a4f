package api

import (
	"context"

	"abroadctl/internal/models"
)

// ChatService wraps the /api/chats endpoints.
type ChatService struct {
	client *Client
}

// NewChatService returns a ChatService issuing calls through c.
func NewChatService(c *Client) *ChatService { return &ChatService{client: c} }

// List fetches the current user's conversations.
func (s *ChatService) List(ctx context.Context) ([]models.Chat, error) {
	var chats []models.Chat
	if err := s.client.Get(ctx, "/api/chats", &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// Get fetches one conversation by ID.
func (s *ChatService) Get(ctx context.Context, id string) (*models.Chat, error) {
	var chat models.Chat
	if err := s.client.Get(ctx, "/api/chats/"+id, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// Create starts a conversation with the given participants.
func (s *ChatService) Create(ctx context.Context, participantIDs []string) (*models.Chat, error) {
	body := map[string][]string{"participants": participantIDs}
	var chat models.Chat
	if err := s.client.Post(ctx, "/api/chats", body, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// Messages fetches the message history of a conversation.
func (s *ChatService) Messages(ctx context.Context, chatID string) ([]models.Message, error) {
	var messages []models.Message
	if err := s.client.Get(ctx, "/api/chats/"+chatID+"/messages", &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// Send posts a message to a conversation.
func (s *ChatService) Send(ctx context.Context, chatID, text string) (*models.Message, error) {
	body := map[string]string{"text": text}
	var message models.Message
	if err := s.client.Post(ctx, "/api/chats/"+chatID+"/messages", body, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

package api

import (
	"context"
	"fmt"

	"go-devconnect-cli/internal/models"
)

// ChatMessages returns the full message history for an assignment.
// The chat view re-fetches this on a fixed poll interval.
func (c *Client) ChatMessages(ctx context.Context, assignmentID int) ([]models.ChatMessage, error) {
	var resp struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	path := fmt.Sprintf("/projects/assignments/%d/chat/", assignmentID)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

func (c *Client) SendMessage(ctx context.Context, assignmentID int, text string) (models.ChatMessage, error) {
	var msg models.ChatMessage
	body := map[string]string{"message": text}
	path := fmt.Sprintf("/projects/assignments/%d/send_message/", assignmentID)
	if err := c.post(ctx, path, body, &msg); err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

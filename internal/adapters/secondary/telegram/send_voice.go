package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// SendVoice отправляет голосовое сообщение из локального файла (multipart/form-data)
func (c *Client) SendVoice(ctx context.Context, chatID int64, voicePath string) error {
	file, err := os.Open(voicePath)
	if err != nil {
		return fmt.Errorf("failed to open voice file: %w", err)
	}
	defer file.Close()

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	if err := writer.WriteField("chat_id", fmt.Sprintf("%d", chatID)); err != nil {
		return fmt.Errorf("failed to write chat_id field: %w", err)
	}

	part, err := writer.CreateFormFile("voice", filepath.Base(voicePath))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy voice file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	url := c.baseURL + "/sendVoice"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &requestBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("failed to send voice to telegram",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send voice to telegram: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := c.decodeResponse("sendVoice", resp.StatusCode, body, nil); err != nil {
		return err
	}

	c.log.Debug("voice sent successfully", "chat_id", chatID)
	return nil
}

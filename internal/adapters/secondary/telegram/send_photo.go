package telegram

import "context"

// SendPhotoRequest запрос на отправку фото по внешнему URL
type SendPhotoRequest struct {
	ChatID  int64  `json:"chat_id"`
	Photo   string `json:"photo"` // URL - Telegram скачивает файл сам
	Caption string `json:"caption,omitempty"`
}

// SendPhotoURL отправляет фото по URL (результат генерации изображения)
func (c *Client) SendPhotoURL(ctx context.Context, chatID int64, photoURL string) error {
	req := SendPhotoRequest{
		ChatID: chatID,
		Photo:  photoURL,
	}

	if err := c.callMethod(ctx, "sendPhoto", req, nil); err != nil {
		return err
	}

	c.log.Debug("photo sent successfully", "chat_id", chatID)
	return nil
}

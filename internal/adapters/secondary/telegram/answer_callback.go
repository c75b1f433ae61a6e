package telegram

import "context"

// AnswerCallbackQueryRequest запрос на ответ callback query
type AnswerCallbackQueryRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
}

// AnswerCallbackQuery отправляет ответ на callback query (кнопки выбора языка)
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackQueryID string) error {
	req := AnswerCallbackQueryRequest{
		CallbackQueryID: callbackQueryID,
	}

	if err := c.callMethod(ctx, "answerCallbackQuery", req, nil); err != nil {
		return err
	}

	c.log.Debug("callback query answered successfully", "callback_id", callbackQueryID)
	return nil
}

package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// GetFileRequest запрос getFile
type GetFileRequest struct {
	FileID string `json:"file_id"`
}

// GetFileResult результат getFile
type GetFileResult struct {
	FileID       string  `json:"file_id"`
	FileUniqueID string  `json:"file_unique_id"`
	FileSize     *int64  `json:"file_size,omitempty"`
	FilePath     *string `json:"file_path,omitempty"`
}

// GetFileResponse ответ от Telegram API на getFile
type GetFileResponse struct {
	APIResponse
	Result GetFileResult `json:"result"`
}

// DownloadFile скачивает файл по file_id в локальный путь
// (голосовые сообщения для расшифровки)
func (c *Client) DownloadFile(ctx context.Context, fileID string, destPath string) error {
	var resp GetFileResponse
	if err := c.callMethod(ctx, "getFile", GetFileRequest{FileID: fileID}, &resp); err != nil {
		return err
	}

	if resp.Result.FilePath == nil || *resp.Result.FilePath == "" {
		return fmt.Errorf("getFile returned no file_path for file_id %s", fileID)
	}

	url := c.fileBaseURL + "/" + *resp.Result.FilePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("failed to download file from telegram",
			"error", err,
			"file_id", fileID,
		)
		return fmt.Errorf("failed to download file from telegram: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("file download failed with status %d", httpResp.StatusCode)
	}

	dest, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, httpResp.Body); err != nil {
		return fmt.Errorf("failed to write downloaded file: %w", err)
	}

	c.log.Debug("file downloaded successfully",
		"file_id", fileID,
		"dest", destPath,
	)
	return nil
}

package domain

// ChatMessage элемент промпта для chat completion: роль + текст реплики
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

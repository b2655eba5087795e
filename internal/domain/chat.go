package domain

// Chat message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single chat turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the request body for POST /api/chat
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse is the response for a successful chat turn
type ChatResponse struct {
	ChatHistory []Message `json:"chat_history"`
	Response    string    `json:"response"`
}

// ProductsResponse is the response for a successful catalog refresh
type ProductsResponse struct {
	Message       string `json:"message"`
	TotalProducts int    `json:"total_products"`
}

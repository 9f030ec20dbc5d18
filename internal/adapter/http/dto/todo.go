package dto

type TodoItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	Priority    string `json:"priority"`
	Order       int    `json:"order"`
}

type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Order       *int    `json:"order" binding:"omitempty,gte=0"`
}

type UpdateTodoRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

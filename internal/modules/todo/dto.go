package todo

type CreateTodoRequest struct {
	Text     string `json:"text" binding:"required"`
	Priority string `json:"priority"`
}

type UpdateTodoRequest struct {
	Text     string `json:"text" binding:"required"`
	Priority string `json:"priority"`
}

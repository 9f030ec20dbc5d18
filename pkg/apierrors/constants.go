package apierrors

const (
	MsgInvalidTodoID      = "invalidTodoID"
	MsgInvalidTodoPayload = "invalidTodoPayload"
	MsgTodoNotFound       = "todoNotFound"
	MsgFailListTodos      = "failListTodos"
	MsgFailCreateTodo     = "failCreateTodo"
	MsgFailUpdateTodo     = "failUpdateTodo"
	MsgFailToggleTodo     = "failToggleTodo"
	MsgFailDeleteTodo     = "failDeleteTodo"
)

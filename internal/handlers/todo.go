package handlers

import (
	"context"
	"net/http"

	dom "taskbill/internal/domain"
	"taskbill/internal/dto"
	"taskbill/internal/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TodoService is what TodoHandler needs from the use-case layer.
type TodoService interface {
	List(ctx context.Context) ([]dom.Todo, error)
	Get(ctx context.Context, id uuid.UUID) (dom.Todo, bool, error)
	Create(ctx context.Context, title, description string) (dom.Todo, error)
	Update(ctx context.Context, id uuid.UUID, title, description string, completed bool) (dom.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TodoHandler holds no per-request state and is shared by all requests.
type TodoHandler struct {
	svc TodoService
	log *logger.Logger
}

func NewTodoHandler(svc TodoService, log *logger.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: log.With("handler", "todo")}
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	t, err := h.svc.Create(c.Request.Context(), req.Title, *req.Description)
	if err != nil {
		writeError(c, h.log, err, "todo not found", "failed to create todo")
		return
	}

	c.JSON(http.StatusCreated, todoToResponse(t))
}

// List godoc
// @Summary      List all todos
// @Tags         todos
// @Produce      json
// @Success      200  {array}   dto.TodoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, "todo not found", "failed to fetch todos")
		return
	}
	c.JSON(http.StatusOK, todosToResponses(list))
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID (UUID)"
// @Success      200  {object}  dto.TodoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, found, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err, "todo not found", "failed to fetch todo")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "todo not found"})
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Update godoc
// @Summary      Replace a todo
// @Description  Full replace: title, description and completed are all required.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Todo ID (UUID)"
// @Param        body  body      dto.UpdateTodoRequest  true  "New field values"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, req.Title, *req.Description, *req.Completed)
	if err != nil {
		writeError(c, h.log, err, "todo not found", "failed to update todo")
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Param        id   path  string  true  "Todo ID (UUID)"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err, "todo not found", "failed to delete todo")
		return
	}
	c.Status(http.StatusNoContent)
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}

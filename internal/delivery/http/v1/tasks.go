package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-todo-local/internal/models"
	"github.com/adanyl0v/go-todo-local/internal/tasks"
)

type taskRequest struct {
	Topic       *string `json:"topic"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

func (r taskRequest) payload() models.TaskPayload {
	return models.TaskPayload{
		Topic:       r.Topic,
		Priority:    r.Priority,
		Status:      r.Status,
		Description: r.Description,
	}
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.Create(c, req.payload())
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		abort(c, serviceError(err))
		return
	}

	c.JSON(http.StatusCreated, tasks.NewView(*task))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	list := h.tasks.List(c)
	h.logger.Debug().
		Int("count", len(list)).
		Msg("listed tasks")

	c.JSON(http.StatusOK, tasks.Views(list))
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(c, taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to get task")
		abort(c, serviceError(err))
		return
	}

	c.JSON(http.StatusOK, tasks.NewView(*task))
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}

	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.Update(c, taskID, req.payload())
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to update task")
		abort(c, serviceError(err))
		return
	}

	c.JSON(http.StatusOK, tasks.NewView(*task))
}

func (h *handlerImpl) HandleToggleTask(c *gin.Context) {
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.ToggleComplete(c, taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to toggle task")
		abort(c, serviceError(err))
		return
	}

	c.JSON(http.StatusOK, tasks.NewView(*task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID, ok := h.taskID(c)
	if !ok {
		return
	}

	err := h.tasks.Delete(c, taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("task_id", taskID).
			Msg("failed to delete task")
		abort(c, serviceError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) taskID(c *gin.Context) (string, bool) {
	taskID := c.Param("id")
	if taskID == "" {
		h.logger.Error().Msg("no task id provided")
		abort(c, newBadRequestError(errMissingTaskID.Error()))
		return "", false
	}
	return taskID, true
}

package in

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrack/internal/modules/registry/dto"
	registryin "studytrack/internal/modules/registry/port/in"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/webctx"
)

type HTTPHandler struct {
	usecase registryin.Usecase
}

func NewHTTPHandler(usecase registryin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(api *gin.RouterGroup) {
	api.GET("/tasks/today", h.handleTasksToday)
	api.POST("/tasks/add", h.handleAddTask)
}

func (h HTTPHandler) handleTasksToday(c *gin.Context) {
	ownerID, ok := webctx.Owner(c)
	if !ok {
		webctx.Fail(c, apperrors.ErrUnauthorized)
		return
	}
	tasks, err := h.usecase.ListToday(c.Request.Context(), ownerID)
	if err != nil {
		webctx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h HTTPHandler) handleAddTask(c *gin.Context) {
	ownerID, ok := webctx.Owner(c)
	if !ok {
		webctx.Fail(c, apperrors.ErrUnauthorized)
		return
	}
	var req struct {
		TaskName     string `json:"task_name"`
		Subject      string `json:"subject"`
		EstimatedMin int    `json:"estimated_minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		webctx.Fail(c, apperrors.ErrInvalidInput)
		return
	}
	task, err := h.usecase.AddTask(c.Request.Context(), dto.AddTaskInput{
		OwnerID:      ownerID,
		Name:         req.TaskName,
		Subject:      req.Subject,
		EstimatedMin: req.EstimatedMin,
	})
	if err != nil {
		webctx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": task.ID})
}

package in

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sessiondto "studytrack/internal/modules/session/dto"
	sessionin "studytrack/internal/modules/session/port/in"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/webctx"
)

type HTTPHandler struct {
	usecase sessionin.Usecase
}

func NewHTTPHandler(usecase sessionin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(api *gin.RouterGroup) {
	api.POST("/timeline/session/start", h.handleStart)
	api.POST("/timeline/session/stop", h.handleStop)
	api.POST("/tasks/:id/complete", h.handleComplete)
}

func (h HTTPHandler) handleStart(c *gin.Context) {
	ownerID, ok := webctx.Owner(c)
	if !ok {
		webctx.Fail(c, apperrors.ErrUnauthorized)
		return
	}
	var req struct {
		TaskID string `json:"task_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		webctx.Fail(c, apperrors.ErrInvalidInput)
		return
	}
	out, err := h.usecase.Start(c.Request.Context(), sessiondto.StartInput{OwnerID: ownerID, TaskID: req.TaskID})
	if err != nil {
		webctx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id":             out.SessionID,
		"previous_session_ended": out.PreviousSessionEnded,
	})
}

func (h HTTPHandler) handleStop(c *gin.Context) {
	ownerID, ok := webctx.Owner(c)
	if !ok {
		webctx.Fail(c, apperrors.ErrUnauthorized)
		return
	}
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		webctx.Fail(c, apperrors.ErrInvalidInput)
		return
	}
	out, err := h.usecase.Stop(c.Request.Context(), sessiondto.StopInput{OwnerID: ownerID, SessionID: req.SessionID})
	if err != nil {
		webctx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "duration": out.DurationMin})
}

func (h HTTPHandler) handleComplete(c *gin.Context) {
	ownerID, ok := webctx.Owner(c)
	if !ok {
		webctx.Fail(c, apperrors.ErrUnauthorized)
		return
	}
	err := h.usecase.Complete(c.Request.Context(), sessiondto.CompleteInput{OwnerID: ownerID, TaskID: c.Param("id")})
	if err != nil {
		webctx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

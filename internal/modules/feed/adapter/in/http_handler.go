package in

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feedin "studytrack/internal/modules/feed/port/in"
	"studytrack/internal/platform/webctx"
)

type HTTPHandler struct {
	usecase feedin.Usecase
}

func NewHTTPHandler(usecase feedin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(api *gin.RouterGroup) {
	api.GET("/feed/active", h.handleActive)
}

func (h HTTPHandler) handleActive(c *gin.Context) {
	roster, err := h.usecase.Active(c.Request.Context())
	if err != nil {
		webctx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

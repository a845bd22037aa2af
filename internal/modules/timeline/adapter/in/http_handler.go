package in

import (
	"net/http"

	"github.com/gin-gonic/gin"

	timelinein "studytrack/internal/modules/timeline/port/in"
	"studytrack/internal/platform/webctx"
)

type HTTPHandler struct {
	usecase timelinein.Usecase
}

func NewHTTPHandler(usecase timelinein.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(api *gin.RouterGroup) {
	// Any authenticated user may view any owner's timeline, matching the
	// friend-timeline buttons in the dashboard.
	api.GET("/timeline/:userId/date/:date", h.handleDay)
}

func (h HTTPHandler) handleDay(c *gin.Context) {
	day, err := h.usecase.GetDay(c.Request.Context(), c.Param("userId"), c.Param("date"))
	if err != nil {
		webctx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

package in

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studytrack/internal/modules/account/dto"
	accountin "studytrack/internal/modules/account/port/in"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/webctx"
)

type HTTPHandler struct {
	usecase accountin.Usecase
}

func NewHTTPHandler(usecase accountin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

// RegisterPublic mounts the endpoints reachable without a token.
func (h HTTPHandler) RegisterPublic(api *gin.RouterGroup) {
	api.POST("/register", h.handleRegister)
	api.POST("/login", h.handleLogin)
}

func (h HTTPHandler) Register(api *gin.RouterGroup) {
	api.POST("/logout", h.handleLogout)
	api.GET("/current-user", h.handleCurrentUser)
	api.GET("/users", h.handleListUsers)
}

// Middleware resolves the bearer token and stores the owner identity for
// downstream handlers.
func (h HTTPHandler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.usecase.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		webctx.SetOwner(c, user.ID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}

func (h HTTPHandler) handleRegister(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		webctx.Fail(c, apperrors.ErrInvalidInput)
		return
	}
	out, err := h.usecase.Register(c.Request.Context(), dto.RegisterInput{Username: req.Username, Password: req.Password, Name: req.Name})
	if err != nil {
		webctx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "userId": out.UserID, "token": out.Token})
}

func (h HTTPHandler) handleLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		webctx.Fail(c, apperrors.ErrInvalidInput)
		return
	}
	out, err := h.usecase.Login(c.Request.Context(), dto.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		webctx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "userId": out.UserID, "token": out.Token})
}

func (h HTTPHandler) handleLogout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		webctx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h HTTPHandler) handleCurrentUser(c *gin.Context) {
	user, err := h.usecase.Authenticate(c.Request.Context(), bearerToken(c))
	if err != nil {
		webctx.Fail(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h HTTPHandler) handleListUsers(c *gin.Context) {
	users, err := h.usecase.ListUsers(c.Request.Context())
	if err != nil {
		webctx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jefferson5286/taskmanage/internal/model"
	"github.com/jefferson5286/taskmanage/internal/service"
)

// Handler serves the register and login routes
type Handler struct {
	auth *service.Auth
}

func NewHandler(auth *service.Auth) *Handler {
	return &Handler{auth: auth}
}

// Register handles user registration
func (h *Handler) Register(c *gin.Context) {
	var req model.UserCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	creds, err := h.auth.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			c.JSON(http.StatusConflict, gin.H{"detail": "User with the same username provided, has already been registered!"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		Details:   "Successfully registered user!",
		Reference: creds.Reference,
		Token:     creds.Token,
	})
}

// Login handles user authentication and token rotation
func (h *Handler) Login(c *gin.Context) {
	var req model.UserCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	creds, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found!"})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "The password is not valid. Unauthorized access!"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		Details:   "Authentication performed successfully! A new access token was generated.",
		Reference: creds.Reference,
		Token:     creds.Token,
	})
}

func internalError(c *gin.Context, err error) {
	zap.L().Error("Unhandled server error",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Server Error detail: %v", err)})
}

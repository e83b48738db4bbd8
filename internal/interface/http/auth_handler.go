package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shashankrushiya/bookstore-api/internal/application"
	"github.com/shashankrushiya/bookstore-api/internal/domain/entity"
	"github.com/shashankrushiya/bookstore-api/pkg/response"
	"github.com/shashankrushiya/bookstore-api/pkg/validation"
)

// AuthService is the slice of the application layer the handler needs.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error)
}

type AuthHandler struct {
	Svc    AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, validation.Describe(err))
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Detail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("email", req.Email).Error("signup failed")
		}
		response.Detail(c, http.StatusInternalServerError, "internal error")
		return
	}

	if h.Logger != nil {
		h.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user created")
	}
	response.Message(c, http.StatusOK, "User created successfully")
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, validation.Describe(err))
		return
	}

	token, _, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Detail(c, http.StatusBadRequest, "Incorrect email or password")
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.Detail(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

package handler

import (
	"net/http"

	"github.com/crowsnest/user-directory/internal/cqrs"
	"github.com/crowsnest/user-directory/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthQuerier defines the credential check used by AuthHandler.
type AuthQuerier interface {
	Login(cqrs.LoginCommand) (int64, error)
}

// AuthHandler handles login. No command service needed.
type AuthHandler struct {
	queries AuthQuerier
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func NewAuthHandler(queries AuthQuerier) *AuthHandler {
	return &AuthHandler{queries: queries}
}

// Login responds with a uniform failure payload whether the email is unknown
// or the password is wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	userID, err := h.queries.Login(cqrs.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"user_id": userID,
	})
}

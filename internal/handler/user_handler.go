package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/crowsnest/user-directory/internal/cqrs"
	"github.com/crowsnest/user-directory/internal/middleware"
	"github.com/crowsnest/user-directory/internal/models"
	"github.com/gin-gonic/gin"
)

// UserCommander defines the write-side operations used by UserHandler.
type UserCommander interface {
	CreateUser(cqrs.CreateUserCommand) (*models.User, error)
	UpdateUser(cqrs.UpdateUserCommand) error
	DeleteUser(cqrs.DeleteUserCommand) error
}

// UserQuerier defines the read-side operations used by UserHandler.
type UserQuerier interface {
	GetUser(cqrs.GetUserQuery) (*models.UserView, error)
	ListUsers(cqrs.ListUsersQuery) ([]models.UserView, error)
	SearchUsers(cqrs.SearchUsersQuery) ([]models.UserView, error)
}

// UserHandler routes requests to the command or query service as appropriate.
type UserHandler struct {
	commands UserCommander
	queries  UserQuerier
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

func NewUserHandler(commands UserCommander, queries UserQuerier) *UserHandler {
	return &UserHandler{commands: commands, queries: queries}
}

func (h *UserHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "User Management System"})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	views, err := h.queries.ListUsers(cqrs.ListUsersQuery{})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetUser(cqrs.GetUserQuery{UserID: userID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, err := h.commands.CreateUser(cqrs.CreateUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if err.Error() == "user already exists" {
			middleware.RespondWithError(c, http.StatusBadRequest, "User already exists or invalid data")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"id":      user.ID,
	})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	err := h.commands.UpdateUser(cqrs.UpdateUserCommand{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
	})
	if err != nil {
		if err.Error() == "user already exists" {
			middleware.RespondWithError(c, http.StatusBadRequest, "User already exists or invalid data")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	// Succeeds even when no row matched the id; see the command service.
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.commands.DeleteUser(cqrs.DeleteUserCommand{UserID: userID}); err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %d deleted", userID)})
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		middleware.RespondWithError(c, http.StatusBadRequest, "Please provide a name to search")
		return
	}

	views, err := h.queries.SearchUsers(cqrs.SearchUsersQuery{Name: name})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to search users")
		return
	}

	c.JSON(http.StatusOK, views)
}

// parseUserID reads the :id path segment. Non-numeric or negative segments are
// rejected with 404 before any operation runs, matching a typed route
// converter. On failure the response is already written.
func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		middleware.RespondWithError(c, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}

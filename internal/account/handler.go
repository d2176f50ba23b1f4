package account

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"PvtCall/internal/utils"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// POST /api/auth/signup  body: {username, password}
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password must be at least 8 characters."})
		return
	}
	err := h.svc.Signup(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, ErrDuplicate) {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists."})
		return
	}
	if err != nil {
		utils.Log.Error("signup failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully."})
}

// POST /api/auth/login  body: {username, password}
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password must be at least 8 characters."})
		return
	}
	token, u, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
		return
	}
	if err != nil {
		utils.Log.Error("login failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"token":   token,
		"user": gin.H{
			"id":       u.ID,
			"username": u.DisplayUsername,
		},
	})
}

// DELETE /api/auth/account  body: {username, password}
func (h *Handler) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials."})
		return
	}
	err := h.svc.Delete(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}
	if err != nil {
		utils.Log.Error("account delete failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully."})
}

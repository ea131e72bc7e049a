package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sudhev0011/VoterMngmtServer/auth"
	"github.com/sudhev0011/VoterMngmtServer/middleware"
	"github.com/sudhev0011/VoterMngmtServer/models"
	"github.com/sudhev0011/VoterMngmtServer/store"
)

type AuthController struct {
	users  *store.UserStore
	tokens *auth.TokenService
	google auth.IdentityVerifier
}

func NewAuthController(users *store.UserStore, tokens *auth.TokenService, google auth.IdentityVerifier) *AuthController {
	return &AuthController{users: users, tokens: tokens, google: google}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input struct {
		Username        string `json:"username"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// Trimming is for validation only; the stored username and hashed
	// password keep the raw input so login accepts the same pair verbatim.
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No valid username or password found"})
		return
	}
	if strings.TrimSpace(input.Password) != strings.TrimSpace(input.ConfirmPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The passwords do not match"})
		return
	}

	if _, err := ctl.users.Register(input.Username, input.Password); err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists, please try login"})
			return
		}
		slog.Error("register failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := ctl.users.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		slog.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	ctl.issueSession(c, user)
}

// GoogleLogin exchanges a verified Google ID token for a regular session.
// The first login with a new email creates the local user.
func (ctl *AuthController) GoogleLogin(c *gin.Context) {
	var input struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No token provided"})
		return
	}

	if ctl.google == nil {
		slog.Error("google login attempted without a configured client id")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Google login is not configured"})
		return
	}

	email, err := ctl.google.Verify(input.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid token"})
		return
	}

	user, err := ctl.users.FindOrCreateByUsername(email)
	if err != nil {
		slog.Error("federated login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	ctl.issueSession(c, user)
}

func (ctl *AuthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"role":            c.MustGet(middleware.ContextRole),
		"userId":          c.MustGet(middleware.ContextUserID),
		"isAuthenticated": true,
	})
}

func (ctl *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ctl *AuthController) issueSession(c *gin.Context, user *models.User) {
	token, err := ctl.tokens.Generate(user.ID, user.Role)
	if err != nil {
		slog.Error("token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, int(ctl.tokens.TTL().Seconds()), "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"role": user.Role, "userId": user.ID, "isAuthenticated": true})
}

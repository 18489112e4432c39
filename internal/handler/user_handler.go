package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"yatube/backend/internal/auth"
	"yatube/backend/internal/models"
	"yatube/backend/internal/store"
	"yatube/backend/pkg/jwt"
)

// region --- DTOs ---

// SignupInput defines the structure for user registration.
type SignupInput struct {
	Username string `json:"username" form:"username" binding:"required,max=150" example:"leo"`
	Email    string `json:"email" form:"email" binding:"required,email" example:"leo@example.com"`
	Password string `json:"password" form:"password" binding:"required,min=8" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Login    string `json:"login" form:"login" binding:"required" example:"leo"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
	Next     string `json:"next" form:"next"`
}

// TokenResponse carries a freshly issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginFormView is the login page.
type LoginFormView struct {
	Next string `json:"next,omitempty"`
}

// endregion

// region --- Auth Handlers ---

// Signup godoc
// @Summary      Register a new user
// @Description  Creates a new user, signs them in and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body SignupInput true "Registration Info"
// @Success      201  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/signup/ [post]
func (h *Handler) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hashedPassword),
		Role:         models.RoleUser,
	}
	if err := h.store.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
			return
		}
		h.fail(c, err, "User")
		return
	}

	token, ok := h.issueToken(c, user.ID)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// LoginForm godoc
// @Summary      Login page
// @Description  Echoes the page the visitor will be sent back to after signing in.
// @Tags         auth
// @Produce      json
// @Param        next  query     string  false  "Where to go after login"
// @Success      200   {object}  LoginFormView
// @Router       /auth/login/ [get]
func (h *Handler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, LoginFormView{Next: c.Query("next")})
}

// Login godoc
// @Summary      Log in a user
// @Description  Authenticates a user with username/email and password and sets the token cookie.
// @Description  With a local "next" path the user is redirected there, otherwise the token is returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  TokenResponse
// @Success      302  "Redirect to next"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Router       /auth/login/ [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.UserByLogin(c.Request.Context(), input.Login)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.fail(c, err, "User")
		return
	}
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, ok := h.issueToken(c, user.ID)
	if !ok {
		return
	}
	next := input.Next
	if next == "" {
		next = c.Query("next")
	}
	if isLocalPath(next) {
		c.Redirect(http.StatusFound, next)
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the token cookie and redirects to the home page.
// @Tags         auth
// @Success      302  "Redirect to the home page"
// @Router       /auth/logout/ [post]
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(auth.TokenCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// endregion

// region --- Helpers ---

func (h *Handler) issueToken(c *gin.Context, userID uint) (string, bool) {
	token, err := jwt.GenerateToken(userID, h.cfg.JWTSecret, h.cfg.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return "", false
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.TokenCookie, token, int(h.cfg.TokenTTL.Seconds()), "/", "", false, true)
	return token, true
}

// isLocalPath accepts only same-site absolute paths as redirect targets.
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.Contains(p, `\`)
}

// endregion

package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"siddhi-hotel-backend/models"
	"siddhi-hotel-backend/services"
	"siddhi-hotel-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type registerPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	Users    *services.UserService
	Secret   string
	TokenTTL time.Duration
}

func NewAuthController(users *services.UserService, secret string) *AuthController {
	return &AuthController{Users: users, Secret: secret, TokenTTL: 24 * time.Hour}
}

func userView(u *models.User) gin.H {
	return gin.H{
		"id":          u.ID,
		"name":        u.Name,
		"email":       u.Email,
		"phoneNumber": u.PhoneNumber,
		"role":        u.Role,
	}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(strings.ToLower(payload.Email))
	if payload.Name == "" || payload.Email == "" || payload.PhoneNumber == "" || payload.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	role := models.RoleUser
	if payload.Role == models.RoleAdmin {
		role = models.RoleAdmin
	}

	user := &models.User{
		Name:        payload.Name,
		Email:       payload.Email,
		PhoneNumber: payload.PhoneNumber,
		Password:    string(hash),
		Role:        role,
	}
	if err := ctrl.Users.Create(user); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.RespondError(c, http.StatusBadRequest, "User already exists with this email")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	ctrl.respondWithToken(c, user, "User registered successfully")
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	payload.Email = strings.TrimSpace(strings.ToLower(payload.Email))
	if payload.Email == "" || payload.Password == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := ctrl.Users.FindByEmail(payload.Email)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	ctrl.respondWithToken(c, user, "Login successful")
}

func (ctrl *AuthController) respondWithToken(c *gin.Context, user *models.User, message string) {
	token, err := utils.NewAccessToken(ctrl.Secret, user.ID, user.Role, ctrl.TokenTTL)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	utils.Respond(c, http.StatusOK, message, gin.H{
		"token":          token.Token,
		"role":           user.Role,
		"expirationTime": "24 Hours",
		"user":           userView(user),
	})
}

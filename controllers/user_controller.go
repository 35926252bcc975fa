package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"siddhi-hotel-backend/middleware"
	"siddhi-hotel-backend/services"
	"siddhi-hotel-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	Users    *services.UserService
	Bookings *services.BookingService
}

func NewUserController(users *services.UserService, bookings *services.BookingService) *UserController {
	return &UserController{Users: users, Bookings: bookings}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

func (ctrl *UserController) GetAll(c *gin.Context) {
	users, err := ctrl.Users.GetAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	utils.Respond(c, http.StatusOK, "Users retrieved successfully", gin.H{"userList": users})
}

func (ctrl *UserController) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	utils.Respond(c, http.StatusOK, "Profile retrieved successfully", gin.H{"user": userView(user)})
}

func (ctrl *UserController) GetByID(c *gin.Context) {
	id, ok := paramUint(c, "userId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	user, err := ctrl.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}
	utils.Respond(c, http.StatusOK, "User retrieved successfully", gin.H{"user": userView(user)})
}

func (ctrl *UserController) GetUserBookings(c *gin.Context) {
	id, ok := paramUint(c, "userId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	if _, err := ctrl.Users.GetByID(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}
	bookings, err := ctrl.Bookings.ListByUser(id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve user bookings")
		return
	}
	utils.Respond(c, http.StatusOK, "User bookings retrieved successfully", gin.H{"bookingList": bookings})
}

type updateProfilePayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	id, ok := paramUint(c, "userId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	requester, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	if requester.ID != id && !requester.IsAdmin() {
		utils.RespondError(c, http.StatusForbidden, "You can only update your own profile")
		return
	}

	var payload updateProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := ctrl.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}

	if payload.Name != "" {
		user.Name = payload.Name
	}
	if payload.PhoneNumber != "" {
		user.PhoneNumber = payload.PhoneNumber
	}
	if email := strings.TrimSpace(strings.ToLower(payload.Email)); email != "" && email != user.Email {
		if _, err := ctrl.Users.FindByEmail(email); err == nil {
			utils.RespondError(c, http.StatusBadRequest, "Email already in use")
			return
		} else if !errors.Is(err, services.ErrUserNotFound) {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to update profile")
			return
		}
		user.Email = email
	}
	if payload.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = string(hash)
	}

	if err := ctrl.Users.Update(user); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	utils.Respond(c, http.StatusOK, "User profile updated successfully", gin.H{"user": userView(user)})
}

func (ctrl *UserController) Delete(c *gin.Context) {
	id, ok := paramUint(c, "userId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := ctrl.Users.Delete(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	utils.Respond(c, http.StatusOK, "User deleted successfully", nil)
}

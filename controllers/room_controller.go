package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"siddhi-hotel-backend/models"
	"siddhi-hotel-backend/services"
	"siddhi-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms        *services.RoomService
	Availability *services.AvailabilityService
}

func NewRoomController(rooms *services.RoomService, availability *services.AvailabilityService) *RoomController {
	return &RoomController{Rooms: rooms, Availability: availability}
}

// parseDate accepts "2006-01-02" or RFC3339 (best-effort, frontend sends both).
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// savePhoto stores an uploaded room photo under uploads/rooms and returns
// the public URL path.
func (ctrl *RoomController) savePhoto(c *gin.Context) (string, error) {
	file, err := c.FormFile("photo")
	if err != nil {
		return "", nil // photo is optional
	}
	dir := filepath.Join("uploads", "rooms")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("save photo: %w", err)
	}
	return "/uploads/rooms/" + filename, nil
}

// removePhoto deletes a previously stored photo file (best-effort).
func removePhoto(photoURL string) {
	if !strings.HasPrefix(photoURL, "/uploads/") {
		return
	}
	path := strings.TrimPrefix(photoURL, "/")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to delete photo %s: %v", path, err)
	}
}

func (ctrl *RoomController) Add(c *gin.Context) {
	roomType := strings.TrimSpace(c.PostForm("roomType"))
	priceStr := strings.TrimSpace(c.PostForm("roomPrice"))
	description := strings.TrimSpace(c.PostForm("roomDescription"))
	if roomType == "" || priceStr == "" || description == "" {
		utils.RespondError(c, http.StatusBadRequest, "Room type, price, and description are required")
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Room price must be a positive number")
		return
	}

	photoURL, err := ctrl.savePhoto(c)
	if err != nil {
		log.Printf("Add room photo error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to store room photo")
		return
	}

	room := &models.Room{
		RoomType:        roomType,
		RoomPrice:       price,
		RoomDescription: description,
		RoomPhotoURL:    photoURL,
	}
	if err := ctrl.Rooms.Create(room); err != nil {
		log.Printf("Add room error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to add room")
		return
	}
	utils.Respond(c, http.StatusOK, "Room added successfully", gin.H{"room": room})
}

func (ctrl *RoomController) GetAll(c *gin.Context) {
	rooms, err := ctrl.Rooms.GetAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve rooms")
		return
	}
	utils.Respond(c, http.StatusOK, "Rooms retrieved successfully", gin.H{"roomList": rooms})
}

func (ctrl *RoomController) AvailableByDateAndType(c *gin.Context) {
	checkInStr := c.Query("checkInDate")
	checkOutStr := c.Query("checkOutDate")
	if checkInStr == "" || checkOutStr == "" {
		utils.RespondError(c, http.StatusBadRequest, "Check-in and check-out dates are required")
		return
	}
	checkIn, err := parseDate(checkInStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid checkInDate format")
		return
	}
	checkOut, err := parseDate(checkOutStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid checkOutDate format")
		return
	}

	rooms, err := ctrl.Rooms.AvailableRooms(checkIn, checkOut, c.Query("roomType"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidRange) {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve available rooms")
		return
	}
	utils.Respond(c, http.StatusOK, "Available rooms retrieved successfully", gin.H{"roomList": rooms})
}

func (ctrl *RoomController) Types(c *gin.Context) {
	types, err := ctrl.Rooms.RoomTypes()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve room types")
		return
	}
	utils.Respond(c, http.StatusOK, "Room types retrieved successfully", gin.H{"roomTypes": types})
}

func (ctrl *RoomController) GetByID(c *gin.Context) {
	id, ok := paramUint(c, "roomId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room id")
		return
	}
	room, err := ctrl.Rooms.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve room")
		return
	}
	utils.Respond(c, http.StatusOK, "Room retrieved successfully", gin.H{"room": room})
}

func (ctrl *RoomController) Update(c *gin.Context) {
	id, ok := paramUint(c, "roomId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room id")
		return
	}
	room, err := ctrl.Rooms.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve room")
		return
	}

	if v := strings.TrimSpace(c.PostForm("roomType")); v != "" {
		room.RoomType = v
	}
	if v := strings.TrimSpace(c.PostForm("roomPrice")); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "Room price must be a positive number")
			return
		}
		room.RoomPrice = price
	}
	if v := strings.TrimSpace(c.PostForm("roomDescription")); v != "" {
		room.RoomDescription = v
	}

	if photoURL, err := ctrl.savePhoto(c); err != nil {
		log.Printf("Update room photo error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to store room photo")
		return
	} else if photoURL != "" {
		removePhoto(room.RoomPhotoURL)
		room.RoomPhotoURL = photoURL
	}

	if err := ctrl.Rooms.Update(room); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update room")
		return
	}
	utils.Respond(c, http.StatusOK, "Room updated successfully", gin.H{"room": room})
}

func (ctrl *RoomController) Delete(c *gin.Context) {
	id, ok := paramUint(c, "roomId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room id")
		return
	}
	room, err := ctrl.Rooms.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve room")
		return
	}

	if err := ctrl.Rooms.Delete(id); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete room")
		return
	}
	removePhoto(room.RoomPhotoURL)
	utils.Respond(c, http.StatusOK, "Room deleted successfully", nil)
}

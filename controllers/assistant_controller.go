package controllers

import (
	"log"
	"net/http"
	"strings"

	"siddhi-hotel-backend/middleware"
	"siddhi-hotel-backend/models"
	"siddhi-hotel-backend/services"
	"siddhi-hotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	Assistant *services.AssistantService
}

func NewAssistantController(assistant *services.AssistantService) *AssistantController {
	return &AssistantController{Assistant: assistant}
}

type chatPayload struct {
	Message string `json:"message"`
}

func (ctrl *AssistantController) Chat(c *gin.Context) {
	var payload chatPayload
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	user, _ := middleware.CurrentUser(c) // nil for anonymous guests

	reply, source, err := ctrl.Assistant.Reply(payload.Message, user)
	if err != nil {
		log.Printf("Assistant error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to get response from assistant")
		return
	}
	utils.Respond(c, http.StatusOK, "Response generated successfully", gin.H{
		"botReply":       reply,
		"userMessage":    payload.Message,
		"hasUserContext": user != nil,
		"source":         source,
	})
}

func (ctrl *AssistantController) GetConfig(c *gin.Context) {
	cfg, err := ctrl.Assistant.Config()
	if err != nil {
		log.Printf("Get assistant config error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve assistant config")
		return
	}
	utils.Respond(c, http.StatusOK, "Assistant config retrieved successfully", gin.H{"config": cfg})
}

type assistantConfigPayload struct {
	HotelName    string                  `json:"hotelName"`
	ContactEmail string                  `json:"contactEmail"`
	NearbyPlaces models.NearbyPlaces     `json:"nearbyPlaces"`
	RoomGuide    []models.RoomGuideEntry `json:"roomGuide"`
}

func (ctrl *AssistantController) UpdateConfig(c *gin.Context) {
	var payload assistantConfigPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(payload.HotelName) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Hotel name is required")
		return
	}

	cfg, err := ctrl.Assistant.UpdateConfig(payload.HotelName, payload.ContactEmail, payload.NearbyPlaces, payload.RoomGuide)
	if err != nil {
		log.Printf("Update assistant config error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update assistant config")
		return
	}
	utils.Respond(c, http.StatusOK, "Assistant config updated successfully", gin.H{"config": cfg})
}

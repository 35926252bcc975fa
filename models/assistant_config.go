package models

import (
	"time"

	"gorm.io/datatypes"
)

// AssistantConfig stores the chat assistant's knowledge base as data so the
// nearby-places list and room guide can be swapped without a code change.
// A single row is seeded on first boot and edited through the admin API.
type AssistantConfig struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	HotelName    string         `gorm:"size:255" json:"hotelName"`
	ContactEmail string         `gorm:"size:255" json:"contactEmail"`
	NearbyPlaces datatypes.JSON `gorm:"column:nearby_places" json:"nearbyPlaces"`
	RoomGuide    datatypes.JSON `gorm:"column:room_guide" json:"roomGuide"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// NearbyPlaces is the decoded form of AssistantConfig.NearbyPlaces.
type NearbyPlaces struct {
	Attractions []string `json:"attractions"`
	Dining      []string `json:"dining"`
	Shopping    []string `json:"shopping"`
}

// RoomGuideEntry is one item of the decoded AssistantConfig.RoomGuide.
type RoomGuideEntry struct {
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"siddhi-hotel-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssistantService answers guest questions from a prioritized rule table.
// Rules are evaluated in order and the first rule with a matching keyword
// wins; everything a rule says is rendered from the persisted knowledge base
// plus live account data, never from constants baked into the code.
type AssistantService struct {
	DB  *gorm.DB
	Now func() time.Time

	rules []assistantRule
}

type assistantRule struct {
	keywords []string
	respond  func(s *AssistantService, user *models.User) (string, error)
}

const assistantFallback = "I apologize for the technical difficulty. Please try asking about our rooms, prices, nearby attractions, bookings or payments — or reach out to our team directly."

func NewAssistantService(db *gorm.DB) *AssistantService {
	s := &AssistantService{
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}
	// first-match-wins: account-specific rules sit above the generic ones so
	// "my booking" never falls through to the how-to-book reply and
	// "balance" is answered before the generic payment rule
	s.rules = []assistantRule{
		{keywords: []string{"my booking", "my reservation", "confirmation"}, respond: (*AssistantService).replyUserBookings},
		{keywords: []string{"balance"}, respond: (*AssistantService).replyWalletBalance},
		{keywords: []string{"hotel", "room", "list"}, respond: (*AssistantService).replyRoomList},
		{keywords: []string{"price", "cost", "fare"}, respond: (*AssistantService).replyPricing},
		{keywords: []string{"attraction", "place", "visit"}, respond: (*AssistantService).replyNearby},
		{keywords: []string{"book", "reserve"}, respond: (*AssistantService).replyBookingHelp},
		{keywords: []string{"payment", "wallet", "pay"}, respond: (*AssistantService).replyPayments},
	}
	return s
}

// Reply answers a chat message. The returned source is "rules" when a rule
// matched and "fallback" otherwise. user may be nil for anonymous callers.
func (s *AssistantService) Reply(message string, user *models.User) (reply string, source string, err error) {
	lower := strings.ToLower(message)
	for _, rule := range s.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				reply, err = rule.respond(s, user)
				if err != nil {
					return "", "", err
				}
				return reply, "rules", nil
			}
		}
	}
	return assistantFallback, "fallback", nil
}

// Config returns the single knowledge-base row.
func (s *AssistantService) Config() (*models.AssistantConfig, error) {
	var cfg models.AssistantConfig
	if err := s.DB.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("assistant knowledge base not seeded")
		}
		return nil, fmt.Errorf("failed to load assistant config: %w", err)
	}
	return &cfg, nil
}

// UpdateConfig replaces the knowledge base contents.
func (s *AssistantService) UpdateConfig(hotelName, contactEmail string, places models.NearbyPlaces, guide []models.RoomGuideEntry) (*models.AssistantConfig, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	placesJSON, err := json.Marshal(places)
	if err != nil {
		return nil, fmt.Errorf("failed to encode nearby places: %w", err)
	}
	guideJSON, err := json.Marshal(guide)
	if err != nil {
		return nil, fmt.Errorf("failed to encode room guide: %w", err)
	}

	cfg.HotelName = hotelName
	cfg.ContactEmail = contactEmail
	cfg.NearbyPlaces = datatypes.JSON(placesJSON)
	cfg.RoomGuide = datatypes.JSON(guideJSON)
	cfg.UpdatedAt = s.Now()
	if err := s.DB.Save(cfg).Error; err != nil {
		return nil, fmt.Errorf("failed to save assistant config: %w", err)
	}
	return cfg, nil
}

func (s *AssistantService) knowledge() (*models.AssistantConfig, models.NearbyPlaces, []models.RoomGuideEntry, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, models.NearbyPlaces{}, nil, err
	}
	var places models.NearbyPlaces
	if len(cfg.NearbyPlaces) > 0 {
		if err := json.Unmarshal(cfg.NearbyPlaces, &places); err != nil {
			return nil, models.NearbyPlaces{}, nil, fmt.Errorf("failed to decode nearby places: %w", err)
		}
	}
	var guide []models.RoomGuideEntry
	if len(cfg.RoomGuide) > 0 {
		if err := json.Unmarshal(cfg.RoomGuide, &guide); err != nil {
			return nil, models.NearbyPlaces{}, nil, fmt.Errorf("failed to decode room guide: %w", err)
		}
	}
	return cfg, places, guide, nil
}

func (s *AssistantService) replyRoomList(user *models.User) (string, error) {
	cfg, _, guide, err := s.knowledge()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s - AVAILABLE ROOMS\n\n", strings.ToUpper(cfg.HotelName))
	b.WriteString("Here are all our room types:\n\n")
	for _, entry := range guide {
		fmt.Fprintf(&b, "%s - ₹%g/night\n  %s\n\n", entry.Type, entry.Price, entry.Description)
	}
	b.WriteString("Contact us to book or get more information!")
	return b.String(), nil
}

func (s *AssistantService) replyPricing(user *models.User) (string, error) {
	cfg, _, guide, err := s.knowledge()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s - PRICING\n\n", strings.ToUpper(cfg.HotelName))
	for _, entry := range guide {
		fmt.Fprintf(&b, "%s: ₹%g/night\n", entry.Type, entry.Price)
	}
	return b.String(), nil
}

func (s *AssistantService) replyNearby(user *models.User) (string, error) {
	_, places, _, err := s.knowledge()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("NEARBY ATTRACTIONS\n\nTourist Attractions:\n")
	for _, p := range firstN(places.Attractions, 4) {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	b.WriteString("\nDining:\n")
	for _, p := range firstN(places.Dining, 3) {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	b.WriteString("\nShopping:\n")
	for _, p := range firstN(places.Shopping, 2) {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	return b.String(), nil
}

func (s *AssistantService) replyBookingHelp(user *models.User) (string, error) {
	cfg, err := s.Config()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BOOKING INFORMATION\n\nTo book a room:\n1. Browse available rooms\n2. Select your desired room type\n3. Enter check-in and check-out dates\n4. Complete the booking with your details\n5. Choose payment method (Cash or Wallet)\n\nNeed help? Contact our team at %s", cfg.ContactEmail), nil
}

func (s *AssistantService) replyPayments(user *models.User) (string, error) {
	return "PAYMENT OPTIONS\n\n- Cash on Check-in\n- Wallet Payment (prepay into your account)\n- Card Payment (coming soon)", nil
}

func (s *AssistantService) replyUserBookings(user *models.User) (string, error) {
	if user == nil {
		return "Please log in to see your bookings.", nil
	}
	var bookings []models.Booking
	if err := s.DB.Preload("Room").Where("user_id = ?", user.ID).Order("check_in_date").Find(&bookings).Error; err != nil {
		return "", fmt.Errorf("failed to load bookings: %w", err)
	}

	now := s.Now()
	var b strings.Builder
	b.WriteString("YOUR BOOKINGS\n\n")
	pending := 0
	for _, bk := range bookings {
		if bk.CheckInDate.After(now) {
			pending++
			fmt.Fprintf(&b, "- %s, check-in %s, confirmation %s\n",
				bk.Room.RoomType, bk.CheckInDate.Format("2006-01-02"), bk.ConfirmationCode)
		}
	}
	if pending == 0 {
		return "You have no upcoming bookings.", nil
	}
	fmt.Fprintf(&b, "\nUpcoming bookings: %d (total on record: %d)", pending, len(bookings))
	return b.String(), nil
}

func (s *AssistantService) replyWalletBalance(user *models.User) (string, error) {
	if user == nil {
		return "Please log in to see your wallet balance.", nil
	}
	var wallet models.Wallet
	balance := 0.0
	err := s.DB.Where("user_id = ?", user.ID).First(&wallet).Error
	if err == nil {
		balance = wallet.Balance
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to load wallet: %w", err)
	}
	return fmt.Sprintf("Your wallet balance is ₹%g.", balance), nil
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}

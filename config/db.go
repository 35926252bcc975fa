package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"siddhi-hotel-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "siddhi_hotel")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.AssistantConfig{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

type seedRoom struct {
	RoomType        string
	RoomPrice       float64
	RoomDescription string
	RoomPhotoURL    string
}

var seedRooms = []seedRoom{
	{"Standard Room", 2500, "Comfortable single bed room with attached bathroom, AC, TV, and free WiFi. Perfect for solo travelers.", "https://images.unsplash.com/photo-1566665797739-1674de7a421a?w=800&h=600&fit=crop"},
	{"Deluxe Room", 3500, "Spacious room with queen bed, sitting area, mini fridge, AC, and premium amenities.", "https://images.unsplash.com/photo-1590490360182-c33d57733427?w=800&h=600&fit=crop"},
	{"Suite", 5000, "Luxury suite with king bed, separate living area, work desk, and modern furnishings.", "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&h=600&fit=crop"},
	{"Budget Room", 1500, "Economy room with basic amenities, perfect for budget-conscious travelers.", "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?w=800&h=600&fit=crop"},
	{"Family Room", 6000, "2 bedroom family room with kitchen facilities, ideal for group travels or families.", "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=800&h=600&fit=crop"},
	{"Premium Deluxe", 4500, "Premium room with city view, king bed, jacuzzi, and complimentary breakfast.", "https://images.unsplash.com/photo-1507652313519-d4e9174996dd?w=800&h=600&fit=crop"},
	{"Standard Room", 2800, "Clean and comfortable room with all modern amenities and 24/7 room service.", "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?w=800&h=600&fit=crop"},
	{"Deluxe Room", 4000, "Spacious deluxe room with city view and premium furniture.", "https://images.unsplash.com/photo-1587985064135-0366536eab42?w=800&h=600&fit=crop"},
}

var seedNearbyPlaces = models.NearbyPlaces{
	Attractions: []string{
		"Shaniwar Wada Fort - 10 min",
		"Raja Dinkar Kelkar Museum - 15 min",
		"Aga Khan Palace - 20 min",
		"Lal Mahal - 8 min",
		"Osho Ashram - 25 min",
		"Saras Baug - 5 min",
	},
	Dining: []string{
		"Vohuman Cafe (Parsi) - 5 min",
		"Kayani Bakery - 4 min",
		"Highway Gomantak - 10 min",
		"Vaishali (South Indian) - 8 min",
	},
	Shopping: []string{
		"ABC Farms Market - 2 km",
		"Koregaon Park Market - 1 km",
		"Phule Market - 3 km",
	},
}

var seedRoomGuide = []models.RoomGuideEntry{
	{Type: "Budget Room", Price: 1500, Description: "Economy room with basic amenities, perfect for budget-conscious travelers."},
	{Type: "Standard Room", Price: 2500, Description: "Comfortable single bed room with attached bathroom, AC, TV, and free WiFi."},
	{Type: "Deluxe Room", Price: 3500, Description: "Spacious room with queen bed, sitting area, mini fridge, AC, and premium amenities."},
	{Type: "Family Room", Price: 4500, Description: "Spacious room for families with multiple beds and enhanced facilities."},
	{Type: "Suite", Price: 5000, Description: "Luxury suite with king bed, separate living area, work desk, and modern furnishings."},
	{Type: "Premium Deluxe", Price: 7000, Description: "Ultimate luxury with premium amenities, spa access, and concierge services."},
}

func SeedDatabase() {
	// ---------------- Admin user ----------------
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Name:        "Admin User",
				Email:       "admin@siddhihotel.com",
				PhoneNumber: "0000000000",
				Password:    string(hash),
				Role:        models.RoleAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := make([]models.Room, 0, len(seedRooms))
		for _, r := range seedRooms {
			rooms = append(rooms, models.Room{
				RoomType:        r.RoomType,
				RoomPrice:       r.RoomPrice,
				RoomDescription: r.RoomDescription,
				RoomPhotoURL:    r.RoomPhotoURL,
			})
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	// ---------------- Assistant knowledge base ----------------
	var cfgCount int64
	DB.Model(&models.AssistantConfig{}).Count(&cfgCount)
	if cfgCount == 0 {
		placesJSON, _ := json.Marshal(seedNearbyPlaces)
		guideJSON, _ := json.Marshal(seedRoomGuide)
		cfg := models.AssistantConfig{
			HotelName:    "Siddhi Hotel",
			ContactEmail: "support@siddhihotel.com",
			NearbyPlaces: datatypes.JSON(placesJSON),
			RoomGuide:    datatypes.JSON(guideJSON),
		}
		if err := DB.Create(&cfg).Error; err != nil {
			log.Printf("warning: failed to seed assistant config: %v", err)
		} else {
			log.Println("Assistant knowledge base seeded")
		}
	}
}

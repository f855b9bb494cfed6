package main

import (
	"log"
	"os"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding demo data...")

	admin := seedUser(db, "admin@betcode.local", "Site Admin", "admin", 0, true)
	seller := seedUser(db, "seller@betcode.local", "Thabo Tips", "seller", 500, true)
	buyer := seedUser(db, "buyer@betcode.local", "Lerato M", "buyer", 1000, true)

	seedTicket(db, seller.Id, "Weekend Soccer Multi", "Five-leg multi across PSL fixtures.", 100, "Betway", "BW-7F3K9", 12.5)
	seedTicket(db, seller.Id, "Free Daily Single", "One safe pick for today.", 0, "Hollywoodbets", "HB-FREE1", 1.8)

	color.Green("✅ Seed complete")
	color.Green("   admin:  %s / admin123!", admin.Email)
	color.Green("   seller: %s / seller123!", seller.Email)
	color.Green("   buyer:  %s / buyer123!", buyer.Email)
}

func seedUser(db *gorm.DB, email, fullName, role string, balance float64, approved bool) *model.User {
	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Skip user %s (exists)", email)
		return &existing
	}

	password := role + "123!"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error: failed to hash password: %v", err)
		os.Exit(1)
	}
	hashStr := string(hash)

	user := model.User{
		Id:            uuid.New(),
		Email:         email,
		PasswordHash:  &hashStr,
		FullName:      fullName,
		Role:          role,
		Approved:      approved,
		Suspended:     false,
		CreditBalance: balance,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		color.Red("Error: failed to seed user %s: %v", email, err)
		os.Exit(1)
	}
	color.Green("Created user %s (%s)", email, role)
	return &user
}

func seedTicket(db *gorm.DB, sellerId uuid.UUID, title, description string, price float64, site, code string, odds float64) {
	var count int64
	db.Model(&model.Ticket{}).Where("title = ? AND seller_id = ?", title, sellerId).Count(&count)
	if count > 0 {
		color.Yellow("Skip ticket %q (exists)", title)
		return
	}

	ticket := model.Ticket{
		Id:          uuid.New(),
		SellerId:    sellerId,
		Title:       title,
		Description: description,
		Price:       price,
		BettingSite: site,
		TicketCode:  code,
		Odds:        odds,
		KickoffAt:   time.Now().Add(48 * time.Hour),
		IsPublished: true,
		IsFree:      price == 0,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.Create(&ticket).Error; err != nil {
		color.Red("Error: failed to seed ticket %q: %v", title, err)
		os.Exit(1)
	}
	color.Green("Created ticket %q", title)
}

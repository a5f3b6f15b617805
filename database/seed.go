package database

import (
	"log"
	"time"

	"wisata_booking/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "admin123"
	}
	users := []model.User{
		{Name: "Administrator", Email: "admin@wisata.local", Password: hashPassword, Active: true, Role: model.RoleAdmin},
	}

	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Email, "error:", err)
		}
	}

	destinations := []model.Destination{
		{
			Slug: "pantai-pandawa", Name: "Pantai Pandawa", Location: "Badung, Bali",
			Category: "beach", Description: "White sand beach behind limestone cliffs.",
			BasePrice: 25000, Featured: true, Active: true,
		},
		{
			Slug: "kawah-ijen", Name: "Kawah Ijen", Location: "Banyuwangi, Jawa Timur",
			Category: "mountain", Description: "Crater lake famous for its blue fire.",
			BasePrice: 100000, Featured: true, Active: true,
		},
		{
			Slug: "candi-borobudur", Name: "Candi Borobudur", Location: "Magelang, Jawa Tengah",
			Category: "heritage", Description: "The world's largest Buddhist temple.",
			BasePrice: 50000, Active: true,
		},
	}

	for _, destination := range destinations {
		if err := db.Where(model.Destination{Slug: destination.Slug}).FirstOrCreate(&destination).Error; err != nil {
			log.Println("failed to seed destination:", destination.Slug, "error:", err)
			continue
		}

		ticketTypes := []model.TicketType{
			{DestinationId: destination.ID, Name: "Regular", Price: destination.BasePrice, Capacity: "1 person", ValidFor: "1 day"},
			{DestinationId: destination.ID, Name: "Family", Price: destination.BasePrice * 4, Capacity: "4 persons", ValidFor: "1 day"},
		}
		for _, tt := range ticketTypes {
			if err := db.Where(model.TicketType{DestinationId: tt.DestinationId, Name: tt.Name}).FirstOrCreate(&tt).Error; err != nil {
				log.Println("failed to seed ticket type:", tt.Name, "error:", err)
			}
		}
	}

	promotions := []model.Promotion{
		{
			Code: "LIBURAN10", Name: "Holiday Discount", Description: "10% off all destinations",
			DiscountType: "percentage", DiscountValue: 10,
			StartDate: parseDate("2026-01-01"), EndDate: parseDate("2026-12-31"), Status: "active",
		},
	}
	for _, promotion := range promotions {
		if err := db.Where(model.Promotion{Code: promotion.Code}).FirstOrCreate(&promotion).Error; err != nil {
			log.Println("failed to seed promotion:", promotion.Code, "error:", err)
		}
	}
}

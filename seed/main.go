// Seeds the experiences and promocodes collections with the storefront
// catalog. Clears existing data first.
package main

import (
	"context"
	"log"
	"time"

	"bookit/config"
	"bookit/database"
	experienceRepoPkg "bookit/database/repository/experience"
	promoRepoPkg "bookit/database/repository/promo"
	"bookit/models"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

var seedDates = []string{"Oct 22", "Oct 23", "Oct 24", "Oct 25", "Oct 26"}

var experiences = []models.Experience{
	{
		Title:       "Kayaking",
		Location:    "Udupi",
		Image:       "/kayaking-in-river.jpg",
		Price:       999,
		Description: "Curated small group experience. Certified guide. Safety first and fun always.",
		Dates:       seedDates,
		Times: []models.TimeSlot{
			{Time: "07:00 am", Available: 4},
			{Time: "9:00 am", Available: 2},
			{Time: "11:00 am", Available: 5},
			{Time: "1:00 pm", Available: 0, Status: "sold-out"},
		},
		About:    "Scenic routes, trained guides, and safety briefing. Minimum age 10.",
		Taxes:    59,
		IsActive: true,
	},
	{
		Title:       "Nandi Hills Sunrise",
		Location:    "Bangalore",
		Image:       "/sunrise-at-nandi-hills.jpg",
		Price:       899,
		Description: "Curated small group experience. Certified guide. Safety first and fun always.",
		Dates:       seedDates,
		Times: []models.TimeSlot{
			{Time: "05:00 am", Available: 6},
			{Time: "05:30 am", Available: 3},
		},
		About:    "Early morning trek to catch the sunrise. Transportation included.",
		Taxes:    50,
		IsActive: true,
	},
	{
		Title:       "Coffee Trail",
		Location:    "Coorg",
		Image:       "/coffee-plantation-trail.jpg",
		Price:       1299,
		Description: "Curated small group experience. Certified guide. Safety first and fun always.",
		Dates:       seedDates,
		Times: []models.TimeSlot{
			{Time: "08:00 am", Available: 8},
			{Time: "10:00 am", Available: 5},
			{Time: "02:00 pm", Available: 4},
		},
		About:    "Walk through coffee plantations, learn about coffee processing, and enjoy fresh brews.",
		Taxes:    70,
		IsActive: true,
	},
	{
		Title:       "Kayaking",
		Location:    "Idukki Karakala",
		Image:       "/kayaking-adventure.png",
		Price:       999,
		Description: "Curated small group experience. Certified guide. Safety first and fun always.",
		Dates:       seedDates,
		Times: []models.TimeSlot{
			{Time: "07:00 am", Available: 4},
			{Time: "9:00 am", Available: 2},
			{Time: "11:00 am", Available: 5},
			{Time: "1:00 pm", Available: 0, Status: "sold-out"},
		},
		About:    "Scenic routes, trained guides, and safety briefing. Minimum age 10.",
		Taxes:    59,
		IsActive: true,
	},
	{
		Title:       "Nandi Hills Sunrise",
		Location:    "Bangalore",
		Image:       "/serene-sunrise-landscape.png",
		Price:       899,
		Description: "Curated small group experience. Certified guide. Safety first and fun always.",
		Dates:       seedDates,
		Times: []models.TimeSlot{
			{Time: "05:00 am", Available: 6},
			{Time: "05:30 am", Available: 3},
		},
		About:    "Early morning trek to catch the sunrise. Transportation included.",
		Taxes:    50,
		IsActive: true,
	},
	{
		Title:       "Boat Cruise",
		Location:    "Sagarikula",
		Image:       "/boat-cruise-on-water.jpg",
		Price:       899,
		Description: "Curated small group experience. Certified guide. Safety first and fun always.",
		Dates:       seedDates,
		Times: []models.TimeSlot{
			{Time: "06:00 pm", Available: 10},
			{Time: "07:00 pm", Available: 8},
		},
		About:    "Relaxing evening boat cruise with scenic views.",
		Taxes:    50,
		IsActive: true,
	},
	{
		Title:       "Bunjee Jumping",
		Location:    "Marali",
		Image:       "/bungee-jumping-adventure.jpg",
		Price:       999,
		Description: "Curated small group experience. Certified guide. Safety first and fun always.",
		Dates:       seedDates,
		Times: []models.TimeSlot{
			{Time: "09:00 am", Available: 3},
			{Time: "11:00 am", Available: 2},
			{Time: "02:00 pm", Available: 4},
		},
		About:    "Adrenaline-pumping bungee jump experience with certified instructors.",
		Taxes:    59,
		IsActive: true,
	},
	{
		Title:       "Coffee Trail",
		Location:    "Coorg",
		Image:       "/coffee-trail-forest.jpg",
		Price:       1299,
		Description: "Curated small group experience. Certified guide. Safety first and fun always.",
		Dates:       seedDates,
		Times: []models.TimeSlot{
			{Time: "08:00 am", Available: 8},
			{Time: "10:00 am", Available: 5},
			{Time: "02:00 pm", Available: 4},
		},
		About:    "Walk through coffee plantations, learn about coffee processing, and enjoy fresh brews.",
		Taxes:    70,
		IsActive: true,
	},
}

var promoCodes = []models.PromoCode{
	{
		Code:          "SAVE10",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 10,
		MinPurchase:   500,
		MaxDiscount:   floatPtr(200),
		UsageLimit:    intPtr(100),
		IsActive:      true,
	},
	{
		Code:          "FLAT100",
		DiscountType:  models.DiscountTypeFixed,
		DiscountValue: 100,
		MinPurchase:   1000,
		UsageLimit:    intPtr(50),
		IsActive:      true,
	},
	{
		Code:          "WELCOME20",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 20,
		MinPurchase:   0,
		MaxDiscount:   floatPtr(500),
		UsageLimit:    nil,
		IsActive:      true,
	},
}

func main() {
	config.LoadConfig()
	database.InitDB()

	experienceRepo := experienceRepoPkg.NewMongoExperienceRepo()
	promoRepo := promoRepoPkg.NewMongoPromoRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Clear existing data.
	if err := experienceRepo.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear experiences collection: %v", err)
	}
	if err := promoRepo.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear promocodes collection: %v", err)
	}

	if err := experienceRepo.InsertMany(ctx, experiences); err != nil {
		log.Fatalf("Failed to insert experiences: %v", err)
	}
	log.Printf("Inserted %d experiences", len(experiences))

	if err := promoRepo.InsertMany(ctx, promoCodes); err != nil {
		log.Fatalf("Failed to insert promo codes: %v", err)
	}
	log.Printf("Inserted %d promo codes", len(promoCodes))

	if err := experienceRepo.EnsureIndexes(); err != nil {
		log.Printf("Failed to ensure experience indexes: %v", err)
	}
	if err := promoRepo.EnsureIndexes(); err != nil {
		log.Printf("Failed to ensure promo indexes: %v", err)
	}

	log.Println("Database seeded successfully")
	for _, p := range promoCodes {
		if p.DiscountType == models.DiscountTypePercentage {
			log.Printf("  - %s: %.0f%% off", p.Code, p.DiscountValue)
		} else {
			log.Printf("  - %s: ₹%.0f off", p.Code, p.DiscountValue)
		}
	}
}

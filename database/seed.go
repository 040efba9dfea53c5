package database

import (
	"log"

	"waitify/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	hashed := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admin := model.Profile{
		Email:    "admin@waitify.app",
		Password: hashed,
		Role:     "admin",
		IsActive: true,
	}
	if err := db.Where(model.Profile{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin profile:", err)
	}

	demo := model.Business{
		Name: "Demo Diner",
		Slug: "demo-diner",
		Type: model.BUSINESS_RESTAURANT,
		Plan: "free",
	}
	if err := db.Where(model.Business{Slug: demo.Slug}).FirstOrCreate(&demo).Error; err != nil {
		log.Println("failed to seed demo business:", err)
		return
	}

	waitlist := model.Waitlist{
		BusinessId:        demo.ID,
		Name:              "Walk-ins",
		IsActive:          true,
		AvgServiceMinutes: 10,
	}
	if err := db.Where(model.Waitlist{BusinessId: demo.ID, Name: waitlist.Name}).
		FirstOrCreate(&waitlist).Error; err != nil {
		log.Println("failed to seed demo waitlist:", err)
	}
}

package database

import (
	"fmt"
	"strconv"

	"waitify/config"
	"waitify/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	p := config.ConfigOr("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(DB)
	SeedData(DB)
}

// Migrate runs AutoMigrate for every entity; tests reuse it against sqlite.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.Profile{},
		&model.PasswordResetToken{},
		&model.Business{},
		&model.Location{},
		&model.StaffMember{},
		&model.Waitlist{},
		&model.WaitlistEntry{},
		&model.Notification{},
		&model.Patient{},
		&model.Practitioner{},
		&model.Service{},
		&model.Appointment{},
		&model.Table{},
		&model.Reservation{},
	)
}

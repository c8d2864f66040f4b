package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	adoptionentity "pawfinders_backend/internal/feature/adoptions/domain/entity"
	appointmententity "pawfinders_backend/internal/feature/appointments/domain/entity"
	authentity "pawfinders_backend/internal/feature/auth/domain/entity"
	donationentity "pawfinders_backend/internal/feature/donations/domain/entity"
	paymententity "pawfinders_backend/internal/feature/payments/domain/entity"
	petentity "pawfinders_backend/internal/feature/pets/domain/entity"
	visitentity "pawfinders_backend/internal/feature/visits/domain/entity"
)

// OpenDB connects to MySQL using environment-provided credentials. The
// connection is retried for up to 60 seconds so the server survives a
// database that comes up slightly later than the process.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		user, pass, host, port, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&petentity.Pet{},
			&donationentity.Donation{},
			&appointmententity.VetAppointment{},
			&adoptionentity.Adoption{},
			&visitentity.Visit{},
			&paymententity.Transaction{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

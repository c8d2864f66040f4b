package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"pawfinders_backend/internal/app/config"
	"pawfinders_backend/internal/app/di"
	"pawfinders_backend/internal/app/router"
	adoptionadapters "pawfinders_backend/internal/feature/adoptions/adapters"
	adoptionhandler "pawfinders_backend/internal/feature/adoptions/transport/handler"
	adoptionusecase "pawfinders_backend/internal/feature/adoptions/usecase"
	appointmentadapters "pawfinders_backend/internal/feature/appointments/adapters"
	appointmenthandler "pawfinders_backend/internal/feature/appointments/transport/handler"
	appointmentusecase "pawfinders_backend/internal/feature/appointments/usecase"
	authadapters "pawfinders_backend/internal/feature/auth/adapters"
	authhandler "pawfinders_backend/internal/feature/auth/transport/handler"
	authusecase "pawfinders_backend/internal/feature/auth/usecase"
	donationadapters "pawfinders_backend/internal/feature/donations/adapters"
	donationhandler "pawfinders_backend/internal/feature/donations/transport/handler"
	donationusecase "pawfinders_backend/internal/feature/donations/usecase"
	paymentadapters "pawfinders_backend/internal/feature/payments/adapters"
	paymenthandler "pawfinders_backend/internal/feature/payments/transport/handler"
	paymentusecase "pawfinders_backend/internal/feature/payments/usecase"
	pethandler "pawfinders_backend/internal/feature/pets/transport/handler"
	petusecase "pawfinders_backend/internal/feature/pets/usecase"
	visitadapters "pawfinders_backend/internal/feature/visits/adapters"
	visithandler "pawfinders_backend/internal/feature/visits/transport/handler"
	visitusecase "pawfinders_backend/internal/feature/visits/usecase"
	infradb "pawfinders_backend/internal/platform/db"
	jwtmw "pawfinders_backend/internal/platform/jwt"
	infraredis "pawfinders_backend/internal/platform/redis"
	"pawfinders_backend/internal/platform/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using process environment")
	}

	// Configuration fails fast: missing secrets stop the server here
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// db
	db := infradb.OpenDB()

	// Redis (optional cache)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Upload storage
	uploads, err := storage.NewUploadStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store: %v", err)
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	petRepo := di.NewPetRepository(rdb, db)
	donationRepo := donationadapters.NewDonationMySQL(db)
	appointmentRepo := appointmentadapters.NewAppointmentMySQL(db)
	adoptionRepo := adoptionadapters.NewAdoptionMySQL(db)
	visitRepo := visitadapters.NewVisitMySQL(db)
	txnRepo := paymentadapters.NewTransactionMySQL(db)

	// Payment gateway
	gateway := di.NewPaymentGateway(cfg)

	// Usecase
	jwtGen := jwtmw.NewGenerator(cfg.JWTSecret, time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	petUC := petusecase.NewPetUsecase(petRepo)
	donationUC := donationusecase.NewDonationUsecase(donationRepo)
	appointmentUC := appointmentusecase.NewAppointmentUsecase(appointmentRepo)
	adoptionUC := adoptionusecase.NewAdoptionUsecase(adoptionRepo)
	visitUC := visitusecase.NewVisitUsecase(visitRepo)
	paymentUC := paymentusecase.NewPaymentUsecase(txnRepo, gateway, cfg.AppBaseURL)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	petH := pethandler.NewPetHandler(petUC, uploads)
	donationH := donationhandler.NewDonationHandler(donationUC)
	appointmentH := appointmenthandler.NewAppointmentHandler(appointmentUC)
	adoptionH := adoptionhandler.NewAdoptionHandler(adoptionUC)
	visitH := visithandler.NewVisitHandler(visitUC)
	paymentH := paymenthandler.NewPaymentHandler(paymentUC)

	r := router.NewRouter(cfg, authH, petH, donationH, appointmentH, adoptionH, visitH, paymentH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

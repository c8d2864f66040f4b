// Package router builds the HTTP route table.
package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pawfinders_backend/internal/app/config"
	adoptionhandler "pawfinders_backend/internal/feature/adoptions/transport/handler"
	appointmenthandler "pawfinders_backend/internal/feature/appointments/transport/handler"
	authhandler "pawfinders_backend/internal/feature/auth/transport/handler"
	donationhandler "pawfinders_backend/internal/feature/donations/transport/handler"
	paymenthandler "pawfinders_backend/internal/feature/payments/transport/handler"
	pethandler "pawfinders_backend/internal/feature/pets/transport/handler"
	visithandler "pawfinders_backend/internal/feature/visits/transport/handler"
	"pawfinders_backend/internal/platform/http/handler"
	jwtmw "pawfinders_backend/internal/platform/jwt"
)

// NewRouter wires every route of the service. The frontend is served
// statically with an index.html fallback for unmatched GETs; unmatched
// non-GET requests get a plain 404.
func NewRouter(
	cfg *config.Config,
	auth *authhandler.AuthHandler,
	pets *pethandler.PetHandler,
	donations *donationhandler.DonationHandler,
	appointments *appointmenthandler.AppointmentHandler,
	adoptions *adoptionhandler.AdoptionHandler,
	visits *visithandler.VisitHandler,
	payments *paymenthandler.PaymentHandler,
) *gin.Engine {
	r := gin.Default()

	// The frontend is browser-served, so CORS stays open like the rest of
	// the route surface
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", handler.Health)
	// API test route
	r.GET("/api", handler.Welcome)

	// Authentication
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	// Routes requiring a bearer token
	authed := r.Group("/api")
	authed.Use(jwtmw.AuthRequired(cfg.JWTSecret))
	{
		authed.GET("/profile", auth.Profile)
	}

	// Lost-pet reports
	r.POST("/savePet", pets.Save)
	r.GET("/getPets", pets.List)

	// Donations
	r.POST("/donate", donations.Donate)
	r.GET("/getDonations", donations.List)

	// Vet appointments
	r.POST("/api/vet-appointment", appointments.Book)

	// Adoption applications and shelter visits
	r.POST("/apply-adoption", adoptions.Apply)
	r.POST("/schedule-visit", visits.Schedule)

	// Payments: browser-navigation routes, responses are redirects
	r.GET("/pay", payments.Pay)
	r.GET("/redirect-url/:merchantTransactionId", payments.RedirectCallback)

	// Uploaded pet images
	r.Static("/uploads", cfg.UploadDir)

	// Static frontend with index.html fallback
	r.NoRoute(frontendFallback(cfg.FrontendDir))

	return r
}

// frontendFallback serves static frontend files for unmatched GET requests,
// falling back to index.html so client-side routes resolve. Anything else
// is a 404. The request path is cleaned before it touches the filesystem.
func frontendFallback(frontendDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.String(http.StatusNotFound, "404 Not Found")
			return
		}

		path := filepath.Join(frontendDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		c.File(filepath.Join(frontendDir, "index.html"))
	}
}

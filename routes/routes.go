package routes

import (
	"net/http"
	"time"

	"garagat/handlers"
	"garagat/middleware"
	"garagat/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware())
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PATCH("/session/:sessionID/draft", hb.UpdateDraft)
		bookingGroup.POST("/session/:sessionID/window", hb.ShiftWindow)
		bookingGroup.GET("/session/:sessionID/slots", hb.GetSlots)
		bookingGroup.POST("/session/:sessionID/advance", hb.Advance)
		bookingGroup.POST("/session/:sessionID/retreat", hb.Retreat)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterCustomerRoutes exposes the customer's vehicles and saved addresses.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers/me")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/vehicles", hb.GetVehicles)
		api.GET("/addresses", hb.GetAddresses)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "message": "Hi, I'm Garagat"})
	})
}

// RegisterMetricsRoute serves the Prometheus registry the wizard counters live in.
func RegisterMetricsRoute(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, gatherer prometheus.Gatherer) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", utils.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", utils.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r, gatherer)
}

package routes

import (
	"net/http"
	"time"

	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPatientRoutes registers patient-portal account endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.POST("/register", hb.Patient.RegisterHandler)
		api.POST("/signin", hb.Patient.SigninHandler)
		api.POST("/verify-otp", hb.Patient.VerifyOTPHandler)
		api.POST("/forgot-password", hb.Patient.ForgotPasswordHandler)
		api.POST("/reset-password", hb.Patient.ResetPasswordHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
		api.GET("/me", hb.Patient.GetProfileHandler)
		api.PUT("/me", hb.Patient.UpdateProfileHandler)
		api.POST("/signout", hb.Patient.SignOutHandler)
	}
}

// RegisterDoctorRoutes registers doctor endpoints. The directory
// listing is public; everything under /me requires a doctor token.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hb.Doctor.ListApprovedHandler)
		api.POST("/register", hb.Doctor.RegisterHandler)
		api.POST("/signin", hb.Doctor.SigninHandler)

		protected := api.Group("/me")
		protected.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		protected.GET("", hb.Doctor.GetProfileHandler)
		protected.PUT("", hb.Doctor.UpdateProfileHandler)
		protected.PUT("/hours", hb.Doctor.SetHoursHandler)
		protected.GET("/appointments", hb.Doctor.ListAppointmentsHandler)
		protected.GET("/overrides", hb.Doctor.ListOverridesHandler)
		protected.POST("/overrides", hb.Doctor.AddOverrideHandler)
		protected.DELETE("/overrides/:id", hb.Doctor.DeleteOverrideHandler)

		api.POST("/signout", middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo), hb.Doctor.SignOutHandler)
	}
}

// RegisterBookingRoutes sets up slot discovery and appointment
// booking for authenticated patients.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
		api.GET("/slots", hb.Booking.GetAvailableSlotsHandler)
		api.GET("", hb.Booking.ListMyAppointmentsHandler)
		api.POST("", hb.Booking.BookAppointmentHandler)
		api.POST("/emergency", hb.Booking.BookEmergencyHandler)
		api.DELETE("/:id", hb.Booking.CancelAppointmentHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/signin", hb.Admin.SigninHandler)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/patients", hb.Admin.ListPatientsHandler)
		adminGroup.DELETE("/patients/:id", hb.Admin.DeletePatientHandler)
		adminGroup.GET("/doctors", hb.Admin.ListDoctorsHandler)
		adminGroup.PUT("/doctors/:id/status", hb.Admin.SetDoctorStatusHandler)
		adminGroup.DELETE("/doctors/:id", hb.Admin.DeleteDoctorHandler)
		adminGroup.GET("/appointments", hb.Admin.ListAppointmentsHandler)
		adminGroup.PUT("/appointments/:id/status", hb.Admin.UpdateAppointmentStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPatientRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

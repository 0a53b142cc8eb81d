package http

import (
	"net/http"

	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/http/handler"
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	doctorHandler        *handler.DoctorHandler
	availabilityHandler  *handler.AvailabilityHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalReportHandler *handler.MedicalReportHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalReportHandler *handler.MedicalReportHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		doctorHandler:        doctorHandler,
		availabilityHandler:  availabilityHandler,
		appointmentHandler:   appointmentHandler,
		medicalReportHandler: medicalReportHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/signup/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/current_user", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor routes (any authenticated user; visibility is scoped per actor)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("/my_profile", r.doctorHandler.GetMyProfile).Methods(http.MethodGet)
	doctors.HandleFunc("/my_profile", r.doctorHandler.UpdateMyProfile).Methods(http.MethodPatch, http.MethodPut)
	doctors.HandleFunc("/{id}/available_slots", r.doctorHandler.GetAvailableSlots).Methods(http.MethodGet)

	// Availability routes (doctor only)
	availability := api.PathPrefix("/availability").Subrouter()
	availability.Use(r.authMiddleware.Authenticate)
	availability.Use(middleware.RequireDoctor)
	availability.HandleFunc("", r.availabilityHandler.ListMySlots).Methods(http.MethodGet)
	availability.HandleFunc("", r.availabilityHandler.CreateSlot).Methods(http.MethodPost)
	availability.HandleFunc("/{id}", r.availabilityHandler.UpdateSlot).Methods(http.MethodPut, http.MethodPatch)
	availability.HandleFunc("/{id}", r.availabilityHandler.DeleteSlot).Methods(http.MethodDelete)

	// Appointment routes (any authenticated user)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.Book).Methods(http.MethodPost)
	appointments.HandleFunc("/book", r.appointmentHandler.Book).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)

	// Medical report routes; reads are scoped per actor, writes are doctor only
	reports := api.PathPrefix("/medical-reports").Subrouter()
	reports.Use(r.authMiddleware.Authenticate)
	reports.HandleFunc("", r.medicalReportHandler.ListReports).Methods(http.MethodGet)
	reports.Handle("", middleware.RequireDoctor(http.HandlerFunc(r.medicalReportHandler.CreateReport))).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

package http

import (
	"net/http"

	"clinic-front-desk/internal/delivery/http/handler"
	"clinic-front-desk/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	queueHandler   *handler.QueueHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	queueHandler *handler.QueueHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		queueHandler:   queueHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Queue views (protected)
	queue := api.PathPrefix("/queue").Subrouter()
	queue.Use(r.authMiddleware.Authenticate)
	queue.HandleFunc("/appointments", r.queueHandler.GetAppointments).Methods(http.MethodGet)
	queue.HandleFunc("/stats", r.queueHandler.GetStats).Methods(http.MethodGet)
	queue.HandleFunc("/range", r.queueHandler.SelectRange).Methods(http.MethodPost)
	queue.HandleFunc("/refresh", r.queueHandler.Refresh).Methods(http.MethodPost)
	queue.HandleFunc("/appointments/{id}/reminder-link", r.queueHandler.GetReminderLink).Methods(http.MethodGet)

	// Lifecycle transitions (protected - front-desk staff only)
	transitions := api.PathPrefix("/queue").Subrouter()
	transitions.Use(r.authMiddleware.Authenticate)
	transitions.Use(middleware.RequireFrontDesk)
	transitions.HandleFunc("/appointments/{id}/status", r.queueHandler.UpdateStatus).Methods(http.MethodPatch)
	transitions.HandleFunc("/appointments/{id}/payment", r.queueHandler.UpdatePayment).Methods(http.MethodPatch)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

package http

import (
	"net/http"

	"vipclinic-api/internal/delivery/http/handler"
	"vipclinic-api/internal/delivery/http/middleware"
	"vipclinic-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	systemHandler           *handler.SystemHandler
	doctorHandler           *handler.DoctorHandler
	corsMiddleware          *middleware.CORSMiddleware
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware
}

func NewRouter(
	systemHandler *handler.SystemHandler,
	doctorHandler *handler.DoctorHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		systemHandler:           systemHandler,
		doctorHandler:           doctorHandler,
		corsMiddleware:          corsMiddleware,
		requestLoggerMiddleware: requestLoggerMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Status routes
	r.router.HandleFunc("/", r.systemHandler.Root).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.systemHandler.Health).Methods(http.MethodGet)

	// Doctor routes. OPTIONS is matched so the CORS middleware can answer preflight.
	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/doctors/register", r.doctorHandler.RegisterDoctor).Methods(http.MethodPost, http.MethodOptions)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.MethodNotAllowed(w, "")
	})

	r.router.Use(r.requestLoggerMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

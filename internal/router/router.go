package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/feliciafavrholdt/vetlocator-api/internal/handler"
	"github.com/feliciafavrholdt/vetlocator-api/internal/handler/prometheus"
	"github.com/feliciafavrholdt/vetlocator-api/internal/middleware"
)

// Handler registers routes on a group with the role guards it needs.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup, *middleware.AuthMiddleware)
}

// AuthHandler has a public part and a token-protected part.
type AuthHandler interface {
	RegisterRoutes(*gin.RouterGroup)
	RegisterProtectedRoutes(*gin.RouterGroup)
}

type Handlers struct {
	Auth         AuthHandler
	Client       Handler
	Animal       Handler
	Clinic       Handler
	Veterinarian Handler
	OpeningHours Handler
	Appointment  Handler
	User         Handler
	Health       *handler.Handler
	Metrics      *prometheus.Handler
}

type Config struct {
	RateLimit  rate.Limit
	RateBurst  int
	CORSConfig middleware.CORSConfig
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	handlers Handlers
}

func NewRouter(auth *middleware.AuthMiddleware, handlers Handlers, config Config) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Metrics sits outside ErrorHandler so it records the status
	// ErrorHandler writes, not the pre-error one.
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		handlers.Metrics.Middleware(),
		middleware.ErrorHandler(),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return &Router{
		engine:   engine,
		auth:     auth,
		handlers: handlers,
	}
}

// Setup wires the route table. Everything except auth and health sits
// behind token authentication; write access is narrowed per route.
func (r *Router) Setup() {
	api := r.engine.Group("/api")

	r.setupHealthCheck(api)
	r.handlers.Auth.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())

	r.handlers.Auth.RegisterProtectedRoutes(protected)
	r.handlers.Client.RegisterRoutes(protected, r.auth)
	r.handlers.Animal.RegisterRoutes(protected, r.auth)
	r.handlers.Clinic.RegisterRoutes(protected, r.auth)
	r.handlers.Veterinarian.RegisterRoutes(protected, r.auth)
	r.handlers.OpeningHours.RegisterRoutes(protected, r.auth)
	r.handlers.Appointment.RegisterRoutes(protected, r.auth)
	r.handlers.User.RegisterRoutes(protected, r.auth)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.handlers.Health.LivenessCheck)
		health.GET("/ready", r.handlers.Health.ReadinessCheck)
		health.GET("/metrics", r.handlers.Metrics.Handler())
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

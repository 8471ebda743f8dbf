package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/feliciafavrholdt/vetlocator-api/internal/config"
	"github.com/feliciafavrholdt/vetlocator-api/internal/email"
	"github.com/feliciafavrholdt/vetlocator-api/internal/handler"
	animalHandler "github.com/feliciafavrholdt/vetlocator-api/internal/handler/animal"
	appointmentHandler "github.com/feliciafavrholdt/vetlocator-api/internal/handler/appointment"
	authHandler "github.com/feliciafavrholdt/vetlocator-api/internal/handler/auth"
	clientHandler "github.com/feliciafavrholdt/vetlocator-api/internal/handler/client"
	clinicHandler "github.com/feliciafavrholdt/vetlocator-api/internal/handler/clinic"
	hoursHandler "github.com/feliciafavrholdt/vetlocator-api/internal/handler/openinghours"
	"github.com/feliciafavrholdt/vetlocator-api/internal/handler/prometheus"
	userHandler "github.com/feliciafavrholdt/vetlocator-api/internal/handler/user"
	vetHandler "github.com/feliciafavrholdt/vetlocator-api/internal/handler/veterinarian"
	"github.com/feliciafavrholdt/vetlocator-api/internal/middleware"
	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository/postgres"
	redisrepo "github.com/feliciafavrholdt/vetlocator-api/internal/repository/redis"
	"github.com/feliciafavrholdt/vetlocator-api/internal/router"
	animalService "github.com/feliciafavrholdt/vetlocator-api/internal/service/animal"
	appointmentService "github.com/feliciafavrholdt/vetlocator-api/internal/service/appointment"
	authService "github.com/feliciafavrholdt/vetlocator-api/internal/service/auth"
	clientService "github.com/feliciafavrholdt/vetlocator-api/internal/service/client"
	clinicService "github.com/feliciafavrholdt/vetlocator-api/internal/service/clinic"
	hoursService "github.com/feliciafavrholdt/vetlocator-api/internal/service/openinghours"
	userService "github.com/feliciafavrholdt/vetlocator-api/internal/service/user"
	vetService "github.com/feliciafavrholdt/vetlocator-api/internal/service/veterinarian"
	"github.com/feliciafavrholdt/vetlocator-api/pkg/auth"
	"github.com/feliciafavrholdt/vetlocator-api/pkg/logger"
	"github.com/feliciafavrholdt/vetlocator-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Log.Level, cfg.Log.Pretty)
	model.RegisterValidations()

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	base := postgres.NewBaseRepository(db)
	clientRepo := postgres.NewClientRepository(base)
	animalRepo := postgres.NewAnimalRepository(base)
	clinicRepo := postgres.NewClinicRepository(base)
	vetRepo := postgres.NewVeterinarianRepository(base)
	hoursRepo := postgres.NewOpeningHoursRepository(base)
	appointmentRepo := postgres.NewAppointmentRepository(base)
	userRepo := postgres.NewUserRepository(base)

	// Token store is optional: without Redis, refresh tokens are
	// stateless and logout cannot revoke.
	var tokenStore repository.TokenStore
	if cfg.Redis.URL != "" {
		store, err := redisrepo.NewTokenStore(
			cfg.Redis.URL,
			time.Duration(cfg.JWT.RefreshExpiryHours)*time.Hour,
			time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		tokenStore = store
	} else {
		log.Warn().Msg("no Redis configured, token revocation disabled")
	}

	jwtService := auth.NewJWTService(auth.Config{
		Secret:             cfg.JWT.Secret,
		RefreshSecret:      cfg.JWT.RefreshSecret,
		ExpiryHours:        cfg.JWT.ExpiryHours,
		RefreshExpiryHours: cfg.JWT.RefreshExpiryHours,
	})
	hasher := security.NewBcryptHasher(12)
	mailer := email.NewService(cfg.SMTP)

	// Services
	clientSvc := clientService.NewService(clientRepo)
	animalSvc := animalService.NewService(animalRepo)
	clinicSvc := clinicService.NewService(clinicRepo, hoursRepo)
	vetSvc := vetService.NewService(vetRepo)
	hoursSvc := hoursService.NewService(hoursRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, animalRepo, clientRepo, mailer)
	authSvc := authService.NewService(userRepo, tokenStore, jwtService, hasher)
	userSvc := userService.NewService(userRepo, hasher)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(authMiddleware, router.Handlers{
		Auth:         authHandler.NewHandler(authSvc),
		Client:       clientHandler.NewHandler(clientSvc),
		Animal:       animalHandler.NewHandler(animalSvc),
		Clinic:       clinicHandler.NewHandler(clinicSvc),
		Veterinarian: vetHandler.NewHandler(vetSvc),
		OpeningHours: hoursHandler.NewHandler(hoursSvc),
		Appointment:  appointmentHandler.NewHandler(appointmentSvc),
		User:         userHandler.NewHandler(userSvc),
		Health:       handler.NewHandler(db),
		Metrics:      prometheus.New(),
	}, router.Config{
		RateLimit:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:  cfg.RateLimit.Burst,
		CORSConfig: middleware.DefaultCORSConfig(),
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.Timeout(),
		WriteTimeout: cfg.Server.Timeout(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

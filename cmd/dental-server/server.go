package main

import (
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/patinaomi/sprint-3-devops/internal/config"
	"github.com/patinaomi/sprint-3-devops/internal/domain/claim"
	"github.com/patinaomi/sprint-3-devops/internal/domain/client"
	"github.com/patinaomi/sprint-3-devops/internal/domain/clinic"
	"github.com/patinaomi/sprint-3-devops/internal/domain/consultation"
	"github.com/patinaomi/sprint-3-devops/internal/domain/dentist"
	"github.com/patinaomi/sprint-3-devops/internal/domain/feedback"
	"github.com/patinaomi/sprint-3-devops/internal/domain/intakeform"
	"github.com/patinaomi/sprint-3-devops/internal/domain/maritalstatus"
	"github.com/patinaomi/sprint-3-devops/internal/domain/specialty"
	"github.com/patinaomi/sprint-3-devops/internal/platform/apperr"
	"github.com/patinaomi/sprint-3-devops/internal/platform/db"
	"github.com/patinaomi/sprint-3-devops/internal/platform/middleware"
	"github.com/patinaomi/sprint-3-devops/internal/platform/notification"
	"github.com/patinaomi/sprint-3-devops/internal/platform/validate"
)

const version = "0.1.0"

// dependencies are the process-level resources newServer wires together. A
// nil pool selects the in-memory repositories.
type dependencies struct {
	logger zerolog.Logger
	pool   *pgxpool.Pool
	sender notification.EmailSender
}

type repositories struct {
	clients       client.Repository
	clinics       clinic.Repository
	specialties   specialty.Repository
	maritalStatus maritalstatus.Repository
	dentists      dentist.Repository
	consultations consultation.Repository
	claims        claim.Repository
	feedback      feedback.Repository
	intakeForms   intakeform.Repository
}

func memoryRepositories() repositories {
	return repositories{
		clients:       client.NewMemoryRepo(),
		clinics:       clinic.NewMemoryRepo(),
		specialties:   specialty.NewMemoryRepo(),
		maritalStatus: maritalstatus.NewMemoryRepo(),
		dentists:      dentist.NewMemoryRepo(),
		consultations: consultation.NewMemoryRepo(),
		claims:        claim.NewMemoryRepo(),
		feedback:      feedback.NewMemoryRepo(),
		intakeForms:   intakeform.NewMemoryRepo(),
	}
}

func postgresRepositories(q db.Querier) repositories {
	return repositories{
		clients:       client.NewRepoPG(q),
		clinics:       clinic.NewRepoPG(q),
		specialties:   specialty.NewRepoPG(q),
		maritalStatus: maritalstatus.NewRepoPG(q),
		dentists:      dentist.NewRepoPG(q),
		consultations: consultation.NewRepoPG(q),
		claims:        claim.NewRepoPG(q),
		feedback:      feedback.NewRepoPG(q),
		intakeForms:   intakeform.NewRepoPG(q),
	}
}

func newEmailSender(cfg *config.Config, logger zerolog.Logger) (notification.EmailSender, error) {
	if !cfg.SMTPEnabled() {
		logger.Warn().Msg("SMTP_HOST not set; emails will be logged instead of sent")
		return notification.NewLogSender(logger), nil
	}
	return notification.NewSMTPSender(notification.SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUsername,
		Password:    cfg.SMTPPassword,
		FromName:    cfg.MailFromName,
		FromAddress: cfg.MailFromAddress,
	})
}

func newServer(cfg *config.Config, deps dependencies) *echo.Echo {
	logger := deps.logger

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.New()
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, middleware.RequestIDHeader},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
			"backend": cfg.StoreBackend,
		})
	})

	repos := memoryRepositories()
	if deps.pool != nil {
		repos = postgresRepositories(deps.pool)
		e.GET("/health/db", db.HealthHandler(deps.pool))
	}

	rl := middleware.DefaultRateLimitConfig()
	rl.RequestsPerSecond = cfg.RateLimitRPS
	rl.BurstSize = cfg.RateLimitBurst
	apiV1 := e.Group("/api/v1")
	apiV1.Use(middleware.RateLimit(rl))

	notifier := notification.NewManager(deps.sender, nil, logger)
	notifier.SetHistoryLimit(cfg.MailHistory)
	notification.NewHandler(notifier).RegisterRoutes(apiV1)

	clientSvc := client.NewService(repos.clients, notifier, logger)
	client.NewHandler(clientSvc).RegisterRoutes(apiV1)
	clinic.NewHandler(clinic.NewService(repos.clinics)).RegisterRoutes(apiV1)
	specialty.NewHandler(specialty.NewService(repos.specialties)).RegisterRoutes(apiV1)
	maritalstatus.NewHandler(maritalstatus.NewService(repos.maritalStatus)).RegisterRoutes(apiV1)

	dentist.NewHandler(dentist.NewService(repos.dentists, repos.clinics, repos.specialties)).RegisterRoutes(apiV1)
	consultation.NewHandler(consultation.NewService(repos.consultations, consultation.Refs{
		Clients:  repos.clients,
		Clinics:  repos.clinics,
		Dentists: repos.dentists,
	})).RegisterRoutes(apiV1)
	claim.NewHandler(claim.NewService(repos.claims, repos.consultations)).RegisterRoutes(apiV1)
	feedback.NewHandler(feedback.NewService(repos.feedback, repos.clients, repos.dentists, repos.clinics)).RegisterRoutes(apiV1)
	intakeform.NewHandler(intakeform.NewService(repos.intakeForms, repos.clients, repos.maritalStatus)).RegisterRoutes(apiV1)

	return e
}

// errorHandler renders every error as {"error": "..."}. 5xx responses are
// also logged with the request id.
func errorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		he := apperr.HTTPError(err)
		msg := fmt.Sprint(he.Message)
		if he.Code >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("request_id", c.Response().Header().Get(middleware.RequestIDHeader)).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(he.Code)
		} else {
			err = c.JSON(he.Code, map[string]string{"error": msg})
		}
		if err != nil {
			logger.Error().Err(err).Msg("write error response")
		}
	}
}

package routers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/app/delivery/http/controllers"
	"linkcare-service/internal/app/delivery/http/middlewares"
)

const (
	versionPrefix = "/v1"
	soapPath      = "/soap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	trainingController *controllers.TrainingController,
	healthController *controllers.HealthController,
	soapHandler http.Handler,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "SOAPAction", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", healthController.HealthCheck)

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)
				attachTrainingRoutes(r, trainingController)
			})
		})
	})

	router.With(middlewares.Authenticate).Post(soapPath, soapHandler.ServeHTTP)
}

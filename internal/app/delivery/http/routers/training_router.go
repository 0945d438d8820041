package routers

import (
	"github.com/go-chi/chi/v5"

	"linkcare-service/internal/app/delivery/http/controllers"
)

func attachTrainingRoutes(router chi.Router, trainingController *controllers.TrainingController) {
	router.Post("/training-summary", trainingController.TrainingSummary)
	router.Post("/compliance", trainingController.CalculateCompliance)
	router.Post("/performance", trainingController.CalculatePerformance)
}

package contracts

import (
	"context"

	"linkcare-service/internal/pkg/dto/requests"
	"linkcare-service/internal/pkg/dto/responses"
)

type TrainingUsecase interface {
	TrainingSummary(ctx context.Context, request *requests.TrainingSummary) (*responses.TrainingSummaryReport, error)
	CalculateCompliance(ctx context.Context, request *requests.Compliance) (int, error)
	CalculatePerformance(ctx context.Context, request *requests.Performance) (string, error)
}

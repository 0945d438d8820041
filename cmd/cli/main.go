package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/app/drivers/database"
	"linkcare-service/internal/app/drivers/logger"
	"linkcare-service/internal/app/services/core/training"
	"linkcare-service/internal/app/services/shared/archive"
	"linkcare-service/internal/app/services/shared/jwtmanager"
	"linkcare-service/internal/app/services/shared/locker"
	"linkcare-service/internal/app/services/shared/publisher"
	"linkcare-service/internal/app/services/shared/redis"
	"linkcare-service/internal/app/services/shared/session"
	"linkcare-service/internal/app/services/wsapi"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/dto/requests"
	"linkcare-service/internal/pkg/dto/responses"
	"linkcare-service/internal/pkg/exceptions"
	"linkcare-service/internal/pkg/utils"
)

// app holds what every command needs once the WS-API session is open.
type app struct {
	driverConfig   *config.DriverConfig
	internalConfig *config.InternalConfig
	log            *zap.Logger
	client         *wsapi.Client
	usecase        contracts.TrainingUsecase
}

func main() {
	var useRedis bool

	rootCmd := &cobra.Command{
		Use:           "linkcare-cli",
		Short:         "Run the Linkcare training operations from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&useRedis, "redis", false, "Reuse the cached WS-API session and lock admissions through redis")

	rootCmd.AddCommand(trainingSummaryCmd(&useRedis))
	rootCmd.AddCommand(complianceCmd(&useRedis))
	rootCmd.AddCommand(performanceCmd(&useRedis))
	rootCmd.AddCommand(sessionCmd(&useRedis))
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func trainingSummaryCmd(useRedis *bool) *cobra.Command {
	request := new(requests.TrainingSummary)
	cmd := &cobra.Command{
		Use:   "training-summary",
		Short: "Write the exercise summary of an admission into its summary form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd.Context(), cmd.OutOrStdout(), *useRedis, request, func(ctx context.Context, a *app) (interface{}, error) {
				return a.usecase.TrainingSummary(ctx, request)
			})
		},
	}
	cmd.Flags().StringVar(&request.Admission, "admission", "", "Admission id")
	cmd.Flags().StringVar(&request.SummaryForm, "summary-form", "", "Id of the form receiving the summary")
	cmd.Flags().StringVar(&request.FromDate, "from", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&request.ToDate, "to", "", "Last day, YYYY-MM-DD")
	return cmd
}

func complianceCmd(useRedis *bool) *cobra.Command {
	request := new(requests.Compliance)
	cmd := &cobra.Command{
		Use:   "compliance",
		Short: "Classify the two most recent training tasks of an admission",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd.Context(), cmd.OutOrStdout(), *useRedis, request, func(ctx context.Context, a *app) (interface{}, error) {
				return a.usecase.CalculateCompliance(ctx, request)
			})
		},
	}
	cmd.Flags().StringVar(&request.Admission, "admission", "", "Admission id")
	cmd.Flags().StringVar(&request.Date, "date", time.Now().Format("2006-01-02"), "Cutoff day, YYYY-MM-DD")
	return cmd
}

func performanceCmd(useRedis *bool) *cobra.Command {
	request := new(requests.Performance)
	cmd := &cobra.Command{
		Use:   "performance",
		Short: "Rate how the training plan was followed in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd.Context(), cmd.OutOrStdout(), *useRedis, request, func(ctx context.Context, a *app) (interface{}, error) {
				return a.usecase.CalculatePerformance(ctx, request)
			})
		},
	}
	cmd.Flags().StringVar(&request.Admission, "admission", "", "Admission id")
	cmd.Flags().StringVar(&request.FromDate, "from", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&request.ToDate, "to", "", "Last day, YYYY-MM-DD")
	return cmd
}

func sessionCmd(useRedis *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Open the WS-API session of the service user and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := requestContext(cmd.Context())
			a, err := newApp(ctx, *useRedis)
			if err != nil {
				return err
			}
			defer a.log.Sync()
			return writeJSON(cmd.OutOrStdout(), a.client.Session())
		},
	}
}

func tokenCmd() *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			internalConfig := config.NewInternalConfig()
			manager, err := jwtmanager.NewJWTManager(internalConfig, zap.NewNop())
			if err != nil {
				return err
			}
			created, err := manager.CreateToken(requestContext(cmd.Context()), &jwtmanager.CreateTokenInput{Subject: subject})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
				"token":      created.Token,
				"expires_at": created.ExpiresAt,
			})
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "scheduler", "Subject of the token")
	return cmd
}

// runOperation prints the {result, ErrorMsg} answer of an operation. Failures
// are reported inside the answer, like the HTTP and SOAP surfaces do.
func runOperation(parent context.Context, out io.Writer, useRedis bool, request interface{}, fn func(ctx context.Context, a *app) (interface{}, error)) error {
	if err := utils.ValidateStruct(request); err != nil {
		return writeJSON(out, responses.OperationResponse{Result: "", ErrorMsg: exceptions.ErrorMessage(exceptions.ErrInputValidation(err))})
	}

	ctx := requestContext(parent)
	a, err := newApp(ctx, useRedis)
	if err != nil {
		return writeJSON(out, responses.OperationResponse{Result: "", ErrorMsg: exceptions.ErrorMessage(err)})
	}
	defer a.log.Sync()

	timeout := time.Duration(a.internalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = constvars.DefaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := fn(ctx, a)
	if err != nil {
		return writeJSON(out, responses.OperationResponse{Result: "", ErrorMsg: exceptions.ErrorMessage(err)})
	}
	return writeJSON(out, responses.OperationResponse{Result: result})
}

func newApp(ctx context.Context, useRedis bool) (*app, error) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	serviceLogger := logger.NewServiceLogger(driverConfig, internalConfig)

	var sessionStore contracts.SessionStore
	var lockerService contracts.LockerService
	if useRedis {
		redisRepository := redis.NewRedisRepository(database.NewRedisClient(driverConfig, zapLogger))
		sessionTTL := time.Duration(internalConfig.App.SessionCacheTTLInMinutes) * time.Minute
		sessionStore = session.NewSessionStore(redisRepository, sessionTTL, zapLogger)
		lockerService = locker.NewLockService(redisRepository, zapLogger)
	}

	client, err := wsapi.Connect(ctx,
		wsapi.NewConnectOptions(internalConfig.WSAPI),
		sessionStore,
		zapLogger,
		serviceLogger,
		wsapi.WithStatusClassifier(internalConfig.TaskStatus.StatusSets()),
	)
	if err != nil {
		return nil, err
	}

	usecase := training.NewTrainingUsecase(
		client,
		lockerService,
		publisher.NewNoopPublisher(zapLogger),
		archive.NewNoopArchive(),
		internalConfig,
		zapLogger,
	)

	return &app{
		driverConfig:   driverConfig,
		internalConfig: internalConfig,
		log:            zapLogger,
		client:         client,
		usecase:        usecase,
	}, nil
}

func requestContext(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithValue(parent, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
}

func writeJSON(out io.Writer, value interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/pkg/utils"
)

const serviceLogFileFormat = "%s-log.log"

// NewServiceLogger opens the daily log of remote service failures, one file
// per day under the service log directory. When the file cannot be opened
// the entries go to stderr.
func NewServiceLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})

	fileName, err := serviceLogFile(driverConfig.Logger.ServiceLogDirectory, internalConfig.App.Timezone, time.Now())
	if err != nil {
		logger.WithError(err).Warn("Failed to prepare service log directory, using default stderr")
		return logger
	}

	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.WithError(err).Warn("Failed to log to file, using default stderr")
		return logger
	}
	logger.SetOutput(file)
	return logger
}

func serviceLogFile(directory, timezone string, now time.Time) (string, error) {
	if directory == "" {
		directory = "logs"
	}
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", err
	}
	day := now.In(utils.ResolveTimezone(timezone)).Format("2006-01-02")
	return filepath.Join(directory, fmt.Sprintf(serviceLogFileFormat, day)), nil
}

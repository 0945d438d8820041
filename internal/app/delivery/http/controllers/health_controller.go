package controllers

import (
	"net/http"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/pkg/constvars"
	"linkcare-service/internal/pkg/dto/responses"
	"linkcare-service/internal/pkg/utils"
	"linkcare-service/internal/pkg/wsapi_dto"
)

// SessionHolder exposes the session of the WS-API client.
type SessionHolder interface {
	Session() *wsapi_dto.Session
}

type HealthController struct {
	Sessions       SessionHolder
	InternalConfig *config.InternalConfig
}

func NewHealthController(sessions SessionHolder, internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		Sessions:       sessions,
		InternalConfig: internalConfig,
	}
}

func (ctrl *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	sessionOK := false
	if ctrl.Sessions != nil {
		if session := ctrl.Sessions.Session(); session != nil && session.Token != "" {
			sessionOK = true
		}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.HealthCheck{
		Status:    "ok",
		Version:   ctrl.InternalConfig.App.Version,
		SessionOK: sessionOK,
	})
}

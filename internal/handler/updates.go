package handler

import (
	"context"
	"net/http"

	"github.com/osse101/PluginKit_Go/internal/updatecheck"
)

// UpdateService is the part of the update checker the update routes need
type UpdateService interface {
	Status() updatecheck.Status
	CheckNow(ctx context.Context) error
}

// HandleUpdateStatus returns the checker's last known state
func HandleUpdateStatus(svc UpdateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Status())
	}
}

// HandleUpdateCheck runs one check right away and returns the new state
func HandleUpdateCheck(svc UpdateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CheckNow(r.Context()); err != nil {
			respondServiceError(w, r, err)
			return
		}
		status := svc.Status()
		logFromRequest(r).Info(LogMsgUpdateCheckDone,
			"last_version", status.LastVersion,
			"update_required", status.UpdateRequired)
		respondJSON(w, http.StatusOK, status)
	}
}

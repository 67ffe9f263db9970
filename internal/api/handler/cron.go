package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payout-insights-api/internal/scheduler"
	"github.com/vfg2006/payout-insights-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshot = "snapshot"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	SnapshotRefreshService *scheduler.SnapshotRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshot, CronJobTypeAll:
			if services.SnapshotRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de snapshot não disponível", nil)
				return
			}
			if !services.SnapshotRefreshService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrConflict, "Atualização de snapshot já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedOperation, "Tipo de cron job inválido. Valores aceitos: snapshot, all", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SnapshotRefreshService != nil {
			status[CronJobTypeSnapshot] = services.SnapshotRefreshService.GetStatus()
		}

		writeJSON(w, status)
	}
}

package api

import (
	"net/http"
	"time"

	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/db"
	"pyc-official/secretariat/internal/models/entities"
)

// HealthCheck reports the status of every backing service. Degraded
// dependencies flip the top-level status but the endpoint still answers 200
// so probes can read the detail.
func (h *Handlers) HealthCheck(upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		services := map[string]entities.ServiceStatus{
			"postgres_orm":  h.checkORM(),
			"postgres_sqlx": h.checkSqlx(),
			"redis":         h.checkRedis(r),
		}

		status := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				status = "degraded"
				break
			}
		}

		common.RespondSuccess(w, initTime, "", entities.HealthCheckResponse{
			Status:   status,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
			Services: services,
		})
	}
}

func (h *Handlers) checkORM() entities.ServiceStatus {
	if db.PgDB == nil {
		return entities.ServiceStatus{Status: "down", Details: "not initialized"}
	}
	sqlDB, err := db.PgDB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return entities.ServiceStatus{Status: "down", Details: err.Error()}
	}
	return entities.ServiceStatus{Status: "ok"}
}

func (h *Handlers) checkSqlx() entities.ServiceStatus {
	if db.DB == nil {
		return entities.ServiceStatus{Status: "down", Details: "not initialized"}
	}
	if err := db.DB.Ping(); err != nil {
		return entities.ServiceStatus{Status: "down", Details: err.Error()}
	}
	return entities.ServiceStatus{Status: "ok"}
}

func (h *Handlers) checkRedis(r *http.Request) entities.ServiceStatus {
	if h.deps.Redis == nil {
		return entities.ServiceStatus{Status: "down", Details: "not initialized"}
	}
	if err := h.deps.Redis.Ping(r.Context()).Err(); err != nil {
		return entities.ServiceStatus{Status: "down", Details: err.Error()}
	}
	return entities.ServiceStatus{Status: "ok"}
}

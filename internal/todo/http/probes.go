package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/todolist/pkg/httpx"
	"github.com/aussiebroadwan/todolist/pkg/todosdk"
)

// Pinger is satisfied by the persistence store and the session stores.
type Pinger interface {
	Ping(ctx context.Context) error
}

// probe builds health responses for one process.
type probe struct {
	startTime time.Time
	version   string
}

func (p probe) health(status string, checks *todosdk.HealthChecks) todosdk.HealthResponse {
	return todosdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(p.startTime).Truncate(time.Second).String(),
		Version: p.version,
		Checks:  checks,
	}
}

// checkStatus reports "ok" or the ping error of one dependency.
func checkStatus(ctx context.Context, dep Pinger) (string, bool) {
	if err := dep.Ping(ctx); err != nil {
		return "error: " + err.Error(), false
	}
	return "ok", true
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	todosdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	p := probe{startTime: startTime, version: version}
	return func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, p.health("ok", nil))
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and the session store
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	todosdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	todosdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, db, sessions Pinger) http.HandlerFunc {
	p := probe{startTime: startTime, version: version}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		dbStatus, dbOK := checkStatus(ctx, db)
		sessStatus, sessOK := checkStatus(ctx, sessions)

		status, code := "ok", http.StatusOK
		if !dbOK || !sessOK {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		httpx.WriteJSON(w, code, p.health(status, &todosdk.HealthChecks{
			Database: dbStatus,
			Sessions: sessStatus,
		}))
	}
}

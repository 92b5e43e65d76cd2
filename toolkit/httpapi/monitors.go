package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"seokit/toolkit/application"
	"seokit/toolkit/domain"
	"seokit/toolkit/infra"
)

func (a *API) handleJob(w http.ResponseWriter, r *http.Request) {
	snap, ok := a.jobs.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "job not found", "id")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (a *API) handleMonitorStart(w http.ResponseWriter, r *http.Request) {
	var in domain.MonitorRequest
	if err := decodeJSON(w, r, &in); err != nil {
		a.fail(w, r, err)
		return
	}
	u, err := application.ParseHTTPURL("monitor", in.URL)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if in.IntervalSeconds < 0 {
		a.fail(w, r, domain.Invalid("monitor", "interval_seconds", domain.ErrInvalidNumber))
		return
	}

	interval := max(time.Duration(in.IntervalSeconds)*time.Second, a.minMonitor)
	target := u.String()
	gen := a.kit.Gen
	check := func(context.Context) (domain.ServerStatus, error) {
		return gen.ServerStatus(target)
	}

	id, err := a.monitors.Start(a.baseCtx, target, interval, check)
	if errors.Is(err, infra.ErrTooManyMonitors) {
		writeError(w, http.StatusTooManyRequests, err.Error(), "")
		return
	}
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.log.Info("monitor started", zap.String("id", id), zap.String("url", target), zap.Duration("interval", interval))

	snap, _ := a.monitors.Get(id)
	w.Header().Set("Location", "/api/monitors/"+id)
	writeJSON(w, http.StatusCreated, snap)
}

func (a *API) handleMonitorGet(w http.ResponseWriter, r *http.Request) {
	snap, ok := a.monitors.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "monitor not found", "id")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (a *API) handleMonitorStop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, ok := a.monitors.Stop(id)
	if !ok {
		writeError(w, http.StatusNotFound, "monitor not found", "id")
		return
	}
	a.log.Info("monitor stopped", zap.String("id", id), zap.Int("checks", snap.Checks))
	writeJSON(w, http.StatusOK, snap)
}

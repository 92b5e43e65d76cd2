package httpapi

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"seokit/toolkit/application"
	"seokit/toolkit/domain"
	"seokit/toolkit/infra"
)

func (a *API) registerTools(r chi.Router) {
	k := a.kit

	r.Post("/rewrite", handleTool(a, k.Rewrite()))
	r.Post("/reverse", handleTool(a, k.Reverse()))
	r.Post("/canonical-url", handleTool(a, k.CanonicalURL()))
	r.Post("/readability", handleTool(a, k.Readability()))
	r.Post("/uniqueness", handleTool(a, k.Uniqueness()))
	r.Post("/hashtags", handleTool(a, k.Hashtags()))

	r.Post("/dns", handleTool(a, k.DNS()))
	r.Post("/backlinks", handleTool(a, k.Backlinks()))
	r.Get("/backlinks/{domain}/export.xlsx", a.handleBacklinksExport)
	r.Post("/hosting", handleTool(a, k.Hosting()))
	r.Post("/server-status", handleTool(a, k.ServerStatus()))
	r.Post("/domain-age", handleTool(a, k.DomainAge()))
	r.Post("/authority", handleTool(a, k.Authority()))
	r.Post("/authority-bulk", handleTool(a, k.BulkAuthority()))
	r.Post("/open-graph", handleTool(a, k.OpenGraph()))
	r.Post("/open-graph-parse", handleTool(a, k.OpenGraphParse()))

	earnings := k.Earnings()
	r.Post("/youtube-earnings", handleTool(a, earnings))
	r.Get("/youtube-earnings", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		in := domain.EarningsInput{
			DailyViews: q.Get("daily_views"),
			CPMLow:     q.Get("cpm_low"),
			CPMHigh:    q.Get("cpm_high"),
		}
		runTool(a, w, r, earnings, in)
	})

	r.Post("/user-agent", handleTool(a, k.UserAgent()))
	r.Get("/browser", a.handleBrowser)
}

// handleTool adapta qualquer Operation a um handler JSON.
func handleTool[In, Out any](a *API, op application.Operation[In, Out]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := decodeJSON(w, r, &in); err != nil {
			a.fail(w, r, err)
			return
		}
		if isAsync(r) {
			startJob(a, w, r, op, in)
			return
		}
		runTool(a, w, r, op, in)
	}
}

func runTool[In, Out any](a *API, w http.ResponseWriter, r *http.Request, op application.Operation[In, Out], in In) {
	out, err := op.Run(r.Context(), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// startJob valida na hora (erro de validação bloqueia a submissão) e deixa
// o resto rodar em background, no contexto do processo.
func startJob[In, Out any](a *API, w http.ResponseWriter, r *http.Request, op application.Operation[In, Out], in In) {
	if op.Validate != nil {
		if err := op.Validate(in); err != nil {
			a.fail(w, r, err)
			return
		}
	}
	id, task, ok := a.jobs.Submit(func() *application.Task { return op.Start(a.baseCtx, in) })
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "too many pending jobs", "")
		return
	}
	snap := task.Snapshot()
	snap.ID = id
	w.Header().Set("Location", "/api/jobs/"+id)
	writeJSON(w, http.StatusAccepted, snap)
}

func isAsync(r *http.Request) bool {
	v := r.URL.Query().Get("async")
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func (a *API) handleBrowser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, application.InspectBrowser(r.Header.Get, a.clientIP(r)))
}

// handleBacklinksExport é o "download" do relatório em XLSX.
func (a *API) handleBacklinksExport(w http.ResponseWriter, r *http.Request) {
	op := a.kit.Backlinks()
	rep, err := op.Run(r.Context(), domain.DomainRequest{Domain: chi.URLParam(r, "domain")})
	if err != nil {
		a.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := infra.WriteBacklinksXLSX(&buf, rep); err != nil {
		a.log.Error("xlsx export failed", zap.String("domain", rep.Domain), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "export failed", "")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="backlinks-`+rep.Domain+`.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

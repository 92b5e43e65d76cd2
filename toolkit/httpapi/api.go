package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	quotadomain "seokit/middleware/quota/domain"
	"seokit/toolkit/application"
	"seokit/toolkit/infra"
)

// Deps reúne tudo que o roteador precisa; nada é global.
type Deps struct {
	Toolkit  application.Toolkit
	Jobs     *infra.JobStore
	Monitors *infra.MonitorRegistry
	// MonitorMinInterval é o menor intervalo aceito para monitores.
	MonitorMinInterval time.Duration
	// Usage é opcional; sem ele /api/usage responde 404.
	Usage quotadomain.UsageReader
	// ToolMiddleware envolve só as rotas /api/tools (ex.: cota).
	ToolMiddleware func(http.Handler) http.Handler
	// ClientIP resolve o IP do cliente para o inspetor de navegador.
	ClientIP func(*http.Request) string
	Logger   *zap.Logger
	// BaseContext é o ciclo de vida do processo para jobs e monitores.
	BaseContext context.Context
}

type API struct {
	kit        application.Toolkit
	jobs       *infra.JobStore
	monitors   *infra.MonitorRegistry
	minMonitor time.Duration
	usage      quotadomain.UsageReader
	clientIP   func(*http.Request) string
	log        *zap.Logger
	baseCtx    context.Context
}

func New(d Deps) *API {
	a := &API{
		kit:        d.Toolkit,
		jobs:       d.Jobs,
		monitors:   d.Monitors,
		minMonitor: d.MonitorMinInterval,
		usage:      d.Usage,
		clientIP:   d.ClientIP,
		log:        d.Logger,
		baseCtx:    d.BaseContext,
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if a.baseCtx == nil {
		a.baseCtx = context.Background()
	}
	if a.jobs == nil {
		a.jobs = infra.NewJobStore()
	}
	if a.monitors == nil {
		a.monitors = infra.NewMonitorRegistry(50, application.DefaultMonitorHistory)
	}
	if a.minMonitor <= 0 {
		a.minMonitor = time.Second
	}
	if a.clientIP == nil {
		a.clientIP = func(r *http.Request) string { return r.RemoteAddr }
	}
	return a
}

// Router monta as rotas. toolMW pode ser nil.
func (a *API) Router(toolMW func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(a.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/tools", func(r chi.Router) {
			if toolMW != nil {
				r.Use(toolMW)
			}
			a.registerTools(r)
		})
		r.Get("/jobs/{id}", a.handleJob)

		r.Post("/monitors", a.handleMonitorStart)
		r.Get("/monitors/{id}", a.handleMonitorGet)
		r.Delete("/monitors/{id}", a.handleMonitorStop)

		r.Get("/usage", a.handleUsage)
	})
	return r
}

// Handler é o atalho usado pelo binário.
func Handler(d Deps) http.Handler {
	return New(d).Router(d.ToolMiddleware)
}

// toolNames são as ferramentas montadas em registerTools.
var toolNames = map[string]bool{
	"rewrite": true, "reverse": true, "canonical-url": true, "readability": true,
	"uniqueness": true, "hashtags": true, "dns": true, "backlinks": true,
	"hosting": true, "server-status": true, "domain-age": true, "authority": true,
	"authority-bulk": true, "open-graph": true, "open-graph-parse": true,
	"youtube-earnings": true, "user-agent": true, "browser": true,
}

// ToolName extrai a ferramenta de /api/tools/{tool}/..., para estatísticas.
// Ferramentas desconhecidas devolvem "" e não são contadas.
func ToolName(r *http.Request) string {
	rest, ok := strings.CutPrefix(r.URL.Path, "/api/tools/")
	if !ok {
		return ""
	}
	tool, _, _ := strings.Cut(rest, "/")
	if !toolNames[tool] {
		return ""
	}
	return tool
}

func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (a *API) handleUsage(w http.ResponseWriter, r *http.Request) {
	if a.usage == nil {
		writeError(w, http.StatusNotFound, "usage stats are disabled", "")
		return
	}
	byTool, err := a.usage.ByTool(r.Context())
	if err != nil {
		a.log.Warn("usage read failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "usage stats unavailable", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tools": byTool})
}

package quota

import (
	"net"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"seokit/middleware/quota/application"
	"seokit/middleware/quota/domain"
)

type KeyFunc func(r *http.Request) string

// ToolFunc diz qual ferramenta a requisição usa, para as estatísticas.
// "" significa que a requisição não é contada.
type ToolFunc func(r *http.Request) string

type Options struct {
	Store              domain.BucketStore
	Usage              domain.UsageRecorder
	KeyFn              KeyFunc
	ToolFn             ToolFunc
	KeyHeader          string
	TrustXForwardedFor bool
	RejectStatus       int
	RetryAfter         time.Duration
	AddQuotaHeaders    bool
	OnReject           func(w http.ResponseWriter, r *http.Request, dec domain.Decision)
}

type rateInfo interface {
	RPS() float64
	Burst() int
}

func DefaultKeyFunc(keyHeader string, trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if keyHeader != "" {
			if v := strings.TrimSpace(r.Header.Get(keyHeader)); v != "" {
				return v
			}
		}
		if trustXFF {
			if ip := firstForwarded(r.Header.Get("X-Forwarded-For")); ip != "" {
				return ip
			}
		}
		return remoteHost(r)
	}
}

// ClientIP é a mesma regra de DefaultKeyFunc sem o header de chave.
func ClientIP(r *http.Request, trustXFF bool) string {
	return DefaultKeyFunc("", trustXFF)(r)
}

// primeiro IP do X-Forwarded-For (cliente original)
func firstForwarded(xff string) string {
	first, _, _ := strings.Cut(xff, ",")
	return strings.TrimSpace(first)
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// LastSegmentTool usa o último segmento do path como nome da ferramenta.
// A raiz não tem ferramenta e devolve "".
func LastSegmentTool(r *http.Request) string {
	p := strings.TrimSuffix(r.URL.Path, "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}

// Middleware aplica a cota por cliente e registra o uso por ferramenta.
func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}
	if opts.RetryAfter == 0 {
		opts.RetryAfter = time.Second
	}
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc(opts.KeyHeader, opts.TrustXForwardedFor)
	}
	if opts.ToolFn == nil {
		opts.ToolFn = LastSegmentTool
	}

	svc := application.Service{
		Store:      opts.Store,
		RetryAfter: opts.RetryAfter,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)
			dec := svc.Decide(domain.ClientKey(key))

			if opts.AddQuotaHeaders {
				w.Header().Set("X-Quota-Key", key)
				if ri, ok := opts.Store.(rateInfo); ok {
					w.Header().Set("X-Quota-RPS", strconv.FormatFloat(ri.RPS(), 'f', -1, 64))
					w.Header().Set("X-Quota-Burst", strconv.Itoa(ri.Burst()))
				}
				if dec.Remaining >= 0 {
					w.Header().Set("X-Quota-Remaining", strconv.Itoa(dec.Remaining))
				}
			}

			// ferramenta vazia (rota desconhecida) não entra nas estatísticas
			if tool := opts.ToolFn(r); opts.Usage != nil && tool != "" {
				_ = opts.Usage.Record(r.Context(), domain.UsageEvent{
					Client:  domain.ClientKey(key),
					Tool:    tool,
					Allowed: dec.Allowed,
					At:      time.Now(),
				})
			}

			if !dec.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(dec.RetryAfter.Seconds())))
				if opts.OnReject != nil {
					opts.OnReject(w, r, dec)
					return
				}
				http.Error(w, http.StatusText(opts.RejectStatus), opts.RejectStatus)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

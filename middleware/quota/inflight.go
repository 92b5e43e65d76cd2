package quota

import (
	"net/http"
	"time"

	"seokit/middleware/quota/application"
	"seokit/middleware/quota/infra"
)

type InFlightOptions struct {
	Max            int
	RejectStatus   int
	AcquireTimeout time.Duration
	OnReject       func(w http.ResponseWriter, r *http.Request)
}

// InFlight limita quantas requisições rodam ao mesmo tempo. Max <= 0 desliga.
func InFlight(opts InFlightOptions) func(next http.Handler) http.Handler {
	if opts.Max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusServiceUnavailable
	}

	svc := application.InFlightService{
		Slots:          infra.NewSemaphore(opts.Max),
		AcquireTimeout: opts.AcquireTimeout,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			release, ok := svc.Acquire(r.Context())
			if !ok {
				if opts.OnReject != nil {
					opts.OnReject(w, r)
					return
				}
				http.Error(w, http.StatusText(opts.RejectStatus), opts.RejectStatus)
				return
			}
			defer release()

			next.ServeHTTP(w, r)
		})
	}
}

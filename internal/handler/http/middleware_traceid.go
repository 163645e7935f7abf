package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/exo-explorer/internal/utils"
)

// withTraceID reuses the X-Trace-ID sent by the client, or mints one, and
// attaches a child logger carrying it to the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx := utils.WithTraceID(l.WithContext(r.Context()), traceID)

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.opentelemetry.io/otel/trace"

	"github.com/pratik-mahalle/fraudguard/internal/pkg/errors"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/logger"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/tracing"
	"github.com/pratik-mahalle/fraudguard/internal/pkg/utils"
)

// Recovery turns a handler panic into a 500 envelope. The panic value and
// stack go to the log and the request span only.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err := fmt.Errorf("panic: %v", rec)
				tracing.RecordError(trace.SpanFromContext(r.Context()), err)
				log.WithFields(map[string]interface{}{
					"stack":      string(debug.Stack()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": GetRequestID(r),
				}).ErrorWithErr(err, "Panic recovered")

				utils.WriteError(w, errors.Internal("Internal server error", err))
			}()

			next.ServeHTTP(w, r)
		})
	}
}

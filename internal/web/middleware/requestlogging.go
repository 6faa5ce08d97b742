package middleware

import (
	"net/http"
	"time"

	aulogging "github.com/StephanHCB/go-autumn-logging"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func RequestLoggerMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		method := r.Method
		path := r.URL.EscapedPath()
		aulogging.Logger.Ctx(ctx).Info().Printf("received request %s %s", method, path)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		defer func() {
			elapsed := time.Since(start).Milliseconds()
			aulogging.Logger.Ctx(ctx).Info().Printf("request %s %s -> %d (%d ms)", method, path, recorder.status, elapsed)
		}()

		next.ServeHTTP(recorder, r)
	}
	return http.HandlerFunc(fn)
}

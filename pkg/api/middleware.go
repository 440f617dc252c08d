package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mpapenbr/f1-history-service-go/log"
)

const requestIDHeader = "X-Request-Id"

// withRequestID assigns every request an id unless the client sent one.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)
		ctx := log.AddToContext(r.Context(), s.l.With(log.String("reqId", reqID)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (s *Server) withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.l.Debug("request",
			log.String("method", r.Method),
			log.String("path", r.URL.Path),
			log.Int("status", rec.status),
			log.Duration("duration", time.Since(start)))
	})
}

// requireAdmin guards the data modifying routes. An empty configured
// token disables them.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.adminToken == "" ||
			r.Header.Get("Authorization") != "Bearer "+s.adminToken {
			s.writeJSON(w, http.StatusForbidden,
				errorDTO{Error: "not allowed"})
			return
		}
		next(w, r)
	}
}

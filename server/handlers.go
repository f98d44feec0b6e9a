package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/verdex-org/verdex/engine"
)

// ============================================================================
// Routes
// ============================================================================
// Every engine op is served under /api/<op>. Payloads are the op's data
// shape, not the Result envelope — the wire format the dashboards consume.
// ============================================================================

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	for _, op := range engine.Ops() {
		mux.HandleFunc("/api/"+op, s.opHandler(op))
	}
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// multiValues reads a multi-valued parameter in its three accepted
// spellings: repeated ?name=a&name=b, bracketed ?name[]=a, and
// comma-joined ?name=a,b.
func multiValues(q url.Values, name string) []string {
	var out []string
	raw := append(append([]string(nil), q[name]...), q[name+"[]"]...)
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func queryOf(q url.Values) engine.Query {
	return engine.Query{
		Plants:           multiValues(q, "plants"),
		RootTypes:        multiValues(q, "rootSystem"),
		RootDepths:       multiValues(q, "rootDepth"),
		GrowthForms:      multiValues(q, "growthForm"),
		StressTolerances: multiValues(q, "stressTolerance"),
		Vegetable:        multiValues(q, "vegetable"),
		Usage:            multiValues(q, "usage"),
	}
}

func (s *Server) opHandler(op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		q := r.URL.Query()
		req := engine.Request{
			Op:       op,
			Query:    queryOf(q),
			Q:        q.Get("q"),
			Category: q.Get("category"),
			Plant:    q.Get("plant"),
			Plants:   multiValues(q, "plants"),
			Mode:     q.Get("mode"),
		}
		if k := q.Get("k"); k != "" {
			if n, err := strconv.Atoi(k); err == nil {
				req.K = n
			}
		}

		result, err := engine.Execute(s.ectx, req)
		if err != nil {
			s.logger.Error("op failed",
				zap.String("op", op),
				zap.String("request_id", RequestID(r.Context())),
				zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, result.Data)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"plants": s.ectx.Catalog().Len(),
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

// writeJSON marshals v and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing useful left to send.
		_ = err
	}
}

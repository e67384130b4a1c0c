package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// NewRouter wires every engine operation under /api, all rate-limited
// by the same IPRateLimiter middleware. There is no /auth, /profile or
// /docs surface, since the engine has no accounts.
func NewRouter(env *Env, requestsPerSecond rate.Limit, burst int) http.Handler {
	r := mux.NewRouter()
	limiter := NewIPRateLimiter(requestsPerSecond, burst)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.Middleware)

	api.HandleFunc("/solve", env.Solve).Methods("POST")
	api.HandleFunc("/solve_element", env.SolveElement).Methods("POST")
	api.HandleFunc("/compliance", env.Compliance).Methods("POST")
	api.HandleFunc("/compliance_pdf", env.CompliancePDF).Methods("POST")
	api.HandleFunc("/max_ppm", env.MaxPPM).Methods("POST")

	return CORS(r)
}

// CORS allows any origin: this is a compute API with no cookies to
// protect, so an open origin is fine.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

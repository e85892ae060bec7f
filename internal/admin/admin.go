package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewRouter serves /metrics from g and a /healthz liveness probe.
func NewRouter(g prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"path": r.URL.Path}).Debug("Error writing health response")
		}
	}).Methods(http.MethodGet)

	return r
}

// Start serves handler on addr in the background.
func Start(addr string, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logrus.WithFields(logrus.Fields{"addr": addr}).Info("Admin listener started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).WithFields(logrus.Fields{"addr": addr}).Error("Admin listener stopped")
		}
	}()

	return srv
}

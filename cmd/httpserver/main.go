package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/nhdewitt/http-echo/internal/admin"
	"github.com/nhdewitt/http-echo/internal/config"
	"github.com/nhdewitt/http-echo/internal/logging"
	"github.com/nhdewitt/http-echo/internal/metrics"
	"github.com/nhdewitt/http-echo/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	logging.Setup(cfg.LogFormat, cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	if cfg.AdminAddr != "" {
		adminSrv := admin.Start(cfg.AdminAddr, admin.NewRouter(reg))
		defer adminSrv.Close()
	}

	srv, err := server.Serve(cfg.Port, server.EchoHandler,
		server.WithReadBufferSize(cfg.ReadBuffer),
		server.WithMetrics(m),
	)
	if err != nil {
		logrus.WithError(err).Fatal("Error starting server")
	}
	defer srv.Close()
	logrus.WithFields(logrus.Fields{"port": cfg.Port}).Infof("Server listening on port %d", cfg.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logrus.Info("Server stopped")
}

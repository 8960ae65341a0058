package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/mserignese/gopro-control/internal/client"
	"github.com/mserignese/gopro-control/internal/config"
	"github.com/mserignese/gopro-control/internal/keepalive"
	"github.com/mserignese/gopro-control/pkg/models"
)

// Variables to hold flag values
var (
	expPort       string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit    chan struct{}
	cancel  context.CancelFunc
	server  *http.Server
	session *config.Session
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	logger := slog.Default()

	// The camera only answers while it receives heartbeats, so the
	// exporter runs the keepalive loop for the whole service lifetime.
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	loop := keepalive.New(keepalive.Addr(p.session.IPAddr), p.session.KeepalivePeriod, logger)
	go loop.Run(ctx)

	api := newClient(p.session)

	registry := prometheus.NewRegistry()
	collector := &GoProCollector{Client: api, Keepalive: loop}
	registry.MustRegister(collector)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelError),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expPort)
	p.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	logger.Info("exporter listening", "addr", addr, "camera", p.session.IPAddr)

	// Blocking call to listen
	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("http server error", "error", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	slog.Default().Info("stopping exporter")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			slog.Default().Warn("server forced to shutdown", "error", err)
		}
	}
	if p.cancel != nil {
		p.cancel()
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR LOGIC ---

// GoProCollector scrapes the camera's status on every Prometheus pull.
type GoProCollector struct {
	Client    *client.GoProClient
	Keepalive *keepalive.Loop
	Mutex     sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"gopro_up", "Was the last status scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"gopro_scrape_duration_seconds", "Time taken to scrape the camera.", nil, nil,
	)
	batteryDesc = prometheus.NewDesc(
		"gopro_battery_level_percent", "Battery percent reported by the camera.", nil, nil,
	)
	recordingDesc = prometheus.NewDesc(
		"gopro_recording", "Whether the shutter is currently open.", nil, nil,
	)
	keepaliveDesc = prometheus.NewDesc(
		"gopro_keepalive_packets_total", "Heartbeat datagrams sent to the camera.", nil, nil,
	)
)

func (c *GoProCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- batteryDesc
	ch <- recordingDesc
	ch <- keepaliveDesc
}

func (c *GoProCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	if status, err := c.Client.Status(); err == nil {
		if battery, ok := status.Status[models.StatusFieldBattery]; ok {
			if v, err := battery.Float64(); err == nil {
				ch <- prometheus.MustNewConstMetric(batteryDesc, prometheus.GaugeValue, v)
			}
		}
		if recording, ok := status.Status[models.StatusFieldRecording]; ok {
			if v, err := recording.Float64(); err == nil {
				ch <- prometheus.MustNewConstMetric(recordingDesc, prometheus.GaugeValue, v)
			}
		}
	} else {
		success = 0.0
		slog.Default().Warn("status scrape failed", "error", err)
	}

	ch <- prometheus.MustNewConstMetric(keepaliveDesc, prometheus.CounterValue, float64(c.Keepalive.Sent()))
	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

// --- COMMAND ---

// exporterCmd represents the Prometheus exporter service
var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus exporter service",
	Long: `Starts a long-running HTTP server that exposes camera metrics and
keeps the camera session alive. Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		session := loadSession()

		// Arguments passed to the binary when run as a service
		svcArgs := []string{"exporter", "--port", expPort}
		if cfgFile != "" {
			svcArgs = append(svcArgs, "--config", cfgFile)
		}

		svcConfig := &service.Config{
			Name:        "gopro-exporter",
			DisplayName: "GoPro Prometheus Exporter",
			Description: "Exposes GoPro camera metrics to Prometheus",
			Arguments:   svcArgs,
		}

		prg := &program{
			session: session,
		}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			fmt.Printf("Error creating service: %v\n", err)
			os.Exit(1)
		}

		// Handle Service Control Actions (Install, Start, Stop, Uninstall)
		if serviceAction != "" {
			if err := service.Control(s, serviceAction); err != nil {
				fmt.Printf("Failed to %s service: %v\n", serviceAction, err)
				os.Exit(1)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// Run the Service (Blocking). This happens when the service
		// manager starts the binary, or when run interactively.
		if err := s.Run(); err != nil {
			slog.Default().Error("service run failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)

	exporterCmd.Flags().StringVar(&expPort, "port", "9101", "Port to listen on")
	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}

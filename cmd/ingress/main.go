package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/quic-go/ingress"
	"github.com/quic-go/ingress/internal/logutils"
	"github.com/quic-go/ingress/logging"
	"github.com/quic-go/ingress/metrics"
	"github.com/quic-go/ingress/qlog"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ingress: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ingress", flag.ContinueOnError)
	configFile := fs.String("config", "", "path to a TOML configuration file")
	replayFile := fs.String("replay", "", "replay the UDP datagrams of a pcap file instead of listening")
	listen := fs.String("listen", "", "UDP address to listen on")
	handler := fs.String("handler", "", "name of this ingress handler")
	tokenSecret := fs.String("token-secret", "", "hex-encoded secret protecting Retry tokens")
	connIDSecret := fs.String("conn-id-secret", "", "hex-encoded secret used to derive connection IDs")
	trace := fs.Bool("trace", false, "log the outcome of every packet")
	workers := fs.Int("workers", 0, "number of triage workers")
	metricsAddr := fs.String("metrics", "", "address to serve Prometheus metrics on")
	qlogFile := fs.String("qlog", "", "write triage events to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = loadConfig(*configFile); err != nil {
			return err
		}
	}
	// flags take precedence over the configuration file
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			cfg.Listen = *listen
		case "handler":
			cfg.Handler = *handler
		case "token-secret":
			if s, err := parseSecret(*tokenSecret); err != nil {
				flagErr = fmt.Errorf("parse token-secret: %w", err)
			} else {
				cfg.TokenSecret = s
			}
		case "conn-id-secret":
			if s, err := parseSecret(*connIDSecret); err != nil {
				flagErr = fmt.Errorf("parse conn-id-secret: %w", err)
			} else {
				cfg.ConnIDSecret = s
			}
		case "trace":
			cfg.Trace = *trace
		case "workers":
			cfg.Workers = *workers
		case "metrics":
			cfg.MetricsAddr = *metricsAddr
		case "qlog":
			cfg.Qlog = *qlogFile
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	logger := logutils.DefaultLogger.With(logutils.ComponentKey, "main")

	tracer, err := newTracer(cfg.Qlog)
	if err != nil {
		return err
	}
	defer tracer.Close()

	if *replayFile != "" {
		return runReplay(*replayFile, cfg, tracer, logger)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, cfg, tracer, logger)
}

func newTracer(qlogFile string) (*logging.Tracer, error) {
	tracers := []*logging.Tracer{metrics.NewTracer()}
	if qlogFile != "" {
		f, err := os.Create(qlogFile)
		if err != nil {
			return nil, fmt.Errorf("creating qlog file: %w", err)
		}
		tracers = append(tracers, qlog.NewTracer(f))
	}
	t := logging.NewMultiplexedTracer(tracers...)
	if t.Close == nil {
		t.Close = func() {}
	}
	return t, nil
}

func newRegistry(cfg cmdConfig, logger *slog.Logger) *ingress.Registry {
	var registry *ingress.Registry
	registry = ingress.NewRegistry(func(addr net.Addr, _, destConnID, _ ingress.ConnectionID) (ingress.PacketHandler, error) {
		return newConn(destConnID, addr, cfg.IdleTimeout, logger.With(logutils.ComponentKey, "conn"), registry.Remove), nil
	}, logger)
	return registry
}

func newPool(cfg cmdConfig, transport ingress.Transport, registry ingress.ConnectionRegistry, tracer *logging.Tracer) (*ingress.Pool, error) {
	return ingress.NewPool(&ingress.Config{
		Handler:         cfg.Handler,
		Transport:       transport,
		Registry:        registry,
		TokenSecret:     cfg.TokenSecret,
		ConnIDSecret:    cfg.ConnIDSecret,
		Trace:           cfg.Trace,
		DispatchTimeout: cfg.DispatchTimeout,
		QueueSize:       cfg.QueueSize,
		TokenValidity:   cfg.TokenValidity,
		Tracer:          tracer,
	}, cfg.Workers)
}

func serve(ctx context.Context, cfg cmdConfig, tracer *logging.Tracer, logger *slog.Logger) error {
	conn, err := net.ListenPacket("udp", cfg.Listen)
	if err != nil {
		return err
	}
	registry := newRegistry(cfg, logger)
	defer registry.Close()
	pool, err := newPool(cfg, ingress.NewUDPTransport(conn), registry, tracer)
	if err != nil {
		conn.Close()
		return err
	}
	defer pool.Close()

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}
	listener := ingress.NewListener(conn, pool, &ingress.ListenerConfig{Limiter: limiter})

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", conn.LocalAddr(), "workers", pool.Size(), "handler", cfg.Handler)
		return listener.Serve()
	})
	if metricsServer != nil {
		g.Go(func() error {
			logger.Info("serving metrics", "addr", cfg.MetricsAddr)
			if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		listener.Close()
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return metricsServer.Shutdown(shutdownCtx)
		}
		return nil
	})
	return g.Wait()
}

func runReplay(path string, cfg cmdConfig, tracer *logging.Tracer, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	registry := newRegistry(cfg, logger)
	defer registry.Close()
	transport := &discardTransport{}
	pool, err := newPool(cfg, transport, registry, tracer)
	if err != nil {
		return err
	}
	defer pool.Close()

	stats, err := replay(f, pool, logger)
	if err != nil {
		return err
	}
	printStats(os.Stdout, stats, transport, registry)
	return nil
}

func printStats(w io.Writer, stats replayStats, t *discardTransport, r *ingress.Registry) {
	fmt.Fprintf(w, "packets:     %d\n", stats.Packets)
	fmt.Fprintf(w, "datagrams:   %d\n", stats.Datagrams)
	fmt.Fprintf(w, "dispatched:  %d\n", stats.Dispatched)
	fmt.Fprintf(w, "skipped:     %d (not UDP)\n", stats.NotUDP)
	fmt.Fprintf(w, "invalid:     %d (size)\n", stats.InvalidSize)
	fmt.Fprintf(w, "timeouts:    %d\n", stats.Timeouts)
	fmt.Fprintf(w, "sent:        %d packets, %d bytes\n", t.packets.Load(), t.bytes.Load())
	fmt.Fprintf(w, "connections: %d\n", r.Len())
}

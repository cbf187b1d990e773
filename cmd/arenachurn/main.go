// Command arenachurn drives a generational arena with a randomized
// entity-list workload and checks that stale handles never validate.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"github.com/zeebo/errs/v2"

	"github.com/pavanmanishd/genarena"
	"github.com/pavanmanishd/genarena/arenaprom"
)

var (
	EnvPrefix   = "ARENACHURN_"
	Ops         = pflag.IntP("ops", "n", 1_000_000, "number of operations to run")
	Live        = pflag.IntP("live", "l", 10_000, "target number of live entities")
	ChunkSize   = pflag.Int("chunk-size", genarena.DefaultChunkSize, "slots per storage chunk")
	FreeList    = pflag.Bool("free-list", false, "index free slots in a bitmap instead of scanning")
	Seed        = pflag.Uint64("seed", 1, "workload random seed")
	MetricsAddr = pflag.String("metrics-addr", "", "serve prometheus metrics on this address and wait for a signal after the run")
	LogLevel    = levelP("log-level", "L", slog.LevelInfo, "log level")
	LogJSON     = pflag.Bool("log-json", false, "use json logs")
	Help        = pflag.BoolP("help", "h", false, "show this help text")
)

func main() {
	parseEnv(EnvPrefix)
	pflag.Parse()

	if *Help || pflag.NArg() != 0 {
		fmt.Printf("usage: %s [options]\n%s", os.Args[0], pflag.CommandLine.FlagUsages())
		if *Help {
			return
		}
		os.Exit(2)
	}

	if *LogJSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: LogLevel,
		})))
	} else {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level: LogLevel,
		})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("arenachurn failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config{
		Ops:  *Ops,
		Live: *Live,
		Seed: *Seed,
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	arena := genarena.NewSafeArena[entity](
		genarena.WithChunkSize(*ChunkSize),
		genarena.WithFreeList(*FreeList),
		genarena.WithCapacity(cfg.Live),
		genarena.WithLogger(slog.Default().With("component", "arena")),
	)

	var srv *http.Server
	if *MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(arenaprom.NewCollector(arena, "arenachurn", nil))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

		ln, err := net.Listen("tcp", *MetricsAddr)
		if err != nil {
			return errs.Errorf("listen %q: %w", *MetricsAddr, err)
		}
		srv = &http.Server{Handler: mux}
		go func() {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("http: serve failed", "error", err)
			}
		}()
		slog.Info("http: listening", "addr", ln.Addr().String())
	}

	start := time.Now()
	rep, err := churn(ctx, arena, cfg, slog.Default())
	if err != nil {
		return err
	}

	m := arena.Metrics()
	slog.Info("churn: done",
		"elapsed", time.Since(start).Truncate(time.Millisecond),
		"inserts", rep.Inserts,
		"removes", rep.Removes,
		"updates", rep.Updates,
		"stale_checks", rep.StaleChecks,
		"live", m.Live,
		"slots", m.Slots,
		"chunks", m.NumChunks,
		"reuses", m.Reuses,
		"utilization", fmt.Sprintf("%.2f%%", m.Utilization*100),
	)

	if srv == nil {
		return nil
	}

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errs.Wrap(srv.Shutdown(shutdownCtx))
}

func levelP(name, shorthand string, value slog.Level, usage string) *slog.LevelVar {
	level := new(slog.LevelVar)
	def := new(slog.LevelVar)
	def.Set(value)
	pflag.TextVarP(level, name, shorthand, def, usage)
	return level
}

// parseEnv sets flags from PREFIX_FLAG_NAME environment variables.
func parseEnv(prefix string) {
	for _, env := range os.Environ() {
		k, v, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		s, ok := strings.CutPrefix(k, prefix)
		if !ok {
			continue
		}
		n := strings.Map(func(r rune) rune {
			if r == '_' {
				return '-'
			}
			return unicode.ToLower(r)
		}, s)
		f := pflag.CommandLine.Lookup(n)
		if f == nil {
			fmt.Fprintf(os.Stderr, "env %s: unknown flag --%s\n", k, n)
			continue
		}
		if err := f.Value.Set(v); err != nil {
			fmt.Fprintf(os.Stderr, "env %s: flag --%s: invalid argument: %v\n", k, n, err)
			os.Exit(2)
		}
	}
}

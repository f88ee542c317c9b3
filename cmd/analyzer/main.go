package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/algebra-helper/analytics/docs"
	"github.com/algebra-helper/analytics/internal/api"
	"github.com/algebra-helper/analytics/internal/clock"
	"github.com/algebra-helper/analytics/internal/infrastructure/config"
	"github.com/algebra-helper/analytics/internal/ingest"
	"github.com/algebra-helper/analytics/internal/report"
	"github.com/algebra-helper/analytics/internal/service"
	"github.com/algebra-helper/analytics/internal/store"
)

//go:generate swag init -g cmd/analyzer/main.go -o docs

// @title           Algebra Helper Analytics API
// @version         1.0
// @description     Learner statistics and insights over an Algebra Helper export.

// @host      localhost:8080
// @BasePath  /

const usage = `Usage: analyzer [-days N] [-since DATE] [-until DATE] [-limit N] <export.json> [days]
       analyzer serve <export.json>`

func main() {
	cfg := config.Load()
	os.Exit(run(os.Args[1:], cfg, clock.System(), os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the process exit code.
func run(args []string, cfg *config.Config, c clock.Clock, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "serve" {
		return runServe(args[1:], cfg, c, stdout, stderr)
	}
	return runReport(args, cfg, c, stdout, stderr)
}

func runReport(args []string, cfg *config.Config, c clock.Clock, stdout, stderr io.Writer) int {
	logger := cfg.NewLogger(stderr)

	fs := flag.NewFlagSet("analyzer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprintln(stderr, usage) }
	days := fs.Int("days", 0, "only analyse the last N days")
	since := fs.String("since", "", "inclusive lower date bound")
	until := fs.String("until", "", "inclusive upper date bound")
	limit := fs.Int("limit", cfg.ReportMistakeLimit, "maximum number of mistakes listed")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return 1
	}
	if fs.NArg() == 2 {
		n, err := strconv.Atoi(fs.Arg(1))
		if err != nil || n < 0 {
			fmt.Fprintf(stderr, "Error: days must be a non-negative integer, got %q\n", fs.Arg(1))
			return 1
		}
		*days = n
	}

	svc, cleanup, err := open(fs.Arg(0), cfg, c, logger)
	if err != nil {
		return fail(stderr, logger, fs.Arg(0), err)
	}
	defer cleanup()

	rep, err := svc.Analyze(service.Query{
		DaysBack:     *days,
		Since:        *since,
		Until:        *until,
		MistakeLimit: *limit,
	})
	if err != nil {
		return fail(stderr, logger, fs.Arg(0), err)
	}

	if err := report.WriteText(stdout, rep); err != nil {
		return fail(stderr, logger, fs.Arg(0), err)
	}
	return 0
}

func runServe(args []string, cfg *config.Config, c clock.Clock, stdout, stderr io.Writer) int {
	logger := cfg.NewLogger(stdout)
	if len(args) != 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	svc, cleanup, err := open(args[0], cfg, c, logger)
	if err != nil {
		return fail(stderr, logger, args[0], err)
	}
	defer cleanup()

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           newRouter(svc, logger),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed to start", "error", err)
		return 1
	}
	return 0
}

// newRouter wires the health check, the analytics API and the Swagger UI.
func newRouter(svc *service.AnalysisService, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, api.NewHandler(svc, logger))

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return api.Logging(logger)(mux)
}

// open loads the export at path and builds the configured store over it.
func open(path string, cfg *config.Config, c clock.Clock, logger *slog.Logger) (*service.AnalysisService, func(), error) {
	snap, err := ingest.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("export loaded", "path", path, "records", len(snap.Records), "export_date", snap.ExportDate)

	st, err := store.New(cfg.StoreBackend, c, snap.Records)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if closer, ok := st.(io.Closer); ok {
			closer.Close()
		}
	}
	return service.NewAnalysisService(snap, st, cfg.Location, logger), cleanup, nil
}

// fail reports err to the user and returns the exit code.
func fail(stderr io.Writer, logger *slog.Logger, path string, err error) int {
	var (
		accessErr *ingest.FileAccessError
		formatErr *ingest.FormatError
		parseErr  *store.ParseError
	)
	switch {
	case errors.As(err, &accessErr):
		fmt.Fprintf(stderr, "Error: File '%s' could not be read: %v\n", path, accessErr.Err)
	case errors.As(err, &formatErr):
		fmt.Fprintf(stderr, "Error: File '%s' is not a valid export: %v\n", path, formatErr)
	case errors.As(err, &parseErr):
		fmt.Fprintf(stderr, "Error: %v\n", parseErr)
	default:
		logger.Error("analysis failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

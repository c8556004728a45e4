package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"text-summarizer/internal/app"
	"text-summarizer/internal/extract"
	"text-summarizer/internal/httputil"
	"text-summarizer/internal/summarize"
)

type summarizeRequest struct {
	Text         string `json:"text" validate:"required"`
	MaxSentences *int   `json:"maxSentences"`
	Length       string `json:"length" validate:"omitempty,oneof=SHORT MEDIUM LONG"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type fileSummaryResponse struct {
	Summary  string `json:"summary"`
	Filename string `json:"filename"`
}

// uploadOptions holds the optional form fields of a file upload.
type uploadOptions struct {
	MaxSentences *int   `json:"maxSentences"`
	Length       string `json:"length" validate:"omitempty,oneof=SHORT MEDIUM LONG"`
}

const shutdownTimeout = 15 * time.Second

func main() {
	deps, err := app.Build(prometheus.DefaultRegisterer)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", deps.Config.Port),
		Handler:           newRouter(deps, promhttp.Handler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		deps.Log.Info("summarizer listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		deps.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func newRouter(deps app.Deps, metrics http.Handler) http.Handler {
	r := httputil.NewRouter(deps.Log, deps.Config.RequestTimeout)

	r.Post("/api/summarize", summarizeHandler(deps))
	r.Post("/api/summarize/file", uploadHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps))
	r.Method(http.MethodGet, "/metrics", metrics)

	return r
}

func summarizeHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req summarizeRequest
		if err := httputil.DecodeJSON(w, r, deps.Config.MaxBodySize, &req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		out, err := deps.Summarizer.Summarize(r.Context(), summarize.Input{
			Text:         req.Text,
			MaxSentences: req.MaxSentences,
			Length:       summarize.Length(req.Length),
		})
		if err != nil {
			failSummarize(deps.Log, w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, summarizeResponse{Summary: out.Summary})
	}
}

func uploadHandler(deps app.Deps) http.HandlerFunc {
	maxFileSize := deps.Config.MaxUploadSize

	return func(w http.ResponseWriter, r *http.Request) {
		// Validate file size before parsing
		if r.ContentLength > maxFileSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+1<<20)

		file, header, err := r.FormFile("file")
		if err != nil {
			httputil.Fail(deps.Log, w, "file is required", err, http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Size > maxFileSize {
			httputil.Fail(deps.Log, w, fmt.Sprintf("file too large (max %d bytes)", maxFileSize), nil, http.StatusBadRequest)
			return
		}

		contentType, err := extract.ContentType(header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			httputil.Fail(deps.Log, w, err.Error(), nil, http.StatusBadRequest)
			return
		}

		opts, err := parseUploadOptions(r)
		if err != nil {
			httputil.Fail(deps.Log, w, "invalid maxSentences", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&opts); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to read file", err, http.StatusInternalServerError)
			return
		}
		text, err := extract.Text(contentType, content)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to extract text", err, http.StatusBadRequest)
			return
		}

		out, err := deps.Summarizer.Summarize(r.Context(), summarize.Input{
			Text:         text,
			MaxSentences: opts.MaxSentences,
			Length:       summarize.Length(opts.Length),
		})
		if err != nil {
			failSummarize(deps.Log.With("filename", header.Filename), w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, fileSummaryResponse{Summary: out.Summary, Filename: header.Filename})
	}
}

func parseUploadOptions(r *http.Request) (uploadOptions, error) {
	opts := uploadOptions{Length: r.FormValue("length")}
	if raw := r.FormValue("maxSentences"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return uploadOptions{}, err
		}
		opts.MaxSentences = &n
	}
	return opts, nil
}

// failSummarize maps summarizer errors to HTTP statuses: bad input is the
// caller's fault, everything else is a server-side failure.
func failSummarize(log *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, summarize.ErrInputTooShort):
		httputil.Fail(log, w, "text too short to summarize", err, http.StatusBadRequest)
	case errors.Is(err, summarize.ErrEmptyResponse):
		httputil.Fail(log, w, "empty summary from LLM", err, http.StatusInternalServerError)
	default:
		httputil.Fail(log, w, "llm failed", err, http.StatusInternalServerError)
	}
}

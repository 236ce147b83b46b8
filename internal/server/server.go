// Package server implements the RepoLens HTTP API.
//
// The server is a thin facade: every endpoint fetches fresh data from the
// GitHub API, runs the pure analyzers over it, and returns the result as
// JSON. There is no persistence and no result caching.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/repolens/repolens/pkg/deps"
	"github.com/repolens/repolens/pkg/github"
)

// defaultCommitLimit is the number of commits fetched for the composite
// analysis endpoint.
const defaultCommitLimit = 100

// RepoClient is the subset of the GitHub client the server depends on.
type RepoClient interface {
	Repository(ctx context.Context, owner, repo string) (map[string]any, error)
	Commits(ctx context.Context, owner, repo string, count int) ([]github.CommitRecord, error)
	Languages(ctx context.Context, owner, repo string) map[string]int
	Readme(ctx context.Context, owner, repo string) (string, bool)
	Tree(ctx context.Context, owner, repo string) ([]github.TreeEntry, int)
	FileContent(ctx context.Context, owner, repo, path string) (string, bool)
	Contributors(ctx context.Context, owner, repo string) []map[string]any
}

// Config holds server tunables.
type Config struct {
	// CommitLimit is the number of commits fetched per analysis (default 100).
	CommitLimit int
}

// Server composes the GitHub client and the analyzers into HTTP handlers.
type Server struct {
	client      RepoClient
	analyzer    *deps.Analyzer
	logger      *log.Logger
	commitLimit int
}

// New creates a Server. The analyzer is expected to share the same client
// as its FileFetcher so manifest probes hit the same upstream.
func New(client RepoClient, analyzer *deps.Analyzer, logger *log.Logger, cfg Config) *Server {
	limit := cfg.CommitLimit
	if limit <= 0 {
		limit = defaultCommitLimit
	}
	return &Server{
		client:      client,
		analyzer:    analyzer,
		logger:      logger,
		commitLimit: limit,
	}
}

// Handler builds the chi router with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", s.handleHealth)
	r.Get("/analyze/{owner}/{repo}", s.handleAnalyze)
	r.Get("/commit-analysis/{owner}/{repo}", s.handleCommitAnalysis)
	r.Get("/dependencies/{owner}/{repo}", s.handleDependencies)
	r.Get("/code-quality/{owner}/{repo}", s.handleCodeQuality)
	r.Get("/contributors/{owner}/{repo}", s.handleContributors)
	r.Get("/tree/{owner}/{repo}", s.handleTree)
	r.Get("/file-content/{owner}/{repo}", s.handleFileContent)

	return r
}

// logRequests logs one line per request with status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

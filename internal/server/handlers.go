package server

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/repolens/repolens/pkg/analysis"
	apperrors "github.com/repolens/repolens/pkg/errors"
	"github.com/repolens/repolens/pkg/github"
)

const (
	// detailedCommitLimit is the default page size for the dedicated
	// commit-analysis endpoint.
	detailedCommitLimit = 200

	// maxTreeEntries caps the tree endpoint response.
	maxTreeEntries = 500

	// maxContributors caps the contributors endpoint response.
	maxContributors = 20
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"message": "RepoLens is running!"})
}

// handleAnalyze is the composite endpoint: repository info, languages,
// commits, dependencies, file structure, and README analysis in one
// response. The five upstream fetches are independent and run in parallel;
// repository and commits are primary resources and fail the request,
// everything else degrades to empty defaults inside the client.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	owner, repo, err := repoRef(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var (
		repoData  map[string]any
		commits   []github.CommitRecord
		languages map[string]int
		readme    string
		tree      []github.TreeEntry
		treeSize  int
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		repoData, err = s.client.Repository(ctx, owner, repo)
		return err
	})
	g.Go(func() error {
		var err error
		commits, err = s.client.Commits(ctx, owner, repo, s.commitLimit)
		return err
	})
	g.Go(func() error {
		languages = s.client.Languages(ctx, owner, repo)
		return nil
	})
	g.Go(func() error {
		readme, _ = s.client.Readme(ctx, owner, repo)
		return nil
	})
	g.Go(func() error {
		tree, treeSize = s.client.Tree(ctx, owner, repo)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.writeError(w, r, err)
		return
	}

	depReport := s.analyzer.Analyze(r.Context(), owner, repo)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"repository":      repositorySummary(repoData),
		"languages":       analysis.Languages(languages),
		"commits":         analysis.Commits(commits),
		"dependencies":    depReport,
		"file_structure":  analysis.FileStructure(tree, treeSize),
		"readme_analysis": analysis.Readme(readme),
	})
}

func (s *Server) handleCommitAnalysis(w http.ResponseWriter, r *http.Request) {
	owner, repo, err := repoRef(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	limit := detailedCommitLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	commits, err := s.client.Commits(r.Context(), owner, repo, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"repository":      owner + "/" + repo,
		"analysis_date":   time.Now().UTC().Format("2006-01-02"),
		"commit_analysis": analysis.Commits(commits),
	})
}

func (s *Server) handleDependencies(w http.ResponseWriter, r *http.Request) {
	owner, repo, err := repoRef(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"repository":          owner + "/" + repo,
		"dependency_analysis": s.analyzer.Analyze(r.Context(), owner, repo),
	})
}

// handleCodeQuality derives a heuristic quality score from the file
// structure: organization (file count), diversity (extension spread), and
// the presence of documentation, configuration, and test files.
func (s *Server) handleCodeQuality(w http.ResponseWriter, r *http.Request) {
	owner, repo, err := repoRef(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	tree, treeSize := s.client.Tree(r.Context(), owner, repo)
	structure := analysis.FileStructure(tree, treeSize)

	score := 0.0
	if structure.FileCount > 0 {
		score += math.Min(float64(structure.FileCount)/50, 1) * 25
		score += math.Min(float64(len(structure.FileTypes))/5, 1) * 25
		if hasAnyType(structure.FileTypes, "md", "rst", "txt") {
			score += 20
		}
		if hasAnyType(structure.FileTypes, "json", "yml", "yaml", "toml") {
			score += 15
		}
		if hasAnyType(structure.FileTypes, "test", "spec") {
			score += 15
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"repository":     owner + "/" + repo,
		"file_structure": structure,
		"quality_metrics": map[string]any{
			"overall_score":      math.Min(score, 100),
			"file_diversity":     len(structure.FileTypes),
			"organization_score": math.Min(float64(structure.FileCount)/50, 1) * 100,
		},
	})
}

func (s *Server) handleContributors(w http.ResponseWriter, r *http.Request) {
	owner, repo, err := repoRef(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	contributors := s.client.Contributors(r.Context(), owner, repo)
	total := len(contributors)
	if total > maxContributors {
		contributors = contributors[:maxContributors]
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"repository":         owner + "/" + repo,
		"total_contributors": total,
		"contributors":       contributors,
	})
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	owner, repo, err := repoRef(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	entries, _ := s.client.Tree(r.Context(), owner, repo)
	if entries == nil {
		entries = []github.TreeEntry{}
	}
	if len(entries) > maxTreeEntries {
		entries = entries[:maxTreeEntries]
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"repository": owner + "/" + repo,
		"tree":       entries,
	})
}

func (s *Server) handleFileContent(w http.ResponseWriter, r *http.Request) {
	owner, repo, err := repoRef(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	path := r.URL.Query().Get("path")
	if path == "" {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "path query parameter is required"))
		return
	}

	content, ok := s.client.FileContent(r.Context(), owner, repo, path)
	if !ok {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeFileNotFound, "file not found: %s", path))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"repository": owner + "/" + repo,
		"path":       path,
		"content":    content,
		"size":       len(content),
	})
}

// repoRef extracts and validates the owner/repo route parameters. Validation
// failures are already structured errors and map straight to a 400 response.
func repoRef(r *http.Request) (owner, repo string, err error) {
	owner = chi.URLParam(r, "owner")
	repo = chi.URLParam(r, "repo")
	if err := github.ValidateRepoRef(owner, repo); err != nil {
		return "", "", err
	}
	return owner, repo, nil
}

// repositorySummary extracts the fields the API exposes from the raw
// repository document. Missing fields resolve to null or zero rather than
// failing.
func repositorySummary(data map[string]any) map[string]any {
	return map[string]any{
		"name":           data["name"],
		"full_name":      data["full_name"],
		"description":    data["description"],
		"stars":          intField(data, "stargazers_count"),
		"forks":          intField(data, "forks_count"),
		"open_issues":    intField(data, "open_issues_count"),
		"watchers":       intField(data, "watchers_count"),
		"license":        licenseName(data),
		"default_branch": data["default_branch"],
		"created_at":     data["created_at"],
		"updated_at":     data["updated_at"],
		"size":           intField(data, "size"),
		"language":       data["language"],
	}
}

func intField(doc map[string]any, key string) int {
	if v, ok := doc[key].(float64); ok {
		return int(v)
	}
	return 0
}

func licenseName(doc map[string]any) any {
	if license, ok := doc["license"].(map[string]any); ok {
		return license["name"]
	}
	return nil
}

func hasAnyType(types map[string]int, names ...string) bool {
	for _, name := range names {
		if _, ok := types[name]; ok {
			return true
		}
	}
	return false
}

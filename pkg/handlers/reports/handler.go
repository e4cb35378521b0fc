package reports

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/chapman178/om-Aviary/pkg/models/api"
)

// GenerateFunc re-runs report generation against the solved problem.
type GenerateFunc func(ctx context.Context) error

type Handler struct {
	reportsDir string
	generate   GenerateFunc
}

func NewHandler(reportsDir string, generate GenerateFunc) *Handler {
	return &Handler{reportsDir: reportsDir, generate: generate}
}

// ListReports returns the generated markdown files under the reports root,
// including subsystem reports, as relative names.
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var reports []api.Report
	err := filepath.WalkDir(h.reportsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(h.reportsDir, p)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		reports = append(reports, api.Report{
			Name:       filepath.ToSlash(rel),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to list reports")
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reports); err != nil {
		logger.Error().Err(err).Msg("failed to encode reports")
	}
}

// GetReport serves one generated markdown file by its relative name.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if name == "" || strings.Contains(name, "..") {
		http.Error(w, "invalid report name", http.StatusBadRequest)
		return
	}

	full := filepath.Join(h.reportsDir, filepath.FromSlash(path.Clean(name)))
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	http.ServeFile(w, r, full)
}

// Generate re-runs all registered report generators.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if err := h.generate(r.Context()); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			logger.Error().Err(err).Str("path", pathErr.Path).Msg("report generation failed")
		} else {
			logger.Error().Err(err).Msg("report generation failed")
		}
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

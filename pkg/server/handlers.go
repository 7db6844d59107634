package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/observability"
	"github.com/matzehuels/clemen/pkg/pipeline"
	"github.com/matzehuels/clemen/pkg/render"
	"github.com/matzehuels/clemen/pkg/scene"
)

// Response headers describing a render.
const (
	HeaderRunID = "X-Clemen-Run"
	HeaderCache = "X-Clemen-Cache"
)

// sceneInfo is one entry of the /scenes listing.
type sceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// statsBody is the /stats response.
type statsBody struct {
	observability.Stats
	HitRatio float64 `json:"cache_hit_ratio"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st := s.stats.Snapshot()
	writeJSON(w, http.StatusOK, statsBody{Stats: st, HitRatio: st.HitRatio()})
}

func (s *Server) handleListScenes(w http.ResponseWriter, r *http.Request) {
	names := scene.Builtins()
	out := make([]sceneInfo, 0, len(names))
	for _, name := range names {
		sc, err := scene.Builtin(name)
		if err != nil {
			writeError(w, r, err)
			return
		}
		out = append(out, sceneInfo{Name: sc.Name, Description: sc.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetScene(w http.ResponseWriter, r *http.Request) {
	sc, err := scene.Builtin(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleRenderBuiltin(w http.ResponseWriter, r *http.Request) {
	sc, err := scene.Builtin(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.render(w, r, sc)
}

func (s *Server) handleRenderPosted(w http.ResponseWriter, r *http.Request) {
	syntax := scene.SyntaxTOML
	if v := r.URL.Query().Get("syntax"); v != "" {
		parsed, err := scene.ParseSyntax(v)
		if err != nil {
			writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "syntax"))
			return
		}
		syntax = parsed
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	if len(body) == 0 {
		writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "request body is empty"))
		return
	}

	sc, err := scene.Parse(body, syntax)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.render(w, r, sc)
}

// render runs sc through the pipeline and writes the single requested format.
func (s *Server) render(w http.ResponseWriter, r *http.Request, sc *scene.Scene) {
	format := chi.URLParam(r, "format")
	if err := render.ValidateFormat(format); err != nil {
		writeError(w, r, err)
		return
	}
	opts, err := renderOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), sc, opts)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			s.logger.Error("render failed", "scene", sc.Name, "format", format, "err", err,
				"request_id", RequestID(r.Context()))
		}
		writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", render.ContentType(format))
	h.Set(HeaderRunID, result.RunID.String())
	if result.CacheHit {
		h.Set(HeaderCache, "hit")
	} else {
		h.Set(HeaderCache, "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// renderOptions reads the render query parameters.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Depth:   pipeline.DepthAll,
		VizType: q.Get("viz"),
	}

	var err error
	if v := q.Get("depth"); v != "" {
		if opts.Depth, err = strconv.Atoi(v); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "depth must be an integer, got %q", v)
		}
	}
	if v := q.Get("scale"); v != "" {
		if opts.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale must be a number, got %q", v)
		}
	}
	for name, dst := range map[string]*bool{
		"labels":   &opts.Labels,
		"baseline": &opts.Baseline,
		"refresh":  &opts.Refresh,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		if *dst, err = strconv.ParseBool(v); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v)
		}
	}
	return opts, nil
}

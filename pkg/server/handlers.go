package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/pokedex/pkg/buildinfo"
	"github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/evolution"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

type errorBody struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

type healthBody struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type evolutionBody struct {
	Name          string            `json:"name"`
	Evolution     []evolution.Entry `json:"evolution"`
	EvolutionTree *evolution.Node   `json:"evolutionTree"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", defaultPageSize)
	if err != nil || limit <= 0 || limit > maxPageSize {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "limit must be between 1 and %d", maxPageSize))
		return
	}
	offset, err := intParam(r, "offset", 0)
	if err != nil || offset < 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "offset must not be negative"))
		return
	}

	list, err := s.lister.ListPokemon(r.Context(), limit, offset, refresh(r))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeNetwork, err, "Failed to fetch data from PokeAPI."))
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handlePokemon(w http.ResponseWriter, r *http.Request) {
	v, err := s.dex.Lookup(r.Context(), chi.URLParam(r, "name"), refresh(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleEvolution(w http.ResponseWriter, r *http.Request) {
	v, err := s.dex.Lookup(r.Context(), chi.URLParam(r, "name"), refresh(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, evolutionBody{
		Name:          v.Pokemon.Name,
		Evolution:     v.Evolution,
		EvolutionTree: v.EvolutionTree,
	})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v, err := s.dex.Lookup(ctx, chi.URLParam(r, "name"), refresh(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := s.dex.Move(ctx, v, chi.URLParam(r, "move"), refresh(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	res, err := s.dex.Types(r.Context(), r.URL.Query()["t"], refresh(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Warn("request failed", "path", r.URL.Path, "id", RequestID(r.Context()), "err", err)
	}
	writeJSON(w, status, errorBody{Error: errors.UserMessage(err), Code: errors.GetCode(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func refresh(r *http.Request) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))
	return v
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

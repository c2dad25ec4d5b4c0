package ioserver

import (
	"net/http"
	"strconv"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/taxodb/pkg/errcode"
	"github.com/gnames/taxodb/pkg/taxon"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, "pong")
}

func (s *Server) taxonByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.st.EnsureLoaded(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	rec, found := s.st.Record(id)
	if !found {
		writeError(w, taxonomy.TaxonNotFoundError(id))
		return
	}
	writeJSON(w, http.StatusOK, rec.Summary())
}

func (s *Server) lineage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("ranks") == "true" {
		res, err := taxonomy.LineageAndRank(r.Context(), s.st, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
		return
	}

	res, err := taxonomy.Lineage(r.Context(), s.st, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) children(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	res, err := taxonomy.Children(r.Context(), s.st, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) tree(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	opts := taxonomy.TreeOptions{
		Limit:  s.cfg.Tree.Limit,
		Method: s.cfg.Tree.Method,
	}
	q := r.URL.Query()
	if l := q.Get("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil {
			writeJSON(w, http.StatusBadRequest,
				errorResponse{Error: "limit must be an integer"})
			return
		}
		opts.Limit = limit
	}
	if m := q.Get("method"); m != "" {
		opts.Method = m
	}

	res, err := taxonomy.FamilyTree(r.Context(), s.st, id, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	recs, err := taxonomy.Search(r.Context(), s.st, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	res := make([]taxon.Summary, len(recs))
	for i := range recs {
		res[i] = recs[i].Summary()
	}
	writeJSON(w, http.StatusOK, res)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	s := chi.URLParam(r, "id")
	id, err := strconv.Atoi(s)
	if err != nil {
		writeJSON(w, http.StatusBadRequest,
			errorResponse{Error: "taxon ID must be an integer: " + s})
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	enc := gnfmt.GNjson{}
	bs, err := enc.Encode(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(bs)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()
	if gnErr, ok := err.(*gn.Error); ok {
		status = statusCode(gnErr.Code)
		if gnErr.Err != nil {
			msg = gnErr.Err.Error()
		}
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func statusCode(code gn.ErrorCode) int {
	switch code {
	case errcode.TaxonNotFoundError:
		return http.StatusNotFound
	case errcode.TreeMethodError, errcode.TreeLimitError,
		errcode.SearchPatternError:
		return http.StatusBadRequest
	case errcode.TaxonMissingParentError, errcode.TaxonCircularLineageError:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

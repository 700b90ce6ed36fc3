// Package searchtest runs an in-process stand-in for the Elasticsearch
// endpoints used by search.Client.
package searchtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
)

type Server struct {
	*httptest.Server

	mu           sync.Mutex
	indices      map[string]bool
	docs         map[string]json.RawMessage
	hits         []string
	total        int
	searchStatus int
	indexStatus  int
	searches     int
	lastQuery    []byte
}

func NewServer() *Server {
	s := &Server{
		indices: make(map[string]bool),
		docs:    make(map[string]json.RawMessage),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// SetHits fixes the ids returned by every search. A total larger than
// len(ids) reports a truncated hit list.
func (s *Server) SetHits(ids []string, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits = ids
	s.total = total
}

// FailSearch makes searches answer with status. Zero restores normal replies.
func (s *Server) FailSearch(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchStatus = status
}

// FailIndex makes document writes answer with status. Zero restores normal replies.
func (s *Server) FailIndex(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexStatus = status
}

// DocIDs returns the ids of the indexed documents in sorted order.
func (s *Server) DocIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Server) Searches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searches
}

// LastQuery returns the body of the most recent search.
func (s *Server) LastQuery() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	s.mu.Lock()
	defer s.mu.Unlock()

	body, _ := io.ReadAll(r.Body)
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case r.URL.Path == "/":
		writeJSON(w, http.StatusOK, map[string]any{
			"name":         "searchtest",
			"cluster_name": "searchtest",
			"version":      map[string]any{"number": "8.19.0", "build_flavor": "default"},
			"tagline":      "You Know, for Search",
		})
	case len(parts) == 1 && r.Method == http.MethodPut:
		if s.indices[parts[0]] {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": map[string]any{"type": "resource_already_exists_exception"}})
			return
		}
		s.indices[parts[0]] = true
		writeJSON(w, http.StatusOK, map[string]any{"acknowledged": true, "index": parts[0]})
	case len(parts) == 2 && parts[1] == "_count":
		writeJSON(w, http.StatusOK, map[string]any{"count": len(s.docs)})
	case len(parts) == 2 && parts[1] == "_search":
		s.searches++
		s.lastQuery = body
		if s.searchStatus != 0 {
			writeJSON(w, s.searchStatus, map[string]any{"error": "search failed"})
			return
		}
		hits := make([]map[string]any, 0, len(s.hits))
		for _, id := range s.hits {
			hits = append(hits, map[string]any{"_id": id})
		}
		total := s.total
		if total < len(s.hits) {
			total = len(s.hits)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"hits": map[string]any{
				"total": map[string]any{"value": total, "relation": "eq"},
				"hits":  hits,
			},
		})
	case len(parts) == 3 && parts[1] == "_doc":
		id := parts[2]
		if s.indexStatus != 0 {
			writeJSON(w, s.indexStatus, map[string]any{"error": "write failed"})
			return
		}
		switch r.Method {
		case http.MethodDelete:
			if _, ok := s.docs[id]; !ok {
				writeJSON(w, http.StatusNotFound, map[string]any{"_id": id, "result": "not_found"})
				return
			}
			delete(s.docs, id)
			writeJSON(w, http.StatusOK, map[string]any{"_id": id, "result": "deleted"})
		default:
			s.docs[id] = json.RawMessage(body)
			writeJSON(w, http.StatusCreated, map[string]any{"_id": id, "result": "created"})
		}
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "unsupported path " + r.URL.Path})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package mock

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"

	"github.com/gorilla/mux"
)

// Request is a copy of an inbound request as the server saw it
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Server is a recording HTTP server with canned responses
type Server struct {
	*httptest.Server

	router   *mux.Router
	mtx      sync.Mutex
	requests []Request
}

// NewServer starts a recording server. Unregistered routes answer 404.
func NewServer() *Server {
	s := &Server{router: mux.NewRouter()}
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `["error",404,"not found"]`)
	})
	s.Server = httptest.NewServer(s.record(s.router))
	return s
}

// Handle registers a canned JSON response for method and path. Paths follow
// gorilla/mux templates, e.g. /v2/trades/{symbol}/hist.
func (s *Server) Handle(method, path string, status int, body string) {
	s.router.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, body)
	}).Methods(method)
}

// HandleFunc registers a custom handler for method and path
func (s *Server) HandleFunc(method, path string, fn http.HandlerFunc) {
	s.router.HandleFunc(path, fn).Methods(method)
}

// Requests returns every recorded request in arrival order
func (s *Server) Requests() []Request {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request and whether there was one
func (s *Server) Last() (Request, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		s.mtx.Lock()
		s.requests = append(s.requests, Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		s.mtx.Unlock()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// MatchBody reports whether two JSON documents are semantically equal. Key
// order and whitespace are ignored.
func MatchBody(want, got []byte) (bool, error) {
	var w, g interface{}
	if err := json.Unmarshal(want, &w); err != nil {
		return false, err
	}
	if err := json.Unmarshal(got, &g); err != nil {
		return false, err
	}
	return reflect.DeepEqual(w, g), nil
}

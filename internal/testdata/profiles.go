// Package testdata provides sample profiles and an in-process record service
// for tests.
package testdata

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jask/swipedeck/internal/record"
)

var (
	names  = []string{"Ada", "Grace", "Linus", "Barbara", "Ken", "Margaret", "Dennis", "Frances"}
	blurbs = []string{
		"Enjoys long walks to the coffee machine.",
		"Will debate tabs versus spaces at length.",
		"Collects mechanical keyboards.",
		"Has opinions about semicolons.",
		"Bakes sourdough on weekends.",
		"Reads RFCs for fun.",
	}
)

// Profiles returns n sample records. The same seed yields the same names and
// descriptions; ids are always fresh.
func Profiles(n int, seed int64) []record.Record {
	r := rand.New(rand.NewSource(seed))
	out := make([]record.Record, 0, n)
	for i := 0; i < n; i++ {
		id := uuid.NewString()
		lines := make([]string, 1+r.Intn(len(blurbs)))
		for j := range lines {
			lines[j] = blurbs[r.Intn(len(blurbs))]
		}
		out = append(out, record.Record{
			ID:          id,
			URL:         "/api/image/" + id,
			Name:        fmt.Sprintf("%s, %d", names[r.Intn(len(names))], 20+r.Intn(40)),
			Description: strings.Join(lines, "\n"),
		})
	}
	return out
}

// Service serves records over the /api/next and /api/meta/{id} endpoints.
// Next hands records out in order and answers 404 once they run out.
type Service struct {
	mu      sync.Mutex
	byID    map[string]record.Record
	queue   []record.Record
	served  []string
	failing bool
}

// NewService serves recs.
func NewService(recs []record.Record) *Service {
	s := &Service{byID: make(map[string]record.Record, len(recs)), queue: append([]record.Record(nil), recs...)}
	for _, rec := range recs {
		s.byID[rec.ID] = rec
	}
	return s
}

// SetFailing makes every request answer 500.
func (s *Service) SetFailing(f bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = f
}

// Served lists the request paths seen so far.
func (s *Service) Served() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.served...)
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.served = append(s.served, r.URL.EscapedPath())

	if s.failing {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	switch {
	case r.URL.Path == "/api/next":
		if len(s.queue) == 0 {
			http.Error(w, "No images found", http.StatusNotFound)
			return
		}
		rec := s.queue[0]
		s.queue = s.queue[1:]
		writeJSON(w, rec)
	case strings.HasPrefix(r.URL.EscapedPath(), "/api/meta/"):
		id, err := url.PathUnescape(strings.TrimPrefix(r.URL.EscapedPath(), "/api/meta/"))
		rec, ok := s.byID[id]
		if err != nil || !ok {
			http.Error(w, "Image not found", http.StatusNotFound)
			return
		}
		writeJSON(w, rec)
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, rec record.Record) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wcfm-radio/wcfm/pkg/crawler"
	"github.com/wcfm-radio/wcfm/pkg/schedule"
	"github.com/wcfm-radio/wcfm/pkg/show"
	"github.com/wcfm-radio/wcfm/pkg/subscriptions"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// loadIndex builds a fresh index from the stored schedule. The server
// reads whatever the last successful crawl persisted; it never crawls.
func (s *Server) loadIndex(r *http.Request) (*schedule.Index, error) {
	idx := schedule.New()
	if err := crawler.PopulateIndex(r.Context(), s.DB, idx); err != nil {
		return nil, err
	}
	return idx, nil
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	idx, err := s.loadIndex(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	week := make(map[string][]show.Show, 7)
	for d := show.Sunday; d <= show.Saturday; d++ {
		shows := make([]show.Show, 0, idx.NumShows(d))
		for i := 0; ; i++ {
			sh, ok := idx.ShowAt(d, i)
			if !ok {
				break
			}
			shows = append(shows, sh)
		}
		week[d.String()] = shows
	}
	writeJSON(w, http.StatusOK, week)
}

func (s *Server) handleScheduleDay(w http.ResponseWriter, r *http.Request) {
	day, ok := show.WeekdayNamed(r.PathValue("day"))
	if !ok {
		http.Error(w, "unknown weekday", http.StatusBadRequest)
		return
	}

	idx, err := s.loadIndex(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	shows := make([]show.Show, 0, idx.NumShows(day))
	for i := 0; ; i++ {
		sh, ok := idx.ShowAt(day, i)
		if !ok {
			break
		}
		shows = append(shows, sh)
	}
	writeJSON(w, http.StatusOK, shows)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		http.Error(w, "missing q parameter", http.StatusBadRequest)
		return
	}

	idx, err := s.loadIndex(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	idx.Filter(keyword)
	result := make(map[string][]show.Show, len(schedule.Categories))
	for _, c := range schedule.Categories {
		shows := make([]show.Show, 0, idx.NumFiltered(c))
		for i := 0; ; i++ {
			sh, ok := idx.FilteredAt(c, i)
			if !ok {
				break
			}
			shows = append(shows, sh)
		}
		result[c.String()] = shows
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleNow(w http.ResponseWriter, r *http.Request) {
	idx, err := s.loadIndex(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type nowResponse struct {
		Current *show.Show `json:"current,omitempty"`
		Next    *show.Show `json:"next,omitempty"`
	}
	var resp nowResponse
	now := time.Now()
	if current, ok := idx.Current(now); ok {
		resp.Current = &current
	}
	if next, ok := idx.Next(now); ok {
		resp.Next = &next
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	idx, err := s.loadIndex(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	subs := subscriptions.New(s.DB, idx)
	titles, err := subs.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if titles == nil {
		titles = []string{}
	}
	writeJSON(w, http.StatusOK, titles)
}

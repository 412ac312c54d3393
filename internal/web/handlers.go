package web

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/graziososalvare/shelterboard/internal/outcomes"
)

type recordsResponse struct {
	Columns []string          `json:"columns"`
	Records []outcomes.Record `json:"records"`
	Chart   outcomes.Chart    `json:"chart"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "dashboard page missing", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// handleRecords rebuilds the filter from the query string, runs it, and
// returns the normalized dataset plus the chart derived from exactly
// the rows being returned. A failing reader degrades to the empty
// dataset with the expected columns; the client never sees the error.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := outcomes.BuildFilter(
		q.Get("animal"),
		q.Get("outcome"),
		q.Get("breed"),
		q["sex"],
	)

	start := time.Now()
	records, err := s.reader.Read(r.Context(), filter)
	s.metrics.RecordQuery(r.Context(), len(records), time.Since(start), err != nil)

	var ds outcomes.Dataset
	if err != nil {
		s.logger.Error("query failed",
			zap.Error(err),
			zap.Int("conditions", len(filter)))
		ds = outcomes.EmptyDataset()
	} else {
		ds = outcomes.Normalize(records)
	}

	writeJSON(w, recordsResponse{
		Columns: ds.Columns,
		Records: ds.Records,
		Chart:   outcomes.OutcomeChart(ds),
	})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.options)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

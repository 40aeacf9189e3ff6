package arena

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lox/hanabiforbots/internal/fileutil"
	"github.com/lox/hanabiforbots/internal/statistics"
)

// reportJSON is the wire shape of a report file
type reportJSON struct {
	Generated time.Time   `json:"generated"`
	Games     int         `json:"games"`
	Seed      int64       `json:"seed"`
	Entries   []entryJSON `json:"entries"`
}

type entryJSON struct {
	Lineup       string             `json:"lineup"`
	Bots         []string           `json:"bots"`
	Summary      statistics.Summary `json:"summary"`
	Statuses     map[string]int     `json:"statuses"`
	Failures     int                `json:"failures"`
	FirstFailure string             `json:"first_failure,omitempty"`
}

// WriteFile writes the report as indented JSON. The write is atomic, so a
// watching process never reads a partial report.
func (r *Report) WriteFile(path string) error {
	out := reportJSON{
		Generated: time.Now().UTC(),
		Games:     r.Games,
		Seed:      r.Seed,
		Entries:   make([]entryJSON, 0, len(r.Entries)),
	}
	for _, e := range r.Entries {
		out.Entries = append(out.Entries, entryJSON{
			Lineup:       e.Lineup,
			Bots:         e.Bots,
			Summary:      e.Stats.Summary(),
			Statuses:     e.Statuses,
			Failures:     e.Failures,
			FirstFailure: e.FirstFailure,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return fileutil.WriteFileAtomic(path, append(data, '\n'), 0o644)
}

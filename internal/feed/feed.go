// Package feed shapes stock-recommendation rows for the home feed. The
// agents have written heat_map and new_picks in several shapes over time,
// so decoding is defensive: anything unrecognized collapses to a safe
// display default instead of an error.
package feed

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/marketops/missionctl/internal/models"
)

// HeatEntry is one ticker's mention count.
type HeatEntry struct {
	Ticker string
	Count  int
}

// Pick is a normalized new-pick entry. Ticker falls back to "?" and Action
// to "BUY" when the source row doesn't resolve them.
type Pick struct {
	Ticker string
	Thesis string
	Action string
}

// NormalizeHeatMap decodes a heat_map JSON column into entries sorted by
// count descending. Ties are pinned ticker-ascending so rendering is
// deterministic. Null, empty or malformed input yields no entries.
func NormalizeHeatMap(raw string) []HeatEntry {
	if raw == "" || raw == "null" {
		return nil
	}
	var m map[string]int
	if err := json.Unmarshal([]byte(raw), &m); err != nil || len(m) == 0 {
		return nil
	}

	entries := make([]HeatEntry, 0, len(m))
	for ticker, count := range m {
		entries = append(entries, HeatEntry{Ticker: ticker, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Ticker < entries[j].Ticker
	})
	return entries
}

// NormalizePicks decodes a new_picks JSON column. Known shapes, one branch
// each: null, a list of bare ticker strings, and a list of objects whose
// field names drifted across agent versions (ticker|name, thesis|catalyst|
// note, action). Anything else falls through to the default pick.
func NormalizePicks(raw string) []Pick {
	if raw == "" || raw == "null" {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}

	picks := make([]Pick, 0, len(items))
	for _, item := range items {
		picks = append(picks, decodePick(item))
	}
	return picks
}

func decodePick(item json.RawMessage) Pick {
	var obj map[string]any
	if err := json.Unmarshal(item, &obj); err == nil && obj != nil {
		return Pick{
			Ticker: firstString(obj, "?", "ticker", "name"),
			Thesis: firstString(obj, "", "thesis", "catalyst", "note"),
			Action: firstString(obj, "BUY", "action"),
		}
	}

	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		if s == "" {
			s = "?"
		}
		return Pick{Ticker: s, Action: "BUY"}
	}

	// Legacy rows hold bare numbers in places; render them as text.
	var n float64
	if err := json.Unmarshal(item, &n); err == nil {
		return Pick{Ticker: strconv.FormatFloat(n, 'f', -1, 64), Action: "BUY"}
	}

	return Pick{Ticker: "?", Action: "BUY"}
}

// firstString returns the first non-empty string value among keys, else def.
func firstString(obj map[string]any, def string, keys ...string) string {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return def
}

// Teaser returns up to limit tasks that are blocked or in progress, in the
// order given.
func Teaser(tasks []models.Task, limit int) []models.Task {
	var out []models.Task
	for _, task := range tasks {
		if task.Status != models.StatusBlocked && task.Status != models.StatusInProgress {
			continue
		}
		out = append(out, task)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Tickers decodes the tickers JSON column into a plain list.
func Tickers(raw string) []string {
	if raw == "" || raw == "null" {
		return nil
	}
	var tickers []string
	if err := json.Unmarshal([]byte(raw), &tickers); err != nil {
		return nil
	}
	return tickers
}

// Package views computes the read-only projections shown on the dashboard
// and the calendar. Every function is pure: the current time is passed in.
package views

import "github.com/atinyakov/FleetKeeper/internal/models"

// Unknown labels records with no status, and names of missing ships or
// components.
const Unknown = "Unknown"

// Slice is one segment of a status distribution.
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Distribution counts keys in first-seen order. Empty keys count as Unknown.
func Distribution(keys []string) []Slice {
	out := []Slice{}
	index := make(map[string]int)
	for _, k := range keys {
		if k == "" {
			k = Unknown
		}
		if i, ok := index[k]; ok {
			out[i].Value++
			continue
		}
		index[k] = len(out)
		out = append(out, Slice{Name: k, Value: 1})
	}
	return out
}

// JobStatusDistribution counts jobs per status.
func JobStatusDistribution(jobs []models.Job) []Slice {
	keys := make([]string, len(jobs))
	for i, j := range jobs {
		keys[i] = string(j.Status)
	}
	return Distribution(keys)
}

// ShipStatusDistribution counts ships per status.
func ShipStatusDistribution(ships []models.Ship) []Slice {
	keys := make([]string, len(ships))
	for i, s := range ships {
		keys[i] = string(s.Status)
	}
	return Distribution(keys)
}

// Package search finds displays by file name.
package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/nikbrunner/vidgrid/internal/model"
)

// Result represents a fuzzy search match.
type Result struct {
	ID             string
	Index          int // position in the grid
	Name           string
	MatchedIndexes []int
	Score          int
}

// displayNames implements fuzzy.Source over display file names.
type displayNames []model.Display

func (dn displayNames) String(i int) string {
	return dn[i].Source.Name
}

func (dn displayNames) Len() int {
	return len(dn)
}

// FuzzyFindDisplays searches displays by file name using fuzzy matching.
// Returns results sorted by match score (best first). An empty query
// returns every display in grid order.
func FuzzyFindDisplays(displays []model.Display, query string) []Result {
	if query == "" {
		results := make([]Result, len(displays))
		for i, d := range displays {
			results[i] = Result{ID: d.ID, Index: i, Name: d.Source.Name}
		}
		return results
	}

	matches := fuzzy.FindFrom(query, displayNames(displays))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			ID:             displays[m.Index].ID,
			Index:          m.Index,
			Name:           m.Str,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

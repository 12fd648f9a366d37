// Package vault filters the document list for the docs page. Filtering is
// conjunctive: the category must match exactly (or be "All") and the
// trimmed search must appear case-insensitively in the title or filename.
package vault

import (
	"strings"

	"github.com/marketops/missionctl/internal/models"
)

// Categories are the filter options offered by the vault, "All" first.
var Categories = []string{"All", models.CategoryResearch, models.CategoryStrategy, models.CategoryDaily, models.CategoryOther}

// Filter returns the documents matching category and search, preserving
// input order.
func Filter(docs []models.Document, category, search string) []models.Document {
	needle := strings.ToLower(strings.TrimSpace(search))

	var out []models.Document
	for _, doc := range docs {
		if category != "All" && category != "" && doc.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(doc.Title), needle) &&
			!strings.Contains(strings.ToLower(doc.Filename), needle) {
			continue
		}
		out = append(out, doc)
	}
	return out
}

// Find returns the document with the given id, or nil. Selection is
// resolved within the already-filtered list, so a selection hidden by the
// current filter shows nothing.
func Find(docs []models.Document, id string) *models.Document {
	if id == "" {
		return nil
	}
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i]
		}
	}
	return nil
}

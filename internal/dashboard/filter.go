package dashboard

import (
	"strings"

	"github.com/jo-hoe/aiexplorer/internal/models"
)

// Filtered holds the subsets of both seed lists that match a filter.
type Filtered struct {
	Searches []models.DashboardSearchRecord `json:"searches"`
	Images   []models.DashboardImageRecord  `json:"images"`
}

// Filter keeps the records whose text contains the filter, ignoring case.
// Search records match on query or summary, image records on prompt. Order is
// preserved and an empty filter keeps everything.
func Filter(text string, searches []models.DashboardSearchRecord, images []models.DashboardImageRecord) Filtered {
	needle := strings.ToLower(text)

	out := Filtered{
		Searches: make([]models.DashboardSearchRecord, 0, len(searches)),
		Images:   make([]models.DashboardImageRecord, 0, len(images)),
	}
	for _, s := range searches {
		if contains(s.Query, needle) || contains(s.Summary, needle) {
			out.Searches = append(out.Searches, s)
		}
	}
	for _, img := range images {
		if contains(img.Prompt, needle) {
			out.Images = append(out.Images, img)
		}
	}
	return out
}

func contains(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

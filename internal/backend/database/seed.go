package database

import "github.com/jo-hoe/aiexplorer/internal/models"

var seedSearchRecords = []models.DashboardSearchRecord{
	{
		ID:      1,
		Query:   "What is quantum computing?",
		Date:    "2024-01-15",
		Summary: "Quantum computing is a revolutionary technology that uses quantum mechanics principles...",
		Sources: []string{"MIT Technology Review", "Nature", "Science Direct"},
	},
	{
		ID:      2,
		Query:   "AI in healthcare applications",
		Date:    "2024-01-14",
		Summary: "Artificial intelligence is transforming healthcare through diagnostics, drug discovery...",
		Sources: []string{"NEJM", "Healthcare IT News", "AI in Medicine"},
	},
}

var seedImageRecords = []models.DashboardImageRecord{
	{
		ID:     1,
		Prompt: "A futuristic cityscape with flying cars",
		Date:   "2024-01-15",
		URL:    "/placeholder.svg",
		Model:  "Flux",
	},
	{
		ID:     2,
		Prompt: "An astronaut riding a unicorn on Mars",
		Date:   "2024-01-14",
		URL:    "/placeholder.svg",
		Model:  "Flux",
	},
}

// SeedSearchRecords returns a deep copy of the built-in search records.
func SeedSearchRecords() []models.DashboardSearchRecord {
	out := make([]models.DashboardSearchRecord, len(seedSearchRecords))
	for i, r := range seedSearchRecords {
		r.Sources = append([]string(nil), r.Sources...)
		out[i] = r
	}
	return out
}

// SeedImageRecords returns a copy of the built-in image records.
func SeedImageRecords() []models.DashboardImageRecord {
	out := make([]models.DashboardImageRecord, len(seedImageRecords))
	copy(out, seedImageRecords)
	return out
}

package models

import "time"

// SearchResult is a single summarized web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}

// GeneratedImage is an image produced by the generation view.
type GeneratedImage struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	URL       string    `json:"url"`
	Model     Model     `json:"model"`
	Timestamp time.Time `json:"timestamp"`
}

// DashboardSearchRecord is a past search shown on the dashboard.
type DashboardSearchRecord struct {
	ID      int      `json:"id"`
	Query   string   `json:"query"`
	Date    string   `json:"date"`
	Summary string   `json:"summary"`
	Sources []string `json:"sources"`
}

// DashboardImageRecord is a past generated image shown on the dashboard.
type DashboardImageRecord struct {
	ID     int    `json:"id"`
	Prompt string `json:"prompt"`
	Date   string `json:"date"`
	URL    string `json:"url"`
	Model  string `json:"model"`
}

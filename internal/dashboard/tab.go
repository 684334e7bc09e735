package dashboard

import (
	"fmt"
	"strings"
)

// Tab selects which filtered subsets the dashboard shows.
type Tab string

const (
	TabAll      Tab = "all"
	TabSearches Tab = "searches"
	TabImages   Tab = "images"
)

var tabLabels = map[Tab]string{
	TabAll:      "All Content",
	TabSearches: "Web Searches",
	TabImages:   "Generated Images",
}

// Tabs returns the tabs in display order.
func Tabs() []Tab {
	return []Tab{TabAll, TabSearches, TabImages}
}

// ParseTab maps a raw value to a Tab. The empty string selects TabAll.
func ParseTab(raw string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(raw)))
	if t == "" {
		return TabAll, nil
	}
	if _, ok := tabLabels[t]; !ok {
		return "", fmt.Errorf("unknown tab %q", raw)
	}
	return t, nil
}

func (t Tab) Label() string {
	return tabLabels[t]
}

// ShowsSearches reports whether search records are rendered under this tab.
func (t Tab) ShowsSearches() bool {
	return t == TabAll || t == TabSearches
}

// ShowsImages reports whether image records are rendered under this tab.
func (t Tab) ShowsImages() bool {
	return t == TabAll || t == TabImages
}

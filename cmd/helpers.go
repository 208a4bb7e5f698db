package cmd

import (
	"fmt"
	"sort"

	"github.com/gobwas/glob"

	"github.com/0binna-oss/deep-work-tracker/internal/config"
	"github.com/0binna-oss/deep-work-tracker/internal/ledger"
)

// openLedger loads the configuration, resolves the data file path, and
// loads the ledger from it.
func openLedger() (*ledger.Ledger, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	l, err := ledger.Load(cfg.ResolveDataFile(dataFile))
	if err != nil {
		return nil, nil, err
	}
	return l, cfg, nil
}

// filterByCategory returns the sessions whose category matches the
// glob pattern. An empty pattern matches everything.
func filterByCategory(sessions []ledger.Session, pattern string) ([]ledger.Session, error) {
	if pattern == "" {
		return sessions, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid category pattern %q: %w", pattern, err)
	}
	var matched []ledger.Session
	for _, s := range sessions {
		if g.Match(s.Category) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

// sortedCategories returns the keys of a category map in sorted order
// so output is stable.
func sortedCategories(byCategory map[string]float64) []string {
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

package multiselect

import (
	"strings"

	"optgrip/internal/domain"
)

// Filter returns the options whose label contains search, ignoring case, in
// their original order. An empty search returns options unchanged.
func Filter(options []domain.Option, search string) []domain.Option {
	if search == "" {
		return options
	}

	query := strings.ToLower(search)
	filtered := make([]domain.Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), query) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

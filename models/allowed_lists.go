package models

import "strings"

// AllowedLists holds the capped, deduplicated venue names generation and
// repair are constrained to. Derived from candidates, never edited directly.
type AllowedLists struct {
	Attractions   []string `json:"attractions"`
	Restaurants   []string `json:"restaurants"`
	IndoorBackups []string `json:"indoor_backups"`
}

// ContainsFold reports whether name is a member of list, compared by the
// same lowercase-trimmed identity used for candidate dedup.
func ContainsFold(list []string, name string) bool {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, n := range list {
		if strings.ToLower(strings.TrimSpace(n)) == want {
			return true
		}
	}
	return false
}

// Empty reports whether all three lists are empty.
func (a AllowedLists) Empty() bool {
	return len(a.Attractions) == 0 && len(a.Restaurants) == 0 && len(a.IndoorBackups) == 0
}

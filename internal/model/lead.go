package model

import (
	"strings"
	"time"
)

// Lead is one submitted project inquiry. Rows are append-only: created by the
// intake endpoint, read back by the admin listing, never updated or deleted.
type Lead struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Postal      string  `json:"postal"`
	Surface     *string `json:"surface"`
	Location    *string `json:"location"`
	Description *string `json:"description" gorm:"type:text"`
	PhotoName   *string `json:"photo_name"`
}

// AdminListLimit bounds the admin snapshot to the most recent rows.
const AdminListLimit = 200

// HasPhone reports whether the lead carries a non-blank phone number.
func (l *Lead) HasPhone() bool {
	return strings.TrimSpace(l.Phone) != ""
}

// MatchesQuery does the admin free-text filter: case-insensitive substring
// match over every displayable field. An empty query matches everything.
func (l *Lead) MatchesQuery(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	parts := []string{l.Category, l.Name, l.Phone, l.Postal}
	for _, opt := range []*string{l.Surface, l.Location, l.Description, l.PhotoName} {
		if opt != nil {
			parts = append(parts, *opt)
		}
	}
	blob := strings.ToLower(strings.Join(parts, " "))
	return strings.Contains(blob, query)
}

package password

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category groups generated passwords.
type Category string

const (
	CategoryPersonal  Category = "personal"
	CategoryFinancial Category = "financial"
	CategoryWork      Category = "work"
	CategoryOther     Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryPersonal, CategoryFinancial, CategoryWork, CategoryOther}

// ParseCategory returns the category named s.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Next returns the category after c, wrapping around.
func (c Category) Next() Category {
	for i, x := range Categories {
		if x == c {
			return Categories[(i+1)%len(Categories)]
		}
	}
	return Categories[0]
}

// Expiry is how long a generated password is considered fresh.
const Expiry = 30 * 24 * time.Hour

// Entry is a generated password with its metadata.
type Entry struct {
	ID        string    `json:"id"`
	Password  string    `json:"password"`
	Category  Category  `json:"category"`
	Strength  int       `json:"strength"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewEntry scores pw and stamps it with a fresh ID and expiry.
func NewEntry(pw string, cat Category, now time.Time) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Password:  pw,
		Category:  cat,
		Strength:  Strength(pw),
		CreatedAt: now,
		ExpiresAt: now.Add(Expiry),
	}
}

// Expired reports whether the entry has passed its expiry at now.
func (e Entry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// ShareText is the line copied when an entry is shared.
func (e Entry) ShareText() string {
	return fmt.Sprintf("zword generated password: %s (valid until %s)",
		e.Password, e.ExpiresAt.Format("2006-01-02 15:04"))
}

// Remaining formats the time left until expiresAt using the two largest
// units, or "Expired".
func Remaining(expiresAt, now time.Time) string {
	d := expiresAt.Sub(now)
	if d <= 0 {
		return "Expired"
	}

	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

package model

import (
	"encoding/json"

	"gorm.io/gorm"
)

// NewLaunchItem is a new-launch property listing. Its spotlight slot is
// independent from the article and home-tour hero slots but uses the same
// exclusivity mechanism, so it is stored under the common IsHero column.
type NewLaunchItem struct {
	gorm.Model
	ID       string `gorm:"primaryKey;uuid;not null;"`
	Slug     string `gorm:"uniqueIndex;not null"`
	Title    string `gorm:"not null"`
	Excerpt  string
	Image    string
	Category string
	Tenure   string // free-text label, e.g. "99-year leasehold"
	Featured bool   `gorm:"default:false"`
	IsHero   bool   `gorm:"default:false"`
}

func (n *NewLaunchItem) ItemID() string    { return n.ID }
func (n *NewLaunchItem) ItemSlug() string  { return n.Slug }
func (n *NewLaunchItem) ItemTitle() string { return n.Title }
func (n *NewLaunchItem) Hero() bool        { return n.IsHero }

func (n *NewLaunchItem) MarshalBinary() ([]byte, error) {
	return json.Marshal(n)
}

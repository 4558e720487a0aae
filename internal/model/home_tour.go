package model

import (
	"encoding/json"

	"gorm.io/gorm"
)

type HomeTourItem struct {
	gorm.Model
	ID       string `gorm:"primaryKey;uuid;not null;"`
	Slug     string `gorm:"uniqueIndex;not null"`
	Title    string `gorm:"not null"`
	Excerpt  string
	Image    string
	Category string
	Duration string // free-text label, e.g. "12 min tour"
	Featured bool   `gorm:"default:false"`
	IsHero   bool   `gorm:"default:false"`
}

func (h *HomeTourItem) ItemID() string    { return h.ID }
func (h *HomeTourItem) ItemSlug() string  { return h.Slug }
func (h *HomeTourItem) ItemTitle() string { return h.Title }
func (h *HomeTourItem) Hero() bool        { return h.IsHero }

func (h *HomeTourItem) MarshalBinary() ([]byte, error) {
	return json.Marshal(h)
}

package model

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Reel is a short-form video entry. Reels have no excerpt and no hero slot.
type Reel struct {
	gorm.Model
	ID        string `gorm:"primaryKey;uuid;not null;"`
	Slug      string `gorm:"uniqueIndex;not null"`
	Title     string `gorm:"not null"`
	Thumbnail string
	Category  string
	Duration  string // free-text label, e.g. "0:45"
	Featured  bool   `gorm:"default:false"`
}

func (r *Reel) MarshalBinary() ([]byte, error) {
	return json.Marshal(r)
}

package model

import (
	"encoding/json"

	"gorm.io/gorm"
)

type Article struct {
	gorm.Model
	ID          string `gorm:"primaryKey;uuid;not null;"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	Excerpt     string
	Image       string
	Category    string
	ReadTime    string // free-text label, e.g. "6 min read"
	Featured    bool   `gorm:"default:false"`
	IsHero      bool   `gorm:"default:false"`
	Sections    string // JSON array of Section, encoded with Compression
	Compression string // the codec used to encode the sections column
}

func (a *Article) ItemID() string    { return a.ID }
func (a *Article) ItemSlug() string  { return a.Slug }
func (a *Article) ItemTitle() string { return a.Title }
func (a *Article) Hero() bool        { return a.IsHero }

func (a *Article) MarshalBinary() ([]byte, error) {
	return json.Marshal(a)
}

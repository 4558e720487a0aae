package homepage

import "encoding/json"

// Config is the homepage configuration document handed to consumers. A Config
// produced by Merge always carries the full canonical key set in Sections,
// Titles and Limits, whatever fragment was actually persisted.
type Config struct {
	Sections    map[string]bool   `json:"sections"`
	Titles      map[string]string `json:"titles"`
	Limits      map[string]int    `json:"limits"`
	Methodology []MethodologyItem `json:"methodology"`
	Podcast     PodcastBlock      `json:"podcast"`
	Nuggets     []Nugget          `json:"nuggets"`
}

// MethodologyItem is one entry of the "how we review" strip.
type MethodologyItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Slug        string `json:"slug"`
}

func (m MethodologyItem) RecordID() string {
	return m.ID
}

// Nugget is one entry of the reader-tips strip.
type Nugget struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	Slug        string `json:"slug"`
}

func (n Nugget) RecordID() string {
	return n.ID
}

// PodcastBlock is the single podcast teaser block, always exactly one.
type PodcastBlock struct {
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Slug        string `json:"slug"`
}

func (c *Config) MarshalBinary() ([]byte, error) {
	return json.Marshal(c)
}

// Document returns the config as the generic mapping shape the store persists.
func (c *Config) Document() (map[string]any, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

package model

import "encoding/json"

// Section is one ordered block of an article body. Sections are persisted as
// a JSON array on the owning article row, position is array order. The id is
// client-generated at creation time and never reassigned.
type Section struct {
	ID         string   `json:"id"`
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
	Image      string   `json:"image,omitempty"`
}

func (s Section) RecordID() string {
	return s.ID
}

// DecodeSections parses the sections column payload. An empty payload is an
// empty section list, not an error.
func DecodeSections(data []byte) ([]Section, error) {
	if len(data) == 0 {
		return []Section{}, nil
	}

	var sections []Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, err
	}

	return sections, nil
}

func EncodeSections(sections []Section) ([]byte, error) {
	if sections == nil {
		sections = []Section{}
	}
	return json.Marshal(sections)
}

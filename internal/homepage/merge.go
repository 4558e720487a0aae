package homepage

import (
	"encoding/json"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
)

// Merge reconciles whatever the store holds for the homepage document against
// the canonical defaults. The input may be missing whole parts, miss keys
// inside a part, or carry keys a newer schema dropped. The result always has
// the full canonical key set, keeps every well-typed value from the input and
// discards the rest. Merge is idempotent and Merge(nil) equals Default().
func Merge(raw map[string]any) *Config {
	cfg := Default()
	if len(raw) == 0 {
		return cfg
	}

	if sections, ok := raw["sections"].(map[string]any); ok {
		reportUnknownKeys("sections", sections, cfg.Sections)
		for key := range cfg.Sections {
			if v, ok := sections[key].(bool); ok {
				cfg.Sections[key] = v
			}
		}
	}

	if titles, ok := raw["titles"].(map[string]any); ok {
		reportUnknownKeys("titles", titles, cfg.Titles)
		for key := range cfg.Titles {
			if v, ok := titles[key].(string); ok {
				cfg.Titles[key] = v
			}
		}
	}

	if limits, ok := raw["limits"].(map[string]any); ok {
		reportUnknownKeys("limits", limits, cfg.Limits)
		for key := range cfg.Limits {
			n, ok := intValue(limits[key])
			if !ok || n < 0 {
				// garbage falls back to the default for the key
				continue
			}
			cfg.Limits[key] = clampLimit(n)
		}
	}

	// An admin who has written any methodology or nugget entry is fully
	// authoritative, the seed list only covers the never-edited case.
	if items, ok := decodeList[MethodologyItem](raw["methodology"]); ok && len(items) > 0 {
		cfg.Methodology = items
	}
	if items, ok := decodeList[Nugget](raw["nuggets"]); ok && len(items) > 0 {
		cfg.Nuggets = items
	}

	if podcast, ok := raw["podcast"].(map[string]any); ok {
		mergePodcast(&cfg.Podcast, podcast)
	}

	return cfg
}

func mergePodcast(block *PodcastBlock, raw map[string]any) {
	fields := map[string]*string{
		"label":       &block.Label,
		"title":       &block.Title,
		"description": &block.Description,
		"thumbnail":   &block.Thumbnail,
		"slug":        &block.Slug,
	}
	for key, dst := range fields {
		if v, ok := raw[key].(string); ok {
			*dst = v
		}
	}
}

func clampLimit(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// intValue accepts the numeric shapes a JSON round-trip can produce.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func decodeList[T any](v any) ([]T, bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, false
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logrus.Warnf("homepage: dropping malformed list entry: %v", err)
		return nil, false
	}

	return items, true
}

func reportUnknownKeys[V any](part string, raw map[string]any, canonical map[string]V) {
	have := mapset.NewSet[string]()
	for key := range raw {
		have.Add(key)
	}
	want := mapset.NewSet[string]()
	for key := range canonical {
		want.Add(key)
	}

	unknown := have.Difference(want)
	if unknown.Cardinality() > 0 {
		logrus.Debugf("homepage: dropping unknown %s keys: %v", part, unknown.ToSlice())
	}
}

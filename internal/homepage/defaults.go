package homepage

// Section keys of the homepage, one per block the public page can render.
const (
	SectionHero        = "hero"
	SectionArticles    = "articles"
	SectionReels       = "reels"
	SectionNewLaunches = "newLaunches"
	SectionHomeTours   = "homeTours"
	SectionMethodology = "methodology"
	SectionPodcast     = "podcast"
	SectionNuggets     = "nuggets"
)

// MaxLimit caps every item-count limit in the config.
const MaxLimit = 50

func defaultSections() map[string]bool {
	return map[string]bool{
		SectionHero:        true,
		SectionArticles:    true,
		SectionReels:       true,
		SectionNewLaunches: true,
		SectionHomeTours:   true,
		SectionMethodology: true,
		SectionPodcast:     true,
		SectionNuggets:     true,
	}
}

// Only the sections with a user-editable heading have a title key. The hero
// and podcast blocks carry their own copy.
func defaultTitles() map[string]string {
	return map[string]string{
		SectionArticles:    "Latest Articles",
		SectionReels:       "Watch & Learn",
		SectionNewLaunches: "New Launches",
		SectionHomeTours:   "Home Tours",
		SectionMethodology: "How We Review",
		SectionNuggets:     "Nuggets of Wisdom",
	}
}

func defaultLimits() map[string]int {
	return map[string]int{
		SectionArticles:    6,
		SectionReels:       8,
		SectionNewLaunches: 4,
		SectionHomeTours:   4,
		SectionNuggets:     6,
	}
}

func defaultMethodology() []MethodologyItem {
	return []MethodologyItem{
		{
			ID:          "m-research",
			Title:       "Research",
			Description: "We collect floor plans, pricing history and developer track records before writing a word.",
			Thumbnail:   "/images/methodology/research.jpg",
			Slug:        "our-research-process",
		},
		{
			ID:          "m-visit",
			Title:       "Visit",
			Description: "Every home and showflat featured on the site has been walked by our editors.",
			Thumbnail:   "/images/methodology/visit.jpg",
			Slug:        "how-we-visit",
		},
		{
			ID:          "m-verify",
			Title:       "Verify",
			Description: "Numbers are checked against public records, not marketing brochures.",
			Thumbnail:   "/images/methodology/verify.jpg",
			Slug:        "how-we-verify",
		},
	}
}

func defaultNuggets() []Nugget {
	return []Nugget{
		{
			ID:          "n-light",
			Title:       "Chase the light",
			Description: "Visit a unit at the hottest hour of the day before committing to it.",
			Avatar:      "/images/nuggets/light.jpg",
			Slug:        "chase-the-light",
		},
		{
			ID:          "n-storage",
			Title:       "Storage is invisible",
			Description: "The best renovations hide more than they show.",
			Avatar:      "/images/nuggets/storage.jpg",
			Slug:        "storage-is-invisible",
		},
	}
}

func defaultPodcast() PodcastBlock {
	return PodcastBlock{
		Label:       "The Habitat Podcast",
		Title:       "Conversations about the homes we live in",
		Description: "Weekly episodes with owners, designers and the occasional contractor.",
		Thumbnail:   "/images/podcast/cover.jpg",
		Slug:        "podcast",
	}
}

// Default returns a fresh, fully-populated configuration. Callers may mutate
// the result freely.
func Default() *Config {
	return &Config{
		Sections:    defaultSections(),
		Titles:      defaultTitles(),
		Limits:      defaultLimits(),
		Methodology: defaultMethodology(),
		Podcast:     defaultPodcast(),
		Nuggets:     defaultNuggets(),
	}
}

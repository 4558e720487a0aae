package model

// Collection names match the public site's content sections. Every content
// table is keyed by a uuid id with a unique slug inside its own collection.
type Collection string

const (
	CollectionArticles    Collection = "articles"
	CollectionReels       Collection = "reels"
	CollectionNewLaunches Collection = "new-launches"
	CollectionHomeTours   Collection = "home-tours"
)

// HeroCollections are the collections that carry a homepage hero slot. The
// new-launches spotlight is a separate slot but rides the same mechanism.
var HeroCollections = []Collection{
	CollectionArticles,
	CollectionHomeTours,
	CollectionNewLaunches,
}

func (c Collection) HasHero() bool {
	for _, hc := range HeroCollections {
		if hc == c {
			return true
		}
	}
	return false
}

// ContentItem is the shape shared by the hero-capable content models. The
// hero service works against this view so it does not care which collection
// it is pointed at.
type ContentItem interface {
	ItemID() string
	ItemSlug() string
	ItemTitle() string
	Hero() bool
}

var categories = map[Collection][]string{
	CollectionArticles:    {"design", "diy", "guides", "inspiration", "news"},
	CollectionReels:       {"tour", "makeover", "tips"},
	CollectionNewLaunches: {"condo", "executive", "landed"},
	CollectionHomeTours:   {"hdb", "condo", "landed"},
}

// Categories returns the closed category set for a collection.
func Categories(c Collection) []string {
	return categories[c]
}

// ValidCategory reports whether cat belongs to the collection's category set.
// The empty category is allowed, it means uncategorized.
func ValidCategory(c Collection, cat string) bool {
	if cat == "" {
		return true
	}
	for _, known := range categories[c] {
		if known == cat {
			return true
		}
	}
	return false
}

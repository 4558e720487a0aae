package homepage

import mapset "github.com/deckarep/golang-set/v2"

// The canonical key sets are fixed by the schema, independent of what any
// release ever persisted.
var (
	sectionKeys = keySet(defaultSections())
	titleKeys   = keySet(defaultTitles())
	limitKeys   = keySet(defaultLimits())
)

func keySet[V any](m map[string]V) mapset.Set[string] {
	set := mapset.NewSet[string]()
	for key := range m {
		set.Add(key)
	}
	return set
}

func HasSectionKey(key string) bool {
	return sectionKeys.Contains(key)
}

func HasTitleKey(key string) bool {
	return titleKeys.Contains(key)
}

func HasLimitKey(key string) bool {
	return limitKeys.Contains(key)
}

func SectionKeys() []string {
	return sectionKeys.ToSlice()
}

func TitleKeys() []string {
	return titleKeys.ToSlice()
}

func LimitKeys() []string {
	return limitKeys.ToSlice()
}

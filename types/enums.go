package types

import "fmt"

// FilterLevel controls which statuses a filtered stream delivers.
type FilterLevel string

// SearchResultType selects the ranking of search results.
type SearchResultType string

// Alignment of an embedded status.
type Alignment string

// Theme of an embedded status.
type Theme string

// WidgetType switches an embedded status into a video player.
type WidgetType string

const (
	FilterLevelNone   FilterLevel = "none"
	FilterLevelLow    FilterLevel = "low"
	FilterLevelMedium FilterLevel = "medium"

	SearchResultMixed   SearchResultType = "mixed"
	SearchResultRecent  SearchResultType = "recent"
	SearchResultPopular SearchResultType = "popular"

	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
	AlignCenter Alignment = "center"
	AlignNone   Alignment = "none"

	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	WidgetVideo WidgetType = "video"
)

// enumValues is the single table of wire values accepted for each
// enumeration. New variants need to be added here and as a constant above.
var enumValues = map[string][]string{
	"filter level":       {string(FilterLevelNone), string(FilterLevelLow), string(FilterLevelMedium)},
	"search result type": {string(SearchResultMixed), string(SearchResultRecent), string(SearchResultPopular)},
	"alignment":          {string(AlignLeft), string(AlignRight), string(AlignCenter), string(AlignNone)},
	"theme":              {string(ThemeLight), string(ThemeDark)},
	"widget type":        {string(WidgetVideo)},
}

func validate(kind, value string) error {
	for _, v := range enumValues[kind] {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q, must be one of %v", kind, value, enumValues[kind])
}

func (f FilterLevel) String() string      { return string(f) }
func (r SearchResultType) String() string { return string(r) }
func (a Alignment) String() string        { return string(a) }
func (t Theme) String() string            { return string(t) }
func (w WidgetType) String() string       { return string(w) }

func (f FilterLevel) Valid() error      { return validate("filter level", string(f)) }
func (r SearchResultType) Valid() error { return validate("search result type", string(r)) }
func (a Alignment) Valid() error        { return validate("alignment", string(a)) }
func (t Theme) Valid() error            { return validate("theme", string(t)) }
func (w WidgetType) Valid() error       { return validate("widget type", string(w)) }

// ParseFilterLevel converts user input, such as a command line flag, into a
// FilterLevel.
func ParseFilterLevel(value string) (FilterLevel, error) {
	f := FilterLevel(value)
	return f, f.Valid()
}

func ParseSearchResultType(value string) (SearchResultType, error) {
	r := SearchResultType(value)
	return r, r.Valid()
}

package lexicon

import "fmt"

// Category is the grammatical slot a word fills in a phrase
type Category uint8

const (
	SubjectSingular Category = iota
	SubjectPlural
	ActionSingular
	ActionPlural
	Object
	Descriptor
	Place
	Time

	categoryCount
)

var categoryTags = [categoryCount]string{
	SubjectSingular: "subj_sg",
	SubjectPlural:   "subj_pl",
	ActionSingular:  "action_sg",
	ActionPlural:    "action_pl",
	Object:          "obj",
	Descriptor:      "desc",
	Place:           "place",
	Time:            "time",
}

// AllCategories returns every category in declaration order
func AllCategories() []Category {
	all := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		all = append(all, c)
	}
	return all
}

// String returns the short tag, e.g. "subj_sg"
func (c Category) String() string {
	if c >= categoryCount {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryTags[c]
}

// Valid reports whether c is one of the declared categories
func (c Category) Valid() bool {
	return c < categoryCount
}

// ParseCategory maps a short tag back to its Category
func ParseCategory(tag string) (Category, error) {
	for i, t := range categoryTags {
		if t == tag {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", tag)
}

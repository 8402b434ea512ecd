package grammar

import (
	"strings"

	"github.com/lixenwraith/phrase-drift/lexicon"
)

const (
	MinTemplateLen = 3
	MaxTemplateLen = 5
)

// Template is an ordered sequence of categories describing a phrase shape
type Template []lexicon.Category

// String renders the template as "subj_sg → action_sg → obj"
func (t Template) String() string {
	parts := make([]string, len(t))
	for i, c := range t {
		parts[i] = c.String()
	}
	return strings.Join(parts, " → ")
}

// Contains reports whether the template uses category c
func (t Template) Contains(c lexicon.Category) bool {
	for _, tc := range t {
		if tc == c {
			return true
		}
	}
	return false
}

// DefaultTemplates returns the built-in phrase shapes
func DefaultTemplates() []Template {
	return []Template{
		{lexicon.SubjectSingular, lexicon.ActionSingular, lexicon.Object, lexicon.Descriptor},
		{lexicon.SubjectPlural, lexicon.ActionPlural, lexicon.Object, lexicon.Descriptor},
		{lexicon.SubjectSingular, lexicon.Descriptor, lexicon.ActionSingular},
		{lexicon.SubjectPlural, lexicon.Descriptor, lexicon.ActionPlural},
		{lexicon.Object, lexicon.ActionSingular, lexicon.Descriptor},
		{lexicon.Place, lexicon.SubjectSingular, lexicon.ActionSingular, lexicon.Time},
		{lexicon.Time, lexicon.SubjectPlural, lexicon.ActionPlural, lexicon.Place},
		{lexicon.SubjectSingular, lexicon.ActionSingular, lexicon.Place, lexicon.Descriptor},
		{lexicon.SubjectPlural, lexicon.ActionPlural, lexicon.Object},
		{lexicon.Place, lexicon.Descriptor, lexicon.ActionSingular},
		{lexicon.SubjectSingular, lexicon.ActionSingular, lexicon.Object},
		{lexicon.Descriptor, lexicon.SubjectSingular, lexicon.ActionSingular},
		{lexicon.Place, lexicon.Object, lexicon.ActionSingular},
		{lexicon.Time, lexicon.Object, lexicon.ActionSingular, lexicon.Descriptor},
		{lexicon.SubjectPlural, lexicon.Descriptor, lexicon.Place, lexicon.ActionPlural},
	}
}

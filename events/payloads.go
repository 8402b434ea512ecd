package events

// WordPayload describes a word at the moment of the event
type WordPayload struct {
	Text     string
	Category string
	Lane     int
	Progress float64
}

// PhrasePayload carries a completed phrase
type PhrasePayload struct {
	Text     string
	Words    []string
	Template string
	Index    int // Position in the phrase history
}

// TemplatePayload carries the newly selected template
type TemplatePayload struct {
	Template string
	Length   int
}

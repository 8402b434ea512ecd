package lexicon

// Dictionary maps each category to its ordered word list
type Dictionary map[Category][]string

// DefaultDictionary returns a fresh copy of the built-in word lists
func DefaultDictionary() Dictionary {
	return Dictionary{
		SubjectSingular: {
			"fish", "memory", "current", "silence", "mirror", "voice", "dream", "drop", "fragment", "cloud",
		},
		SubjectPlural: {
			"fish", "memories", "currents", "echoes", "voices", "fragments", "dreams", "bubbles", "layers", "ripples",
		},
		ActionSingular: {
			"drifts", "vanishes", "glides", "echoes", "hovers", "lingers", "sleeps", "rises", "dives", "shivers",
		},
		ActionPlural: {
			"drift", "vanish", "glide", "echo", "hover", "linger", "sleep", "rise", "dive", "shiver",
		},
		Object: {
			"reflection", "path", "whisper", "trace", "shore", "thread", "pulse", "shadow", "light", "signal",
		},
		Descriptor: {
			"slowly", "without sound", "like a question", "barely", "in circles", "as if lost", "with weight", "softly", "from below", "through time",
		},
		Place: {
			"beneath the surface", "in the deep", "at the edge", "near the light", "within the current", "under the sky", "on the border", "beyond the reef",
		},
		Time: {
			"at dawn", "before memory", "after the storm", "in a pause", "during the drift", "when silence falls", "at low tide", "in the between",
		},
	}
}

// Clone returns a deep copy so callers can mutate lists freely
func (d Dictionary) Clone() Dictionary {
	out := make(Dictionary, len(d))
	for c, words := range d {
		out[c] = append([]string(nil), words...)
	}
	return out
}

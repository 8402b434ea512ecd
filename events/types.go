package events

import "fmt"

// EventType represents the type of sketch event
type EventType int

const (
	// EventWordSpawned signals a new traveling word on a lane
	// Trigger: Lane spawn step | Payload: *WordPayload
	EventWordSpawned EventType = iota

	// EventWordCollected signals a word accepted into the collector buffer
	// Trigger: Assembler acceptance | Payload: *WordPayload
	EventWordCollected

	// EventWordRejected signals a word entering the center zone without being accepted
	// Trigger: Assembler rejection | Payload: *WordPayload
	EventWordRejected

	// EventWordExpired signals a word leaving its path uncollected
	// Its text is not released to the word bank | Payload: *WordPayload
	EventWordExpired

	// EventPhraseCompleted signals a full collector buffer
	// Consumer: audio chime, logging | Payload: *PhrasePayload
	EventPhraseCompleted

	// EventPhraseReset signals the delayed reset has run
	// Payload: nil
	EventPhraseReset

	// EventTemplateSelected signals a new active template
	// Payload: *TemplatePayload
	EventTemplateSelected

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventWordSpawned:      "WordSpawned",
	EventWordCollected:    "WordCollected",
	EventWordRejected:     "WordRejected",
	EventWordExpired:      "WordExpired",
	EventPhraseCompleted:  "PhraseCompleted",
	EventPhraseReset:      "PhraseReset",
	EventTemplateSelected: "TemplateSelected",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return fmt.Sprintf("EventType(%d)", int(t))
	}
	return eventNames[t]
}

// GameEvent is a single queued event
// Tick is the assembler tick number the event was raised on
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}

package main

import (
	"log"

	"github.com/lixenwraith/phrase-drift/events"
)

// logHandler writes phrase lifecycle events to the debug log
func logHandler[T any]() events.HandlerFunc[T] {
	return events.HandlerFunc[T]{
		Types: []events.EventType{
			events.EventPhraseCompleted,
			events.EventPhraseReset,
			events.EventTemplateSelected,
		},
		Fn: func(_ T, ev events.GameEvent) {
			switch p := ev.Payload.(type) {
			case *events.PhrasePayload:
				log.Printf("tick %d: %s #%d %q (%s)", ev.Tick, ev.Type, p.Index, p.Text, p.Template)
			case *events.TemplatePayload:
				log.Printf("tick %d: %s %s", ev.Tick, ev.Type, p.Template)
			default:
				log.Printf("tick %d: %s", ev.Tick, ev.Type)
			}
		},
	}
}

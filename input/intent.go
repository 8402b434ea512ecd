package input

import "github.com/gdamore/tcell/v2"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // q, Esc, Ctrl+C
	IntentTogglePause // Space
	IntentToggleHUD   // h
	IntentToggleMute  // m
	IntentResize      // Terminal resize event
	IntentPointer     // Mouse motion
)

func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "quit"
	case IntentTogglePause:
		return "toggle-pause"
	case IntentToggleHUD:
		return "toggle-hud"
	case IntentToggleMute:
		return "toggle-mute"
	case IntentResize:
		return "resize"
	case IntentPointer:
		return "pointer"
	default:
		return "none"
	}
}

var runeIntents = map[rune]IntentType{
	'q': IntentQuit,
	'Q': IntentQuit,
	' ': IntentTogglePause,
	'h': IntentToggleHUD,
	'm': IntentToggleMute,
}

// Intent carries the action and, for pointer events, the cell position
type Intent struct {
	Type IntentType
	X, Y int
}

// Translate maps a terminal event to an intent
func Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Intent{Type: TranslateKey(ev.Key(), ev.Rune())}
	case *tcell.EventMouse:
		x, y := ev.Position()
		return Intent{Type: IntentPointer, X: x, Y: y}
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

// TranslateKey maps a key and its rune to an intent
func TranslateKey(key tcell.Key, r rune) IntentType {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyRune:
		return runeIntents[r]
	}
	return IntentNone
}

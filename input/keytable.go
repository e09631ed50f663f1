package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]IntentType
	Runes       map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyCtrlQ: IntentQuit,
			tcell.KeyEnter: IntentReplay,
			tcell.KeyF1:    IntentDebug,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentPause,
			'm': IntentMute,
			' ': IntentReplay,
		},
	}
}

// Classify resolves a terminal event into an intent
// Mouse clicks map to replay; motion is handled by Pointer
func (kt *KeyTable) Classify(ev tcell.Event) IntentType {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyRune {
			if e.Modifiers()&tcell.ModCtrl != 0 {
				if r := e.Rune(); r == 'c' || r == 'q' {
					return IntentQuit
				}
				return IntentNone
			}
			return kt.Runes[e.Rune()]
		}
		return kt.SpecialKeys[e.Key()]
	case *tcell.EventMouse:
		if e.Buttons()&tcell.Button1 != 0 {
			return IntentReplay
		}
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

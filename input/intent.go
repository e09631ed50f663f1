package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // Ctrl+C, Ctrl+Q, q
	IntentPause  // p
	IntentMute   // m
	IntentReplay // click or Space/Enter while the replay prompt shows
	IntentDebug  // F1 toggles the status overlay
	IntentResize // terminal resize
)

var intentNames = [...]string{
	IntentNone:   "none",
	IntentQuit:   "quit",
	IntentPause:  "pause",
	IntentMute:   "mute",
	IntentReplay: "replay",
	IntentDebug:  "debug",
	IntentResize: "resize",
}

func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Package speech pronounces words and sentences through an external
// text-to-speech service.
package speech

// Locales the app speaks in.
const (
	LocaleUS = "en-US"
	LocaleUK = "en-GB"
	LocaleKR = "ko-KR"
)

// SpeakingRate slows playback slightly for learners.
const SpeakingRate = 0.9

// Speaker pronounces text. Speak returns immediately; playback and its
// failures happen in the background.
type Speaker interface {
	Speak(text, locale string)
}

// Nop is a Speaker that stays silent.
type Nop struct{}

func (Nop) Speak(string, string) {}

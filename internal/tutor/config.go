package tutor

// Config holds tutor generation settings.
type Config struct {
	ChatMaxTokens    int
	ExplainMaxTokens int
	ExampleMaxTokens int
	Temperature      float64

	// HistoryTurns caps how many earlier chat turns are sent with a
	// question.
	HistoryTurns int
}

// DefaultConfig returns the budgets the app uses.
func DefaultConfig() Config {
	return Config{
		ChatMaxTokens:    1024,
		ExplainMaxTokens: 1024,
		ExampleMaxTokens: 256,
		Temperature:      0.7,
		HistoryTurns:     12,
	}
}

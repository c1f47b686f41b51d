package visualizer

// Options controls diagram generation.
type Options struct {
	Direction     string   // Diagram direction: "v2" (top-down) or "v2 LR" style suffix
	ShowEvents    bool     // Label edges with their trigger events
	ShowActions   bool     // Annotate states with their entry action names
	HighlightPath []string // States to highlight, e.g. a recorded run
}

// DefaultOptions returns the default diagram options.
func DefaultOptions() Options {
	return Options{
		Direction:   "v2",
		ShowEvents:  true,
		ShowActions: false,
	}
}

package arclang

// Config carries the interpreter settings.  The set is small and
// fixed, so plain typed fields do; zero values are not meaningful,
// start from NewConfig and override what you need.
type Config struct {
	// GCThreshold is how many allocations may accumulate before a
	// collection checkpoint fires.
	GCThreshold int

	// GCEnabled turns the collector off entirely when false; the
	// heap then grows without bound.
	GCEnabled bool

	// Prompt is printed before every REPL line.
	Prompt string

	// Prelude is the file name looked up next to the executable
	// (then in its parent directory) at startup.
	Prelude string
}

// NewConfig returns the default settings.
func NewConfig() *Config {
	return &Config{
		GCThreshold: 10000,
		GCEnabled:   true,
		Prompt:      "> ",
		Prelude:     "library.arc",
	}
}

package consoles

// Console receives the progress messages of every step. Prefixes pushed are
// written before each line until popped.
type Console interface {
	Printf(format string, a ...any)

	PushPrefix(format string, a ...any)
	PopPrefix()
}

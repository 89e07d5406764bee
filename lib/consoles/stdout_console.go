package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

type writerConsole struct {
	out       io.Writer
	timestamp bool
	prefixes  []string
}

func NewStdOutConsole() Console {
	return &writerConsole{
		out:       os.Stdout,
		timestamp: true,
	}
}

// NewWriterConsole writes to out without timestamps.
func NewWriterConsole(out io.Writer) Console {
	return &writerConsole{
		out: out,
	}
}

func (o *writerConsole) Printf(format string, a ...any) {
	builder := strings.Builder{}
	if o.timestamp {
		builder.WriteString("[")
		builder.WriteString(time.Now().Format("15:04:05"))
		builder.WriteString("] ")
	}
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	_, _ = io.WriteString(o.out, builder.String())
}

func (o *writerConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *writerConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}

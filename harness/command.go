package harness

import (
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// describeCommand renders an argv as a copy-pasteable shell command, for
// debug output and error messages.
func describeCommand(argv []string) string {
	var b commandBuilder
	b.add(argv...)
	return b.String()
}

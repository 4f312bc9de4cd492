package config

import (
	"fmt"
	"io"
	"os"
)

// ExitfTo writes a formatted message and a newline to w, then exits with
// status 1.
func ExitfTo(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
	os.Exit(1)
}

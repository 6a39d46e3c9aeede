package logger

import (
	"fmt"
	"log"
	"os"
)

// New returns a stdlib-backed logger with a component prefix for
// operator-facing CLI output.
func New(component string) *log.Logger {
	return log.New(os.Stdout, fmt.Sprintf("[%s] ", component), log.LstdFlags)
}

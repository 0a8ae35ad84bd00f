package installer

import (
	"fmt"
	"io"
	"strings"
)

// WriteBanner prints the tool header.
func WriteBanner(w io.Writer) {
	fmt.Fprintln(w, "Pip Installation Helper")
	fmt.Fprintln(w, strings.Repeat("=", 50))
}

// WriteNextSteps prints usage hints after a fresh install, or manual
// instructions after a failure. Nothing is printed when pip was already there.
func WriteNextSteps(w io.Writer, outcome Outcome, url string) {
	switch outcome {
	case OutcomeInstalled:
		fmt.Fprintln(w, "\nYou can now use pip to install Python packages.")
		fmt.Fprintln(w, "Example: pip install package_name")
	case OutcomeFailed:
		fmt.Fprintln(w, "\nFailed to install pip. Please try installing manually:")
		fmt.Fprintf(w, "1. Download get-pip.py from %s\n", url)
		fmt.Fprintln(w, "2. Run: python get-pip.py")
	}
}

// Package trace recovers a move sequence from the textual report nuXmv
// prints for a "does the win condition eventually hold" query. The report
// is a human-oriented counterexample listing, not a structured trace
// format, so decoding is a best-effort scrape kept behind a single narrow
// entry point.
package trace

import (
	"regexp"
	"strings"
)

// alphabet is the move vocabulary of the generated model: lowercase for
// plain steps, uppercase for pushes.
const alphabet = "lurdLURD"

var solutionLine = regexp.MustCompile(`Solution:\s*LURD moves:\s*([lurdLURD]+)`)

// Decode extracts the move sequence from raw checker output. Two tiers,
// first match wins: an explicit solution annotation is returned verbatim;
// otherwise every assignment to the move selector is collected in line
// order. When neither tier yields a move, ok is false — which covers both
// a verified-unsolvable board and a report format the scrape does not
// recognize, and callers must present it as "no solution found" rather
// than "proved unsolvable".
func Decode(output string) (moves string, ok bool) {
	if m := solutionLine.FindStringSubmatch(output); m != nil {
		return m[1], true
	}

	var b strings.Builder
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "move =") {
			continue
		}
		value := strings.TrimSpace(line[strings.LastIndex(line, "=")+1:])
		if len(value) == 1 && strings.Contains(alphabet, value) {
			b.WriteString(value)
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

package auxengine

import (
	"strconv"
	"strings"
)

// Wire protocol framing (SPEC_FULL.md §6): small typed builders and
// scanners instead of ad hoc fmt.Sprintf/strings.Split scattered through
// the worker loop.

func setOptionCommand(name, value string) string {
	return "setoption name " + name + " value " + value
}

func positionCommand(fen string, moves []string) string {
	var b strings.Builder
	b.WriteString("position fen ")
	b.WriteString(fen)
	if len(moves) > 0 {
		b.WriteString(" moves ")
		b.WriteString(strings.Join(moves, " "))
	}
	return b.String()
}

func goMovetimeCommand(ms int) string {
	return "go movetime " + strconv.Itoa(ms)
}

const goInfiniteCommand = "go infinite"
const stopCommand = "stop"

// infoLine is the parsed form of a helper's "info ... pv ..." line.
type infoLine struct {
	Depth int
	Nodes int
	PV    []string
	ok    bool
}

func parseInfoLine(line string) infoLine {
	var fields = strings.Fields(line)
	if len(fields) == 0 || fields[0] != "info" {
		return infoLine{}
	}
	var out infoLine
	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			if i+1 < len(fields) {
				out.Depth, _ = strconv.Atoi(fields[i+1])
				i++
			}
		case "nodes":
			if i+1 < len(fields) {
				out.Nodes, _ = strconv.Atoi(fields[i+1])
				i++
			}
		case "pv":
			out.PV = fields[i+1:]
			out.ok = true
			i = len(fields)
		}
	}
	if !out.ok {
		return infoLine{}
	}
	return out
}

// bestmoveLine reports the move token of a "bestmove ..." line, and
// whether the token itself is the corrupt "info" resync marker
// (SPEC_FULL.md §6: "bestmove info" is treated as a resync event).
func bestmoveLine(line string) (move string, corrupted bool, ok bool) {
	var fields = strings.Fields(line)
	if len(fields) < 2 || fields[0] != "bestmove" {
		return "", false, false
	}
	if fields[1] == "info" {
		return "", true, true
	}
	return fields[1], false, true
}

package headless

import (
	"fmt"
	"strings"
	"sync"
)

// Journal operations.
const (
	OpSetVisible     = "setVisible"
	OpSetSizeRequest = "setSizeRequest"
	OpPut            = "put"
	OpMove           = "move"
	OpRemove         = "remove"
)

// Call is one recorded native call.
type Call struct {
	Op     string
	Target string
	Child  string
	Args   []int
}

func (c Call) String() string {
	var sb strings.Builder
	sb.WriteString(c.Op)
	sb.WriteString("(")
	sb.WriteString(c.Target)
	if c.Child != "" {
		sb.WriteString(", ")
		sb.WriteString(c.Child)
	}
	for _, a := range c.Args {
		fmt.Fprintf(&sb, ", %d", a)
	}
	sb.WriteString(")")
	return sb.String()
}

// Journal is an ordered record of native calls.
type Journal struct {
	mu    sync.Mutex
	calls []Call
}

func (j *Journal) record(c Call) {
	j.mu.Lock()
	j.calls = append(j.calls, c)
	j.mu.Unlock()
}

// Calls returns a copy of the recorded calls.
func (j *Journal) Calls() []Call {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Call, len(j.calls))
	copy(out, j.calls)
	return out
}

// Filter returns the calls with the given op.
func (j *Journal) Filter(op string) []Call {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []Call
	for _, c := range j.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many op calls targeted the named widget.
func (j *Journal) Count(op, target string) int {
	n := 0
	for _, c := range j.Filter(op) {
		if c.Target == target {
			n++
		}
	}
	return n
}

// Reset clears the journal.
func (j *Journal) Reset() {
	j.mu.Lock()
	j.calls = j.calls[:0]
	j.mu.Unlock()
}

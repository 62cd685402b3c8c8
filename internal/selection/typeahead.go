package selection

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// DefaultTypeAheadTimeout is the idle time after which the prefix resets.
const DefaultTypeAheadTimeout = time.Second

// typeAhead accumulates printable keys into a search prefix.
type typeAhead struct {
	timeout time.Duration
	fold    cases.Caser
	prefix  string
	last    time.Time
}

func newTypeAhead(timeout time.Duration) *typeAhead {
	if timeout <= 0 {
		timeout = DefaultTypeAheadTimeout
	}
	return &typeAhead{timeout: timeout, fold: cases.Fold()}
}

// push appends text to the prefix, resetting it first when the previous
// key is older than the timeout. It reports whether this is a fresh search.
func (t *typeAhead) push(text string, now time.Time) (prefix string, fresh bool) {
	if t.prefix == "" || now.Sub(t.last) > t.timeout {
		t.prefix = ""
		fresh = true
	}
	t.prefix += t.fold.String(text)
	t.last = now
	return t.prefix, fresh
}

func (t *typeAhead) reset() { t.prefix = "" }

func (t *typeAhead) matches(label, prefix string) bool {
	return strings.HasPrefix(t.fold.String(label), prefix)
}

// Package d3dtest provides in-memory fakes for the d3d interfaces. Every fake
// created from one Driver appends to a shared Log so tests can assert on the
// order of calls across objects.
package d3dtest

import (
	"fmt"
	"strings"
	"sync"
)

// Log is safe to append to from several goroutines. Readers run after the
// code under test returns.
type Log struct {
	mu    sync.Mutex
	Calls []string
}

func (l *Log) Add(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Calls = append(l.Calls, fmt.Sprintf(format, args...))
}

// Index returns the position of the first call equal to call at or after
// from, or -1.
func (l *Log) Index(call string, from int) int {
	for i := from; i < len(l.Calls); i++ {
		if l.Calls[i] == call {
			return i
		}
	}
	return -1
}

// Filter returns the calls whose text starts with prefix.
func (l *Log) Filter(prefix string) []string {
	var out []string
	for _, c := range l.Calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (l *Log) Count(call string) int {
	n := 0
	for _, c := range l.Calls {
		if c == call {
			n++
		}
	}
	return n
}

func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Calls = nil
}

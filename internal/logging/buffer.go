package logging

import (
	"strings"
	"sync"
)

// DefaultLines is the buffer capacity when none is configured.
const DefaultLines = 500

// Buffer keeps the most recent log lines in memory. It is a
// zapcore.WriteSyncer; zap hands it one encoded entry per Write.
type Buffer struct {
	mu    sync.Mutex
	lines []string
	start int
	size  int
}

// NewBuffer creates a buffer holding up to capacity lines.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultLines
	}
	return &Buffer{lines: make([]string, capacity)}
}

// Write appends each non-empty line of p, evicting the oldest when full.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		b.push(line)
	}
	return len(p), nil
}

func (b *Buffer) push(line string) {
	capacity := len(b.lines)
	if b.size < capacity {
		b.lines[(b.start+b.size)%capacity] = line
		b.size++
		return
	}
	b.lines[b.start] = line
	b.start = (b.start + 1) % capacity
}

// Sync is a no-op.
func (b *Buffer) Sync() error {
	return nil
}

// Lines returns up to n of the newest lines, oldest first. n <= 0 returns
// everything held.
func (b *Buffer) Lines(n int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n <= 0 || n > b.size {
		n = b.size
	}
	out := make([]string, n)
	capacity := len(b.lines)
	first := b.size - n
	for i := 0; i < n; i++ {
		out[i] = b.lines[(b.start+first+i)%capacity]
	}
	return out
}

// Len returns the number of lines held.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Cap returns the maximum number of lines held.
func (b *Buffer) Cap() int {
	return len(b.lines)
}

package scheduler

import (
	"fmt"
	"sync"

	"github.com/fatih/color"
)

// ColorCache assigns each task a stable color for its output prefix,
// cycling through a small palette, grounded on the teacher's
// run.go::execContext.exec ColorCache/PrefixColor call sites (package
// body not retrieved; reconstructed here).
type ColorCache struct {
	mu       sync.Mutex
	assigned map[string]*color.Color
	palette  []*color.Color
	next     int
}

// NewColorCache builds an empty cache over a fixed palette.
func NewColorCache() *ColorCache {
	return &ColorCache{
		assigned: map[string]*color.Color{},
		palette: []*color.Color{
			color.New(color.FgCyan),
			color.New(color.FgMagenta),
			color.New(color.FgYellow),
			color.New(color.FgGreen),
			color.New(color.FgBlue),
			color.New(color.FgRed),
		},
	}
}

// PrefixColor returns the color assigned to name, assigning the next
// palette entry the first time name is seen.
func (c *ColorCache) PrefixColor(name string) *color.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	if col, ok := c.assigned[name]; ok {
		return col
	}
	col := c.palette[c.next%len(c.palette)]
	c.next++
	c.assigned[name] = col
	return col
}

// Prefix renders "name: " in name's assigned color.
func (c *ColorCache) Prefix(name string) string {
	return c.PrefixColor(name).Sprint(fmt.Sprintf("%s: ", name))
}

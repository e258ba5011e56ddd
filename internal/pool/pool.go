// Package pool holds sync.Pool wrappers for the allocations this repo's
// hot paths repeat most: rendering a tree snapshot to text, and reading
// PTY output. Reused buffers instead of fresh ones per frame.
package pool

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

const byteSliceSize = 32 * 1024

var stringBuilderPool = sync.Pool{
	New: func() any { return &strings.Builder{} },
}

// GetStringBuilder returns a reset *strings.Builder from the pool.
func GetStringBuilder() *strings.Builder {
	sb := stringBuilderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// PutStringBuilder returns sb to the pool.
func PutStringBuilder(sb *strings.Builder) {
	stringBuilderPool.Put(sb)
}

var layerSlicePool = sync.Pool{
	New: func() any {
		s := make([]*lipgloss.Layer, 0, 16)
		return &s
	},
}

// GetLayerSlice returns a zero-length, capacity-16+ layer slice from the pool.
func GetLayerSlice() *[]*lipgloss.Layer {
	s := layerSlicePool.Get().(*[]*lipgloss.Layer)
	*s = (*s)[:0]
	return s
}

// PutLayerSlice returns s to the pool.
func PutLayerSlice(s *[]*lipgloss.Layer) {
	layerSlicePool.Put(s)
}

var byteSlicePool = sync.Pool{
	New: func() any {
		b := make([]byte, byteSliceSize)
		return &b
	},
}

// GetByteSlice returns a 32KiB byte slice from the pool, sized for one
// PTY read.
func GetByteSlice() *[]byte {
	return byteSlicePool.Get().(*[]byte)
}

// PutByteSlice returns b to the pool.
func PutByteSlice(b *[]byte) {
	byteSlicePool.Put(b)
}

var stylePool = sync.Pool{
	New: func() any {
		s := lipgloss.NewStyle()
		return &s
	},
}

// GetStyle returns a fresh *lipgloss.Style from the pool.
func GetStyle() *lipgloss.Style {
	s := stylePool.Get().(*lipgloss.Style)
	*s = lipgloss.NewStyle()
	return s
}

// PutStyle returns s to the pool.
func PutStyle(s *lipgloss.Style) {
	stylePool.Put(s)
}

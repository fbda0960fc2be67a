// Package style resolves semantic tokens (colour, variant, size, radius and
// theme mode) to concrete control treatments and geometry.
//
// Every resolver is total: unknown tokens fall back to the family defaults
// and nothing returns an error. Use the Parse helpers in tokens.go when the
// caller wants to learn about a fallback.
package style

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/alexisbeaulieu97/tokenkit/internal/palette"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
)

// DefaultCacheSize bounds the number of memoized treatments per engine.
const DefaultCacheSize = 512

// Engine resolves treatments against one palette and memoizes the results.
// It is safe for concurrent use.
type Engine struct {
	palette *palette.Palette

	mu    sync.Mutex
	cache *lru.Cache
}

// NewEngine creates an engine over pal. A nil palette means palette.Default().
func NewEngine(pal *palette.Palette, cacheSize int) *Engine {
	if pal == nil {
		pal = palette.Default()
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	return &Engine{palette: pal, cache: lru.New(cacheSize)}
}

// Palette returns the palette the engine resolves against.
func (e *Engine) Palette() *palette.Palette {
	return e.palette
}

type cacheKey struct {
	family  Family
	color   palette.Color
	variant string
	mode    theme.Mode
}

// Treatment resolves a button family treatment.
func (e *Engine) Treatment(c palette.Color, v Variant, m theme.Mode) Treatment {
	return e.memo(cacheKey{family: FamilyButton, color: c, variant: string(v), mode: m}, func() any {
		return plansFor(FamilyButton).resolve(e.palette, c, v, m)
	}).(Treatment)
}

// InputTreatment resolves an input family treatment, including its
// placeholder colour.
func (e *Engine) InputTreatment(c palette.Color, v Variant, m theme.Mode) Treatment {
	return e.memo(cacheKey{family: FamilyInput, color: c, variant: string(v), mode: m}, func() any {
		return plansFor(FamilyInput).resolve(e.palette, c, v, m)
	}).(Treatment)
}

// CompactTreatment resolves a compact family treatment.
func (e *Engine) CompactTreatment(v CompactVariant, m theme.Mode) CompactTreatment {
	return e.memo(cacheKey{family: FamilyCompact, variant: string(v), mode: m}, func() any {
		return resolveCompact(e.palette, v, m)
	}).(CompactTreatment)
}

// Resolve dispatches on family; unknown families resolve as buttons. Compact
// controls ignore the colour.
func (e *Engine) Resolve(family Family, c palette.Color, variant string, m theme.Mode) Treatment {
	switch family {
	case FamilyInput:
		return e.InputTreatment(c, Variant(variant), m)
	case FamilyCompact:
		return e.CompactTreatment(CompactVariant(variant), m).Treatment
	default:
		return e.Treatment(c, Variant(variant), m)
	}
}

func (e *Engine) memo(key cacheKey, compute func() any) any {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v, ok := e.cache.Get(key); ok {
		return v
	}
	v := compute()
	e.cache.Add(key, v)
	return v
}

// ResolveTreatment resolves a button family treatment against the default
// palette without memoization.
func ResolveTreatment(c palette.Color, v Variant, m theme.Mode) Treatment {
	return buttonPlans.resolve(palette.Default(), c, v, m)
}

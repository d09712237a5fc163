package outercolor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_FallbacksWhenNeverSet(t *testing.T) {
	c := NewCache()
	assert.False(t, c.Initialized())
	assert.Equal(t, RGB{R: 255, G: 255, B: 255}, c.Foreground())
	assert.Equal(t, RGB{R: 53, G: 55, B: 49}, c.Background())
	assert.True(t, c.Get().Empty())
}

func TestCache_SetThenGet(t *testing.T) {
	c := NewCache()
	want := TerminalColors{
		Foreground: RGB{R: 1, G: 2, B: 3}, HasForeground: true,
		Background: RGB{R: 4, G: 5, B: 6}, HasBackground: true,
	}
	c.Set(want)

	assert.True(t, c.Initialized())
	assert.Equal(t, want, c.Get())
	assert.Equal(t, want.Foreground, c.Foreground())
	assert.Equal(t, want.Background, c.Background())
}

func TestCache_SetAbsentClearsAndStaysInitialized(t *testing.T) {
	c := NewCache()
	c.Set(TerminalColors{Foreground: RGB{R: 9}, HasForeground: true})
	c.Set(TerminalColors{})

	assert.True(t, c.Initialized())
	assert.True(t, c.Get().Empty())
	assert.Equal(t, DefaultForeground, c.Foreground())
}

func TestCache_ConfiguredFallbacks(t *testing.T) {
	c := NewCache()
	fb := RGB{R: 10, G: 20, B: 30}
	assert.Equal(t, fb, c.ForegroundOr(fb))
	assert.Equal(t, fb, c.BackgroundOr(fb))

	c.Set(TerminalColors{Background: RGB{R: 1}, HasBackground: true})
	assert.Equal(t, fb, c.ForegroundOr(fb))
	assert.Equal(t, RGB{R: 1}, c.BackgroundOr(fb))
}

// Writers only store uniform triples (v,v,v); a reader seeing mixed channels
// within one color would mean a torn write.
func TestCache_NoTornTriplesUnderConcurrency(t *testing.T) {
	c := NewCache()
	const writers, readers, iterations = 4, 8, 2000

	var wg sync.WaitGroup
	torn := make(chan RGB, readers)

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				v := uint8(seed*iterations + i)
				c.Set(TerminalColors{
					Foreground: RGB{R: v, G: v, B: v}, HasForeground: true,
					Background: RGB{R: ^v, G: ^v, B: ^v}, HasBackground: true,
				})
			}
		}(w)
	}
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				got := c.Get()
				for _, rgb := range []RGB{got.Foreground, got.Background} {
					if rgb.R != rgb.G || rgb.G != rgb.B {
						select {
						case torn <- rgb:
						default:
						}
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(torn)

	for rgb := range torn {
		t.Errorf("observed torn triple %v", rgb)
	}
	require.True(t, c.Initialized())
}

package diagram

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kovidgoyal/perceptualcolor"
)

var _ = fmt.Print

type inflight struct {
	generation uint64
	ctx        context.Context
	cancel     context.CancelFunc
	waiters    []func(*Image)
	done       chan struct{}
}

// Cache holds the image of a diagram together with the parameters it was
// rendered with. Setters only mark the image as stale, it is regenerated
// lazily by Image or in the background by Refresh. Every setter call that
// changes a value bumps a generation counter, results of computations
// started for an older generation are discarded, so the cache never
// exposes an image that does not match its current parameters.
//
// A Cache is safe for concurrent use.
type Cache struct {
	mu            sync.Mutex
	rasterizer    Rasterizer
	params        Params
	image         *Image
	generation    uint64
	pending       *inflight
	regenerations atomic.Uint64
	logger        *slog.Logger
}

func NewCache(r Rasterizer, p Params) *Cache {
	return &Cache{rasterizer: r, params: p, logger: slog.New(slog.DiscardHandler)}
}

// SetLogger sets the logger used for debug output about regenerations.
func (c *Cache) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
}

// invalidate must be called with the lock held
func (c *Cache) invalidate() {
	c.generation++
	c.image = nil
	if c.pending != nil {
		c.pending.cancel()
		c.pending = nil
	}
}

func (c *Cache) update(f func(p *Params) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f(&c.params) {
		c.invalidate()
	}
}

// NaN is treated as equal to itself
func set_if_different[T comparable](dest *T, val T) bool {
	if *dest == val || (val != val && *dest != *dest) {
		return false
	}
	*dest = val
	return true
}

func (c *Cache) SetImageSize(v int) {
	c.update(func(p *Params) bool { return set_if_different(&p.ImageSize, v) })
}

func (c *Cache) SetBorder(v float64) {
	c.update(func(p *Params) bool { return set_if_different(&p.Border, v) })
}

// SetPlane sets the lightness or hue of the diagram depending on its
// rasterizer.
func (c *Cache) SetPlane(v float64) {
	c.update(func(p *Params) bool { return set_if_different(&p.Plane, v) })
}

func (c *Cache) SetChromaRange(v float64) {
	c.update(func(p *Params) bool { return set_if_different(&p.ChromaRange, v) })
}

func (c *Cache) SetDevicePixelRatio(v float64) {
	c.update(func(p *Params) bool { return set_if_different(&p.DevicePixelRatio, v) })
}

// SetRasterizer replaces the rasterizer, always invalidating the image.
func (c *Cache) SetRasterizer(r Rasterizer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rasterizer = r
	c.invalidate()
}

func (c *Cache) Rasterizer() Rasterizer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rasterizer
}

// Params returns the current parameters, not necessarily those of the last
// rendered image.
func (c *Cache) Params() Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

// Regenerations is the number of times the rasterizer has been run.
func (c *Cache) Regenerations() uint64 { return c.regenerations.Load() }

// IsValid reports whether an image matching the current parameters is
// available without rasterizing.
func (c *Cache) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.image != nil
}

func (c *Cache) run(ctx context.Context, r Rasterizer, p Params, logger *slog.Logger) (*Image, error) {
	c.regenerations.Add(1)
	start := time.Now()
	img, err := r.Rasterize(ctx, p)
	if err != nil {
		logger.Debug("diagram rasterization aborted", "plane", r.Plane(), "params", p, "error", err)
		return nil, err
	}
	logger.Debug("diagram rasterized", "plane", r.Plane(), "params", p, "size", img.Rect.Dx(), "elapsed", time.Since(start))
	return img, nil
}

// Image returns the diagram for the current parameters, rasterizing it
// first if needed. The returned image is shared, callers must not modify
// it. The lock is not held while rasterizing, if the parameters change in
// the meantime the result is thrown away and rasterization is repeated. A
// background computation started by Refresh for the current parameters is
// waited for instead of being duplicated.
func (c *Cache) Image() *Image {
	for {
		c.mu.Lock()
		if c.image != nil {
			img := c.image
			c.mu.Unlock()
			return img
		}
		if job := c.pending; job != nil && job.generation == c.generation && job.ctx.Err() == nil {
			c.mu.Unlock()
			<-job.done
			continue
		}
		gen, r, p, logger := c.generation, c.rasterizer, c.params, c.logger
		c.mu.Unlock()

		img, err := c.run(context.Background(), r, p, logger)
		if err != nil {
			// only possible if the rasterizer panicked, show nothing rather
			// than crash the UI
			img, _ = new_image(p)
		}
		c.mu.Lock()
		if c.generation == gen {
			c.image = img
			c.mu.Unlock()
			return img
		}
		c.mu.Unlock()
		logger.Debug("discarding diagram with superseded parameters", "params", p)
	}
}

// Refresh makes sure an up-to-date image is available without blocking.
// ready is called with the image once it has been stored in the cache,
// synchronously if the cache is valid and otherwise on a background
// goroutine. If the parameters change before the computation finishes, or
// ctx is cancelled, the computation is abandoned and ready is never
// called. Calls made while a computation for the same parameters is in
// flight share that computation.
func (c *Cache) Refresh(ctx context.Context, ready func(*Image)) {
	c.mu.Lock()
	if c.image != nil {
		img := c.image
		c.mu.Unlock()
		if ready != nil {
			ready(img)
		}
		return
	}
	if c.pending != nil && c.pending.generation == c.generation && c.pending.ctx.Err() == nil {
		if ready != nil {
			c.pending.waiters = append(c.pending.waiters, ready)
		}
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	if c.pending != nil {
		c.pending.cancel()
	}
	job := &inflight{generation: c.generation, ctx: ctx, cancel: cancel, done: make(chan struct{})}
	if ready != nil {
		job.waiters = append(job.waiters, ready)
	}
	c.pending = job
	r, p, logger := c.rasterizer, c.params, c.logger
	c.mu.Unlock()

	go func() {
		defer close(job.done)
		defer cancel()
		img, err := c.run(ctx, r, p, logger)
		c.mu.Lock()
		if c.pending != job {
			c.mu.Unlock()
			if err == nil {
				logger.Debug("discarding diagram with superseded parameters", "params", p)
			}
			return
		}
		c.pending = nil
		if err != nil {
			c.mu.Unlock()
			return
		}
		if c.image == nil {
			c.image = img
		} else {
			// a concurrent call to Image() got there first
			img = c.image
		}
		c.mu.Unlock()
		for _, w := range job.waiters {
			w(img)
		}
	}()
}

// ChromaHueImage is the cached image of a chroma-hue diagram.
type ChromaHueImage struct {
	*Cache
}

// NewChromaHueImage creates a cache of an empty image of the given color
// space at NeutralLightness covering its MaximumChroma.
func NewChromaHueImage(space ColorSpace) *ChromaHueImage {
	return &ChromaHueImage{NewCache(NewChromaHue(space), Params{
		Plane: perceptualcolor.NeutralLightness, ChromaRange: space.MaximumChroma(), DevicePixelRatio: 1,
	})}
}

func (c *ChromaHueImage) SetLightness(v float64) { c.SetPlane(v) }
func (c *ChromaHueImage) Lightness() float64     { return c.Params().Plane }

// SetOutOfGamut changes how colors outside the gamut are painted.
func (c *ChromaHueImage) SetOutOfGamut(o OutOfGamut) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current, ok := c.rasterizer.(*ChromaHue)
	if !ok || current.OutOfGamut == o {
		return
	}
	// rasterizers can be in use by background computations, so copy
	r := *current
	r.OutOfGamut = o
	c.rasterizer = &r
	c.invalidate()
}

// ChromaLightnessImage is the cached image of a chroma-lightness diagram.
type ChromaLightnessImage struct {
	*Cache
}

// NewChromaLightnessImage creates a cache of an empty image of the given
// color space at NeutralHue covering its MaximumChroma.
func NewChromaLightnessImage(space ColorSpace) *ChromaLightnessImage {
	return &ChromaLightnessImage{NewCache(NewChromaLightness(space), Params{
		Plane: perceptualcolor.NeutralHue, ChromaRange: space.MaximumChroma(), DevicePixelRatio: 1,
	})}
}

func (c *ChromaLightnessImage) SetHue(v float64) { c.SetPlane(v) }
func (c *ChromaLightnessImage) Hue() float64     { return c.Params().Plane }

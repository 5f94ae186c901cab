package perceptualcolor

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/kettek/apng"
)

var _ = fmt.Print

// Frame is one snapshot of an Animation. Every frame is a complete image,
// frames are never composited onto each other.
type Frame struct {
	Number uint
	Image  image.Image `json:"-"`
	Delay  time.Duration
}

// Animation is a sequence of diagram images, for example the chroma-hue
// diagram swept over lightness.
type Animation struct {
	Frames    []*Frame
	LoopCount uint // 0 means loop forever, 1 means loop once, ...
}

// AddFrame appends img, shown for delay, and returns the new frame.
func (self *Animation) AddFrame(img image.Image, delay time.Duration) *Frame {
	f := &Frame{Number: uint(len(self.Frames) + 1), Image: img, Delay: delay}
	self.Frames = append(self.Frames, f)
	return f
}

// TotalDuration is the time one loop of the animation takes.
func (self *Animation) TotalDuration() (ans time.Duration) {
	for _, f := range self.Frames {
		ans += f.Delay
	}
	return
}

// converts a time.Duration to a numerator and denominator of type uint16.
// It finds the best rational approximation of the duration in seconds.
func as_fraction(d time.Duration) (num, den uint16) {
	if d <= 0 {
		return 0, 1
	}

	val := d.Seconds()

	// Continued fractions: keep the convergent closest to val whose
	// numerator and denominator fit in uint16.
	bestNum, bestDen := uint16(0), uint16(1)
	bestError := math.Abs(val)

	var h, k [3]int64
	h[0], k[0] = 0, 1
	h[1], k[1] = 1, 0

	f := val

	for i := 2; i < 100; i++ {
		a := int64(f)

		h[2] = a*h[1] + h[0]
		k[2] = a*k[1] + k[0]

		if h[2] > math.MaxUint16 || k[2] > math.MaxUint16 {
			break
		}

		numConv := uint16(h[2])
		denConv := uint16(k[2])

		currentError := math.Abs(val - float64(numConv)/float64(denConv))
		if currentError < bestError {
			bestError = currentError
			bestNum = numConv
			bestDen = denConv
		}

		if f-float64(a) == 0.0 {
			break
		}

		f = 1.0 / (f - float64(a))

		h[0], h[1] = h[1], h[2]
		k[0], k[1] = k[1], k[2]
	}

	return bestNum, bestDen
}

func (self *Animation) as_apng() (ans apng.APNG) {
	ans.LoopCount = self.LoopCount
	for _, f := range self.Frames {
		// every frame replaces the whole canvas, including its transparent
		// pixels
		d := apng.Frame{
			DisposeOp: apng.DISPOSE_OP_BACKGROUND, BlendOp: apng.BLEND_OP_SOURCE, Image: f.Image,
		}
		d.DelayNumerator, d.DelayDenominator = as_fraction(f.Delay)
		ans.Frames = append(ans.Frames, d)
	}
	return
}

// EncodeAsPNG writes the animation as an animated PNG. A single frame
// animation is written as a plain PNG.
func (self *Animation) EncodeAsPNG(w io.Writer) error {
	switch len(self.Frames) {
	case 0:
		return fmt.Errorf("cannot encode an animation with no frames")
	case 1:
		return png.Encode(w, self.Frames[0].Image)
	}
	b := self.Frames[0].Image.Bounds()
	for _, f := range self.Frames[1:] {
		if f.Image.Bounds().Size() != b.Size() {
			return fmt.Errorf("frame %d has size %v which differs from the first frame size %v", f.Number, f.Image.Bounds().Size(), b.Size())
		}
	}
	return apng.Encode(w, self.as_apng())
}

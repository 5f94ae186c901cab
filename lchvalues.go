package perceptualcolor

// Named defaults for LCh values. They replace the global defaults of older
// picker implementations and are passed explicitly to constructors.
const (
	// HumanMaximumChroma is slightly above the largest chroma of human
	// perception (about 194.84), used to scale diagrams.
	HumanMaximumChroma = 200
	// NeutralChroma gives an achromatic color, in gamut for nearly every
	// lightness of every profile.
	NeutralChroma = 0
	// NeutralHue is the conventional default hue.
	NeutralHue = 0
	// NeutralLightness is half way through [0, 100].
	NeutralLightness = 50
	// SRGBMaximumChroma is the largest chroma in the built-in sRGB gamut,
	// reached near the blue primary.
	SRGBMaximumChroma = 132
	// SRGBVersatileChroma is in the built-in sRGB gamut for every hue at
	// NeutralLightness.
	SRGBVersatileChroma = 32
	// GamutPrecision is the chroma precision of gamut boundary searches.
	GamutPrecision = 0.001
)

// NeutralGray is equally distant from black and white and far from any
// saturated color, a good background for gamut diagrams.
var NeutralGray = LchColor{L: NeutralLightness, C: NeutralChroma, H: NeutralHue}

// SRGBVersatileInitialColor is a colorful initial color that stays in the
// sRGB gamut whatever the hue.
var SRGBVersatileInitialColor = LchColor{L: NeutralLightness, C: SRGBVersatileChroma, H: NeutralHue}

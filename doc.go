/*
Package perceptualcolor provides the color model behind perceptually uniform
color pickers: LCh/Lab color values, gamut aware color spaces built from ICC
profiles, gamut mapping and the rasterization of gamut diagrams.

The sub packages are:

  - colorspace: RGB color spaces (built-in sRGB or ICC matrix/TRC profiles)
    with Lab conversion and gamut membership tests
  - gamut: mapping of arbitrary LCh colors to the nearest in-gamut color
  - diagram: chroma-hue and chroma-lightness diagram images and their cache
  - picker: headless controllers that tie a current color to a diagram
*/
package perceptualcolor

import "fmt"

// VersionNumber identifies a release of this module.
type VersionNumber struct {
	Major, Minor, Patch uint
}

func (v VersionNumber) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Version is reported by the perceptualcolor command.
var Version = VersionNumber{0, 3, 0}

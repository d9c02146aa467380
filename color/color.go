package color

import (
	"math"
	"strconv"
	"unicode/utf16"
)

// Triple is an RGB colour with every channel in [0,255].
type Triple [3]uint8

// RGB builds a Triple from its channels.
func RGB(r, g, b uint8) Triple { return Triple{r, g, b} }

// R returns the red channel.
func (t Triple) R() uint8 { return t[0] }

// G returns the green channel.
func (t Triple) G() uint8 { return t[1] }

// B returns the blue channel.
func (t Triple) B() uint8 { return t[2] }

// Ptr returns a pointer to a copy of t, handy when filling a Style.
func (t Triple) Ptr() *Triple { return &t }

// String renders t as rgb(r,g,b).
func (t Triple) String() string {
	return "rgb(" + strconv.Itoa(int(t[0])) + "," + strconv.Itoa(int(t[1])) + "," + strconv.Itoa(int(t[2])) + ")"
}

// Black and White are the two label foregrounds picked by NamespaceStyle.
var (
	Black = Triple{0, 0, 0}
	White = Triple{255, 255, 255}
)

const (
	hashSeed       = 9471
	murmurMultiply = 0x5bd1e995
	brightnessCap  = 186
)

// HashText maps text onto a Triple. The result only depends on text: the
// string is hashed with MurmurHash2 over the low byte of each UTF-16 code
// unit, the hash is rendered in base 10, and the digits are folded into a
// 32-bit accumulator whose three low bytes become R, G and B.
func HashText(text string) Triple {
	if text == "" {
		return Triple{}
	}
	digits := strconv.FormatUint(uint64(murmur2(utf16.Encode([]rune(text)), hashSeed)), 10)
	var v int32
	for i := 0; i < len(digits); i++ {
		v = int32(digits[i]) + (v<<5 - v)
	}
	var rgb Triple
	for i := range rgb {
		rgb[i] = uint8((v >> (8 * i)) & 0xff)
	}
	return rgb
}

func murmur2(units []uint16, seed uint32) uint32 {
	l := len(units)
	h := seed ^ uint32(l)
	i := 0
	for l >= 4 {
		k := uint32(units[i]&0xff) |
			uint32(units[i+1]&0xff)<<8 |
			uint32(units[i+2]&0xff)<<16 |
			uint32(units[i+3]&0xff)<<24
		k *= murmurMultiply
		k ^= k >> 24
		k *= murmurMultiply
		h = h*murmurMultiply ^ k
		l -= 4
		i += 4
	}
	switch l {
	case 3:
		h ^= uint32(units[i+2]&0xff) << 16
		fallthrough
	case 2:
		h ^= uint32(units[i+1]&0xff) << 8
		fallthrough
	case 1:
		h ^= uint32(units[i] & 0xff)
		h *= murmurMultiply
	}
	h ^= h >> 13
	h *= murmurMultiply
	h ^= h >> 15
	return h
}

// Invert returns the complement of every channel.
func Invert(t Triple) Triple {
	return Triple{255 - t[0], 255 - t[1], 255 - t[2]}
}

// Luminance returns the perceived brightness 0.299R + 0.587G + 0.114B.
func Luminance(t Triple) float64 {
	return 0.299*float64(t[0]) + 0.587*float64(t[1]) + 0.114*float64(t[2])
}

// IsHighBrightness reports whether the luminance of t exceeds 186. Bright
// backgrounds get a black label, everything else a white one.
func IsHighBrightness(t Triple) bool {
	return Luminance(t) > brightnessCap
}

// ImproveForLogReadability nudges t away from red, which is reserved for
// errors, and flips near-black greys to their light complement. Red is halved
// until it no longer dominates green or blue; the grey test runs on the
// result.
func ImproveForLogReadability(t Triple) Triple {
	rgb := t
	for rgb[0] > rgb[1] || rgb[0] > rgb[2] {
		rgb[0] /= 2
	}
	avg := (float64(rgb[0]) + float64(rgb[1]) + float64(rgb[2])) / 3
	if avg < 64 &&
		math.Abs(float64(rgb[0])-avg) < 32 &&
		math.Abs(float64(rgb[1])-avg) < 32 &&
		math.Abs(float64(rgb[2])-avg) < 32 {
		rgb = Invert(rgb)
	}
	return rgb
}

// Hex renders t as a lower-case #rrggbb string.
func Hex(t Triple) string {
	const digits = "0123456789abcdef"
	buf := [7]byte{'#'}
	for i, c := range t {
		buf[1+2*i] = digits[c>>4]
		buf[2+2*i] = digits[c&0x0f]
	}
	return string(buf[:])
}

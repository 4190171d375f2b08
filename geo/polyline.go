// File: /geo/polyline.go
package geo

import (
	"errors"
	"math"
	"strings"
)

// ErrMalformedPolyline is returned when an encoded polyline cannot be fully
// decoded (truncated continuation sequence or byte outside the valid range).
var ErrMalformedPolyline = errors.New("malformed polyline")

// Point is a single WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EncodePolyline encodes points using the delta + zig-zag + base-32 ASCII
// scheme. Precision is the number of decimal digits kept per coordinate
// (5 gives ~1.1m resolution).
func EncodePolyline(points []Point, precision int) string {
	factor := math.Pow10(precision)

	var sb strings.Builder
	var prevLat, prevLng int64

	for _, p := range points {
		lat := int64(math.Round(p.Lat * factor))
		lng := int64(math.Round(p.Lng * factor))

		encodeValue(&sb, lat-prevLat)
		encodeValue(&sb, lng-prevLng)

		prevLat, prevLng = lat, lng
	}

	return sb.String()
}

// DecodePolyline reverses EncodePolyline. The same precision must be used on
// both sides. A string that ends mid-value fails with ErrMalformedPolyline
// rather than returning a partial sequence.
func DecodePolyline(encoded string, precision int) ([]Point, error) {
	factor := math.Pow10(precision)

	points := []Point{}
	var lat, lng int64
	pos := 0

	for pos < len(encoded) {
		dLat, n, err := decodeValue(encoded[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		dLng, n, err := decodeValue(encoded[pos:])
		if err != nil {
			return nil, err
		}
		pos += n

		lat += dLat
		lng += dLng

		points = append(points, Point{
			Lat: float64(lat) / factor,
			Lng: float64(lng) / factor,
		})
	}

	return points, nil
}

func encodeValue(sb *strings.Builder, v int64) {
	// Zig-zag: sign bit moves to the low bit so small negatives stay small.
	u := uint64(v) << 1
	if v < 0 {
		u = ^u
	}

	for u >= 0x20 {
		sb.WriteByte(byte((u&0x1f)|0x20) + 63)
		u >>= 5
	}
	sb.WriteByte(byte(u) + 63)
}

func decodeValue(s string) (int64, int, error) {
	var result uint64
	var shift uint

	for i := 0; i < len(s); i++ {
		c := int(s[i]) - 63
		if c < 0 || c > 63 {
			return 0, 0, ErrMalformedPolyline
		}

		result |= uint64(c&0x1f) << shift
		shift += 5

		if c&0x20 == 0 {
			v := int64(result >> 1)
			if result&1 != 0 {
				v = ^v
			}
			return v, i + 1, nil
		}
	}

	// Ran out of bytes with the continuation bit still set.
	return 0, 0, ErrMalformedPolyline
}

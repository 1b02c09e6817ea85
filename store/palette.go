// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"math"
	"strings"
)

// High-contrast colors handed out in order to new options
var palette = []string{
	"#FF3B30", "#34C759", "#007AFF", "#FF9500", "#AF52DE", "#5AC8FA",
	"#FFCC00", "#FF2D55", "#5856D6", "#8E8E93", "#32ADE6", "#C69C6D",
	"#53D769", "#FC3158", "#147EFB", "#FF3824", "#30B0C7", "#E63B8B",
	"#A2845E", "#FDBE57", "#66DA43",
}

const goldenRatioConjugate = 0.618033988749895

// NextColor returns the first palette color not in existing. Once the
// palette is exhausted it walks the hue circle in golden-ratio steps.
func NextColor(existing []string) string {
	used := make(map[string]bool, len(existing))
	for _, c := range existing {
		used[strings.ToUpper(c)] = true
	}

	for _, c := range palette {
		if !used[c] {
			return c
		}
	}

	n := len(existing)
	for i := 0; ; i++ {
		hue := math.Mod(float64(n+i)*goldenRatioConjugate, 1)
		c := hsbToHex(hue, 0.8, 0.9)
		if !used[c] || i > 360 {
			return c
		}
	}
}

// hsbToHex converts hue, saturation and brightness in [0,1] to #RRGGBB.
func hsbToHex(h, s, v float64) string {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return fmt.Sprintf("#%02X%02X%02X", int(r*255), int(g*255), int(b*255))
}

package color

// CombinedAlpha returns the opacity of src composited over dst:
// src.a + dst.a*(1-src.a). The result stays in [0, 1] for valid inputs.
func CombinedAlpha(src, dst Color) float64 {
	return src.a + dst.a*(1-src.a)
}

// Blend composites src over dst using the Porter-Duff "over" operator.
// When both colors are fully transparent the result is transparent black,
// not dst, matching the zero-alpha fallback of the combined formula.
func Blend(src, dst Color) Color {
	combined := CombinedAlpha(src, dst)
	if combined <= 0 {
		return Transparent
	}

	// Pre-calculate the destination weight invariant.
	dw := dst.a * (1 - src.a)

	// Weighted channels cannot leave [0,1] mathematically, but rounding
	// can nudge them; clamp so the type invariant always holds.
	return Color{
		r: clamp01((src.r*src.a + dst.r*dw) / combined),
		g: clamp01((src.g*src.a + dst.g*dw) / combined),
		b: clamp01((src.b*src.a + dst.b*dw) / combined),
		a: combined,
	}
}

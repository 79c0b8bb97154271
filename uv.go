package atlas

// UVRect holds normalized [0, 1] texture coordinates for one section,
// in the form samplers expect: U0,V0 is the top-left corner, U1,V1 the
// bottom-right.
type UVRect struct {
	U0, V0, U1, V1 float32
}

// UV returns the normalized texture coordinates of section i against the
// layout's Size, and whether i was in range. Division by the stored extent
// is unguarded: a layout with a zero or negative Size produces infinities
// or sign-flipped coordinates, matching the package's no-validation
// contract.
func (l *Layout) UV(i int) (UVRect, bool) {
	r, ok := l.Section(i)
	if !ok {
		return UVRect{}, false
	}
	w := float32(l.Size.X)
	h := float32(l.Size.Y)
	return UVRect{
		U0: float32(r.Min.X) / w,
		V0: float32(r.Min.Y) / h,
		U1: float32(r.Max.X) / w,
		V1: float32(r.Max.Y) / h,
	}, true
}

package measure

// Scale is the conversion basis from model units to real-world meters.
// It is either manual, derived from the reference line and the typed
// reference length on every recompute, or a fixed factor injected by the
// surrounding system for scans with a known scale.
type Scale struct {
	fixed  bool
	factor float64
}

// ManualScale returns the default scale: derive the factor from the
// reference line.
func ManualScale() Scale {
	return Scale{}
}

// FixedScale returns a scale with a known real-world-meters-per-model-unit
// factor, bypassing manual reference entry.
func FixedScale(factor float64) Scale {
	return Scale{fixed: true, factor: factor}
}

// Fixed reports the fixed factor, if one is set.
func (s Scale) Fixed() (float64, bool) {
	return s.factor, s.fixed
}

// IsManual reports whether the factor is derived from the reference line.
func (s Scale) IsManual() bool {
	return !s.fixed
}

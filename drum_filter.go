// drum_filter.go - One-pole IIR filter

package drumsynth

// OnePoleFilter is a single-state first-order filter. The low-pass output is
// the state itself; the high-pass output is the input minus the state. A
// voice that needs both responses owns two filters.
type OnePoleFilter struct {
	state float32
}

func (f *OnePoleFilter) Reset() {
	f.state = 0
}

// ProcessLP runs one sample through the filter and returns the low-pass
// output. coeff comes from OnePoleCoeff.
func (f *OnePoleFilter) ProcessLP(in, coeff float32) float32 {
	f.state += coeff * (in - f.state)
	return f.state
}

// ProcessHP runs one sample through the filter and returns the high-pass
// output.
func (f *OnePoleFilter) ProcessHP(in, coeff float32) float32 {
	f.state += coeff * (in - f.state)
	return in - f.state
}

func (f *OnePoleFilter) State() float32 {
	return f.state
}

package noise

import (
	"fmt"
	"math"
)

// Parameters fully determine one fractal noise evaluation. Frequency is the
// base sampling frequency of the first octave, Amplitude the contribution of
// the first octave. Each following octave doubles the frequency and halves
// the amplitude.
type Parameters struct {
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	Octaves   int     `json:"octaves"`
}

// InvalidParametersError reports a Parameters field that fails validation.
type InvalidParametersError struct {
	Field  string
	Reason string
}

func (err InvalidParametersError) Error() string {
	return fmt.Sprintf("noise: invalid parameters: %v: %v", err.Field, err.Reason)
}

// Validate checks that the parameters describe a usable evaluation. Zero
// octaves is accepted and treated as a zero contribution.
func (p Parameters) Validate() error {
	if p.Frequency <= 0 {
		return InvalidParametersError{Field: "frequency", Reason: "must be positive"}
	}
	if p.Octaves < 0 {
		return InvalidParametersError{Field: "octaves", Reason: "must not be negative"}
	}
	if math.IsNaN(p.Amplitude) || math.IsInf(p.Amplitude, 0) {
		return InvalidParametersError{Field: "amplitude", Reason: "must be finite"}
	}
	return nil
}

// Fractal sums p.Octaves layers of the primitive at (x, y), doubling the
// frequency and halving the amplitude per octave. The magnitude of the result
// is bounded by p.Amplitude * sum(0.5^i) < 2*p.Amplitude.
func (s *Source) Fractal(x, y float64, p Parameters) float64 {
	var sum float64
	freq, amp := p.Frequency, p.Amplitude
	for i := 0; i < p.Octaves; i++ {
		sum += s.Eval(x*freq, y*freq) * amp
		freq *= 2
		amp *= 0.5
	}
	return sum
}

// Ridged sums p.Octaves layers of 1-|n|, producing sharp ridge lines where
// the primitive crosses zero. The per-octave value lies in [0, 1], so the
// result is non-negative for non-negative amplitudes.
func (s *Source) Ridged(x, y float64, p Parameters) float64 {
	var sum float64
	freq, amp := p.Frequency, p.Amplitude
	for i := 0; i < p.Octaves; i++ {
		sum += (1 - math.Abs(s.Eval(x*freq, y*freq))) * amp
		freq *= 2
		amp *= 0.5
	}
	return sum
}

// Billow sums p.Octaves layers of |n|, producing rounded bump shapes.
func (s *Source) Billow(x, y float64, p Parameters) float64 {
	var sum float64
	freq, amp := p.Frequency, p.Amplitude
	for i := 0; i < p.Octaves; i++ {
		sum += math.Abs(s.Eval(x*freq, y*freq)) * amp
		freq *= 2
		amp *= 0.5
	}
	return sum
}

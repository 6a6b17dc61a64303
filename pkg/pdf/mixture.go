package pdf

import (
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/core"
)

// MixturePdf is the unweighted 50/50 combination of two distributions.
// Combining a material's natural distribution with explicit light
// sampling this way reduces variance versus either strategy alone.
type MixturePdf struct {
	p0, p1 core.Pdf
}

// NewMixturePdf creates an even mixture of two distributions
func NewMixturePdf(p0, p1 core.Pdf) *MixturePdf {
	return &MixturePdf{p0: p0, p1: p1}
}

// Value returns 0.5·p0(d) + 0.5·p1(d), exactly
func (m *MixturePdf) Value(direction core.Vec3) float64 {
	return 0.5*m.p0.Value(direction) + 0.5*m.p1.Value(direction)
}

// Generate flips a fair coin and draws from the chosen component
func (m *MixturePdf) Generate(s core.Sampler) core.Vec3 {
	if s.Get1D() < 0.5 {
		return m.p0.Generate(s)
	}
	return m.p1.Generate(s)
}

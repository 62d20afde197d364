package modifier

import (
	"fmt"
	"math"

	"github.com/gogpu/procgeom"
)

// NoiseDirection selects how noise displacement is oriented.
type NoiseDirection string

// Displacement directions.
const (
	// NoiseNormal displaces along the local path normal.
	NoiseNormal NoiseDirection = "normal"

	// NoiseTangent displaces along the local path tangent.
	NoiseTangent NoiseDirection = "tangent"

	// NoiseBoth derives the displacement angle from the noise value
	// itself: angle = noise * 2 pi.
	NoiseBoth NoiseDirection = "both"
)

// Handle samples use extra seed offsets so they decorrelate from their
// anchor and from each other. Handles get a fraction of the anchor
// displacement.
const (
	handleSeedOffsetIn  = 101.3
	handleSeedOffsetOut = 202.7
	handleScale         = 0.3
)

// NoiseSettings configures the NoiseOffset modifier.
type NoiseSettings struct {
	// Amplitude is the maximum displacement distance.
	Amplitude float64

	// Frequency scales the noise coordinate. Must be > 0.
	Frequency float64

	// Octaves in [1, 8] layers fractal noise with amplitude halving
	// and frequency doubling per octave.
	Octaves int

	// Seed offsets the noise domain. Identical seeds reproduce
	// identical displacement.
	Seed float64

	// Direction picks normal, tangent, or noise-derived displacement.
	// Empty defaults to normal.
	Direction NoiseDirection
}

// Validate reports why the settings would be rejected, or nil.
func (s NoiseSettings) Validate() error {
	if s.Frequency <= 0 {
		return fmt.Errorf("%w: noise frequency %v <= 0", ErrInvalidSettings, s.Frequency)
	}
	if s.Octaves < 1 || s.Octaves > 8 {
		return fmt.Errorf("%w: noise octaves %d outside [1, 8]", ErrInvalidSettings, s.Octaves)
	}
	switch s.Direction {
	case "", NoiseNormal, NoiseTangent, NoiseBoth:
		return nil
	default:
		return fmt.Errorf("%w: unknown noise direction %q", ErrInvalidSettings, s.Direction)
	}
}

func (s NoiseSettings) valid() bool {
	return s.Validate() == nil
}

// NoiseOffset displaces each point by seeded multi-octave hash noise.
// The noise sample for point i is taken at the frequency-scaled,
// seed-offset coordinate (seed + i), yielding a scalar in [-1, 1]; the
// displacement is direction * amplitude * noise. Control handles
// receive 0.3x the main displacement from independently seeded samples.
// Deterministic: identical input and settings produce identical output.
func NoiseOffset(pd procgeom.PathData, settings NoiseSettings) Result {
	if !settings.valid() || pd.Kind == procgeom.PathSVG || pd.Len() < 2 {
		return unchanged(pd)
	}

	out := pd.Clone()
	// Snapshot so direction samples see the original geometry, not
	// already-displaced neighbors.
	anchors := append([]procgeom.Point(nil), out.AnchorPoints()...)

	for i := range anchors {
		n := fractalNoise(settings.Seed+float64(i), settings)
		dir := noiseDirection(anchors, i, out.Closed, settings.Direction, n)
		delta := dir.Mul(settings.Amplitude * n)

		switch out.Kind {
		case procgeom.PathPoints:
			out.Points[i] = out.Points[i].Add(delta)
		case procgeom.PathBezier:
			bp := &out.Bezier[i]
			bp.Point = bp.Point.Add(delta)
			if bp.CP1 != nil {
				h := fractalNoise(settings.Seed+float64(i)+handleSeedOffsetIn, settings)
				*bp.CP1 = bp.CP1.Add(dir.Mul(settings.Amplitude * h * handleScale))
			}
			if bp.CP2 != nil {
				h := fractalNoise(settings.Seed+float64(i)+handleSeedOffsetOut, settings)
				*bp.CP2 = bp.CP2.Add(dir.Mul(settings.Amplitude * h * handleScale))
			}
		}
	}
	return changed(out)
}

func noiseDirection(anchors []procgeom.Point, i int, closed bool, dir NoiseDirection, noise float64) procgeom.Point {
	switch dir {
	case NoiseTangent:
		return procgeom.Tangent(anchors, i, closed)
	case NoiseBoth:
		angle := noise * 2 * math.Pi
		return procgeom.Pt(math.Cos(angle), math.Sin(angle))
	default:
		return procgeom.Normal(anchors, i, closed)
	}
}

// hashNoise is the single-sample hash noise in [-1, 1]:
//
//	frac(sin(x*12.9898 + y*78.233) * 43758.5453) * 2 - 1
//
// It is deterministic and non-continuous across large coordinate
// jumps, which is acceptable because inputs are always pre-scaled into
// a bounded frequency domain.
func hashNoise(x, y float64) float64 {
	s := math.Sin(x*12.9898+y*78.233) * 43758.5453
	return (s - math.Floor(s)) * 2 - 1
}

// fractalNoise layers octaves of hashNoise with amplitude halving and
// frequency doubling, normalized by the total amplitude.
func fractalNoise(coord float64, settings NoiseSettings) float64 {
	x := coord * settings.Frequency
	total := 0.0
	amp := 1.0
	freq := 1.0
	norm := 0.0
	for o := 0; o < settings.Octaves; o++ {
		total += hashNoise(x*freq, settings.Seed*freq) * amp
		norm += amp
		amp /= 2
		freq *= 2
	}
	return total / norm
}

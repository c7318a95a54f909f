package engine

// CVSource supplies one aux input's raw sample in 0..1023.
type CVSource func() int

// modAccum collects signed deltas per target. Deltas from every route of
// both inputs sum here first; each field is clamped once when published, so
// routes aimed at the same target compose additively.
type modAccum struct {
	mapX, mapY int
	density    [NumChannels]int
	chaos      int
	gate       [NumChannels]int
}

func (a *modAccum) apply(t ModTarget, delta int) {
	switch t {
	case TargetMapX:
		a.mapX += delta
	case TargetMapY:
		a.mapY += delta
	case TargetDensity1:
		a.density[0] += delta
	case TargetDensity2:
		a.density[1] += delta
	case TargetDensity3:
		a.density[2] += delta
	case TargetDensityAll:
		for c := range a.density {
			a.density[c] += delta
		}
	case TargetChaos:
		a.chaos += delta
	case TargetGate1:
		a.gate[0] += delta / 8
	case TargetGate2:
		a.gate[1] += delta / 8
	case TargetGate3:
		a.gate[2] += delta / 8
	}
}

// Evaluate runs the modulation matrix: both inputs' routes are summed onto
// the base parameters and the result is clamped into RuntimeParams. A
// disabled input contributes nothing regardless of its routes.
func Evaluate(base *BaseParams, samples [NumInputs]int) RuntimeParams {
	var acc modAccum
	for i := 0; i < NumInputs; i++ {
		in := &base.Inputs[i]
		if !in.Enabled {
			continue
		}
		raw := samples[i]
		if raw < 0 {
			raw = 0
		}
		if raw > 1023 {
			raw = 1023
		}
		// Center to -512..511, rescale to the -127..127 attenuation range.
		amount := (raw - 512) * 127 / 512
		for _, r := range in.Routes {
			if r.Target == TargetNone || r.Depth == 0 {
				continue
			}
			acc.apply(r.Target, amount*int(r.Depth)/127)
		}
	}

	rt := RuntimeParams{
		MapX:  clamp255(int(base.MapX) + acc.mapX),
		MapY:  clamp255(int(base.MapY) + acc.mapY),
		Chaos: clamp255(int(base.Chaos) + acc.chaos),
	}
	for c := 0; c < NumChannels; c++ {
		rt.Density[c] = clamp255(int(base.Density[c]) + acc.density[c])
		rt.GateMs[c] = clampGate(int(base.GateMs[c]) + acc.gate[c])
	}
	return rt
}

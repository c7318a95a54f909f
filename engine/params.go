package engine

// Pattern table geometry. The factory map is 25 cells arranged 5x5;
// every cell carries 32 steps for each of the three drum channels.
const (
	NumChannels = 3
	NumSteps    = 32
	NumCells    = 25
	CellBytes   = NumChannels * NumSteps

	NumInputs      = 2
	RoutesPerInput = 3

	MaxGateMs = 50
)

// ModTarget names a runtime parameter a CV route can push on.
type ModTarget uint8

const (
	TargetNone ModTarget = iota
	TargetMapX
	TargetMapY
	TargetDensity1
	TargetDensity2
	TargetDensity3
	TargetDensityAll
	TargetChaos
	TargetGate1
	TargetGate2
	TargetGate3

	numTargets
)

var targetNames = map[ModTarget]string{
	TargetNone:       "none",
	TargetMapX:       "x",
	TargetMapY:       "y",
	TargetDensity1:   "dens1",
	TargetDensity2:   "dens2",
	TargetDensity3:   "dens3",
	TargetDensityAll: "densall",
	TargetChaos:      "chaos",
	TargetGate1:      "gate1",
	TargetGate2:      "gate2",
	TargetGate3:      "gate3",
}

func (t ModTarget) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return "none"
}

// Route is one weighted mapping from a CV input onto a target parameter.
// Target none or depth zero makes the route a no-op, never an error.
type Route struct {
	Target ModTarget
	Depth  int8 // -127..127
}

// InputConfig is one aux input's persisted setup. An enabled input supplies
// modulation and mutes the channel it is wired in place of; a disabled
// input contributes nothing.
type InputConfig struct {
	Enabled bool
	Routes  [RoutesPerInput]Route
}

// BaseParams is the persisted parameter block: everything the engine needs
// before modulation is applied. The command protocol and the UI mutate it;
// the control loop only reads it.
type BaseParams struct {
	MapX, MapY uint8
	Density    [NumChannels]uint8
	Chaos      uint8
	GateMs     [NumChannels]uint8 // 0..MaxGateMs
	ClockDiv   uint8              // >= 1
	Inputs     [NumInputs]InputConfig
}

// RuntimeParams is BaseParams after the modulation matrix has run,
// recomputed every control cycle. Owned by the control loop, never
// persisted.
type RuntimeParams struct {
	MapX, MapY uint8
	Density    [NumChannels]uint8
	Chaos      uint8
	GateMs     [NumChannels]uint8
}

// DefaultBase returns the power-on parameter block.
func DefaultBase() BaseParams {
	return BaseParams{
		MapX:     128,
		MapY:     128,
		Density:  [NumChannels]uint8{192, 160, 160},
		Chaos:    0,
		GateMs:   [NumChannels]uint8{10, 10, 10},
		ClockDiv: 1,
	}
}

// Sanitize clamps every field of a parameter block into its legal range.
// Applied to anything that arrives from outside the engine (loads, SETs).
func (p *BaseParams) Sanitize() {
	if p.ClockDiv < 1 {
		p.ClockDiv = 1
	}
	for c := 0; c < NumChannels; c++ {
		if p.GateMs[c] > MaxGateMs {
			p.GateMs[c] = MaxGateMs
		}
	}
	for i := range p.Inputs {
		for r := range p.Inputs[i].Routes {
			if p.Inputs[i].Routes[r].Target >= numTargets {
				p.Inputs[i].Routes[r].Target = TargetNone
			}
			if p.Inputs[i].Routes[r].Depth == -128 {
				p.Inputs[i].Routes[r].Depth = -127
			}
		}
	}
}

// MutedChannels reports which channels are silenced because their aux input
// is assigned to modulation duty. Input 0 sits in place of channel 1's
// output, input 1 in place of channel 2's.
func (p *BaseParams) MutedChannels() [NumChannels]bool {
	var muted [NumChannels]bool
	for i := 0; i < NumInputs; i++ {
		muted[i+1] = p.Inputs[i].Enabled
	}
	return muted
}

func clamp255(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampGate(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > MaxGateMs {
		return MaxGateMs
	}
	return uint8(v)
}

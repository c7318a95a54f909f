package engine

// ProbabilityAt returns the trigger probability byte for (channel, step) in
// the given cell. Cell ids are clamped into the table; channel and step are
// caller-validated.
func ProbabilityAt(cell, channel, step int) uint8 {
	if cell < 0 {
		cell = 0
	}
	if cell >= NumCells {
		cell = NumCells - 1
	}
	return factoryNodes[cell][channel*NumSteps+step]
}

// CellFromPosition quantizes a 2-D pattern-space position into a cell id.
// The grid is near-square: width w covers NumCells with w*w, height is
// NumCells/w. The arithmetic is kept exactly in this shape so cell
// boundaries line up with the factory data layout.
func CellFromPosition(x, y uint8) int {
	w := gridWidth()
	h := NumCells / w
	if h < 1 {
		h = 1
	}
	xi := int(x) * w / 256
	yi := int(y) * h / 256
	cell := yi*w + xi
	if cell >= NumCells {
		cell = NumCells - 1
	}
	return cell
}

func gridWidth() int {
	if NumCells == 25 {
		return 5
	}
	w := 1
	for w*w < NumCells {
		w++
	}
	return w
}

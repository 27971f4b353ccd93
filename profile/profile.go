package profile

import (
	"fmt"
	"strings"
)

// LayerType is the vertical coordinate convention of a profile.
type LayerType int

const (
	LayerSigma LayerType = iota
	LayerZ
)

func (t LayerType) String() string {
	if t == LayerZ {
		return "Z"
	}
	return "SIGMA"
}

// ParseLayerType matches a LAYER_TYPE value case-insensitively.
func ParseLayerType(s string) (LayerType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SIGMA":
		return LayerSigma, nil
	case "Z":
		return LayerZ, nil
	}
	return 0, fmt.Errorf("unsupported LAYER_TYPE %q", strings.TrimSpace(s))
}

// Record is one timestep: the raw TIME value (kept verbatim, units and
// reference date included) and one value per layer.
type Record struct {
	Time   string
	Values []float64
}

// Profile is one parsed vertical-profile file.
type Profile struct {
	Comments  []string
	LayerType LayerType
	Layers    []float64
	Records   []Record
}

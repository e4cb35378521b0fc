package domain

import "fmt"

// Mission reports use a fixed set of units: mass in lbm, time in min and
// distance in nmi. The recorder may store values in SI, so conversions cover
// both directions for each dimension.

const (
	UnitMass     = "lbm"
	UnitTime     = "min"
	UnitDistance = "nmi"
)

type dimension string

const (
	dimMass     dimension = "mass"
	dimTime     dimension = "time"
	dimDistance dimension = "distance"
)

// scale factors to the SI base unit of each dimension
var unitScale = map[string]float64{
	"kg":  1,
	"lbm": 0.45359237,
	"s":   1,
	"min": 60,
	"h":   3600,
	"m":   1,
	"km":  1000,
	"nmi": 1852,
}

var unitDim = map[string]dimension{
	"kg":  dimMass,
	"lbm": dimMass,
	"s":   dimTime,
	"min": dimTime,
	"h":   dimTime,
	"m":   dimDistance,
	"km":  dimDistance,
	"nmi": dimDistance,
}

// Convert converts v from one unit to another within the same dimension.
func Convert(v float64, from, to string) (float64, error) {
	if from == to {
		return v, nil
	}
	fromDim, ok := unitDim[from]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", from)
	}
	toDim, ok := unitDim[to]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", to)
	}
	if fromDim != toDim {
		return 0, fmt.Errorf("cannot convert %s (%s) to %s (%s)", from, fromDim, to, toDim)
	}
	return v * unitScale[from] / unitScale[to], nil
}

// ConvertSlice converts every element of vals from one unit to another.
func ConvertSlice(vals []float64, from, to string) ([]float64, error) {
	if from == to {
		return vals, nil
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		converted, err := Convert(v, from, to)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}

package utils

import "math"

// RoundTo arredonda v para a quantidade de casas decimais informada.
func RoundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// ClampMin devolve v, ou min se v for menor.
func ClampMin(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

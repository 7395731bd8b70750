package utils

import "math"

// RoundTo arredonda f para o número de casas decimais informado.
// Empates vão para o par mais próximo (mesmo comportamento do numpy.round).
func RoundTo(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	scale := math.Pow(10, float64(places))
	return math.RoundToEven(f*scale) / scale
}

func RoundWithOneDecimalPlace(f float64) float64 {
	return RoundTo(f, 1)
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	return RoundTo(f, 2)
}

// RoundToInt arredonda para o inteiro mais próximo, empates para o par
func RoundToInt(f float64) int {
	return int(math.RoundToEven(f))
}

// Mean retorna a média aritmética de values, ou 0 quando vazio
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

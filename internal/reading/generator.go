package reading

import (
	"errors"

	"github.com/sheharzad-developer/smart-energy-monitor/internal/device"
	"github.com/sheharzad-developer/smart-energy-monitor/pkg/utils"
)

// RandSource é o subconjunto de *rand.Rand usado pelo gerador.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

var ErrNegativeOffset = errors.New("offset negativo no dia simulado")

// Fatores sorteados a cada minuto para a máquina de lavar: 75% parada, 25% ligada.
var washingMachineFactors = []float64{0, 0, 0, 1.5}

// HourOf devolve a hora do dia (0-23) para um offset em segundos.
func HourOf(offsetSeconds int64) int {
	return int((offsetSeconds / 3600) % 24)
}

// TimeFactor devolve o multiplicador da carga base conforme o tipo do
// dispositivo e a hora. Para a máquina de lavar o valor é sorteado em rng.
func TimeFactor(kind device.Kind, hour int, rng RandSource) float64 {
	switch kind {
	case device.KindAC:
		if hour >= 8 && hour <= 20 {
			return 1.2
		}
		return 0.8
	case device.KindLights:
		if hour <= 7 || hour >= 18 {
			return 1.5
		}
		return 0.3
	case device.KindWashingMachine:
		return washingMachineFactors[rng.Intn(len(washingMachineFactors))]
	default:
		return 1.0
	}
}

// Noise sorteia um valor uniforme em [-variance, +variance].
func Noise(variance float64, rng RandSource) float64 {
	return -variance + rng.Float64()*2*variance
}

// Generate calcula a potência em watts de um dispositivo no offset informado.
// O resultado nunca é negativo e tem no máximo 2 casas decimais.
func Generate(p device.Profile, offsetSeconds int64, rng RandSource) (float64, error) {
	if offsetSeconds < 0 {
		return 0, ErrNegativeOffset
	}
	factor := TimeFactor(p.Kind, HourOf(offsetSeconds), rng)
	watts := p.BaseLoadWatts*factor + Noise(p.VarianceWatts, rng)
	return utils.RoundTo(utils.ClampMin(watts, 0), 2), nil
}

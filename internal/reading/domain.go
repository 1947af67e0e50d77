package reading

import (
	"fmt"
	"time"
)

type Reading struct {
	DeviceID    string  `json:"deviceId"`
	Timestamp   string  `json:"timestamp"`
	EnergyWatts float64 `json:"energyWatts"`
}

// Construtor de Reading. O timestamp é sempre serializado em UTC com sufixo "Z".
func NewReading(deviceID string, at time.Time, energyWatts float64) (*Reading, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("leitura sem deviceId")
	}
	if energyWatts < 0 {
		return nil, fmt.Errorf("energia negativa para %s: %v", deviceID, energyWatts)
	}
	return &Reading{
		DeviceID:    deviceID,
		Timestamp:   FormatTimestamp(at),
		EnergyWatts: energyWatts,
	}, nil
}

func FormatTimestamp(at time.Time) string {
	return at.UTC().Format(time.RFC3339)
}

package device

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindAC             Kind = "ac"
	KindLights         Kind = "lights"
	KindWashingMachine Kind = "washing_machine"
	KindConstant       Kind = "constant"
)

var (
	ErrEmptyCatalog = errors.New("catálogo de dispositivos vazio")
	ErrDuplicateID  = errors.New("id de dispositivo duplicado")
)

// Valida se o tipo informado é conhecido
func (k Kind) IsValid() bool {
	validKinds := map[Kind]bool{
		KindAC: true, KindLights: true, KindWashingMachine: true, KindConstant: true,
	}
	return validKinds[k]
}

type Profile struct {
	ID            string  `yaml:"id" json:"id"`
	BaseLoadWatts float64 `yaml:"baseLoadWatts" json:"baseLoadWatts"`
	VarianceWatts float64 `yaml:"varianceWatts" json:"varianceWatts"`
	DisplayName   string  `yaml:"displayName" json:"displayName"`
	Kind          Kind    `yaml:"kind" json:"kind"`
}

// Validate confere id, tipo e cargas não negativas.
func (p Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("dispositivo sem id (%q)", p.DisplayName)
	}
	if !p.Kind.IsValid() {
		return fmt.Errorf("tipo de dispositivo não reconhecido: %s", p.Kind)
	}
	if p.BaseLoadWatts < 0 || p.VarianceWatts < 0 {
		return fmt.Errorf("dispositivo %s com carga ou variância negativa", p.ID)
	}
	return nil
}

// Name devolve o nome de exibição, caindo para o id quando vazio.
func (p Profile) Name() string {
	if p.DisplayName == "" {
		return p.ID
	}
	return p.DisplayName
}

package device

import "fmt"

// DefaultCatalog devolve os 5 dispositivos semeados no banco de demonstração,
// na ordem em que são enviados a cada minuto simulado.
func DefaultCatalog() []Profile {
	return []Profile{
		{ID: "dev001", BaseLoadWatts: 2000, VarianceWatts: 500, DisplayName: "AC", Kind: KindAC},
		{ID: "dev002", BaseLoadWatts: 150, VarianceWatts: 25, DisplayName: "Fridge", Kind: KindConstant},
		{ID: "dev003", BaseLoadWatts: 1500, VarianceWatts: 300, DisplayName: "Heater", Kind: KindConstant},
		{ID: "dev004", BaseLoadWatts: 75, VarianceWatts: 15, DisplayName: "Lights", Kind: KindLights},
		{ID: "dev005", BaseLoadWatts: 500, VarianceWatts: 400, DisplayName: "Washing Machine", Kind: KindWashingMachine},
	}
}

// ValidateCatalog confere que o catálogo não está vazio, que cada perfil é
// válido e que os ids são únicos.
func ValidateCatalog(catalog []Profile) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]bool, len(catalog))
	for _, p := range catalog {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// IDs devolve os ids do catálogo em ordem.
func IDs(catalog []Profile) []string {
	ids := make([]string, 0, len(catalog))
	for _, p := range catalog {
		ids = append(ids, p.ID)
	}
	return ids
}

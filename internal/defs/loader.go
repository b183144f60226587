// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadWeaponDefinitions reads the weapon configuration file and returns the
// slot list in file order. The built-in defaults stay untouched on any error,
// so a missing or broken file never blocks startup.
func LoadWeaponDefinitions(path string) ([]WeaponDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	if len(weaponDefs) == 0 {
		return nil, fmt.Errorf("weapon definitions file %s is empty", path)
	}
	for i, def := range weaponDefs {
		if def.FireRate <= 0 {
			return nil, fmt.Errorf("weapon %q: fireRate must be positive", def.ID)
		}
		if def.Pellets < 1 {
			return nil, fmt.Errorf("weapon %q: pellets must be at least 1", def.ID)
		}
		if def.Ammo < -1 {
			weaponDefs[i].Ammo = -1
		}
	}
	return weaponDefs, nil
}

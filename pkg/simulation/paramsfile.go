package simulation

import (
	"gopkg.in/gcfg.v1"
)

// --- Plik parametrów (format gcfg) ---
// Sekcja [simulation] z polami o nazwach jak w Params; pominięte klucze
// zachowują wartości domyślne, wczytane wartości są przycinane do zakresów.
type paramsFile struct {
	Simulation Params
}

// LoadParams wczytuje parametry z pliku gcfg.
func LoadParams(path string) (Params, error) {
	pf := paramsFile{Simulation: DefaultParams()}
	if err := gcfg.ReadFileInto(&pf, path); err != nil {
		return DefaultParams(), err
	}
	p := pf.Simulation
	p.Clamp()
	return p, nil
}

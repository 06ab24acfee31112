package physics

import "math"

// Stała grawitacji, dobrana tak, by obraz był stabilny przy domyślnych
// parametrach. Nie jest wystawiana użytkownikowi.
const G = 1.0

// AccelFrom zwraca przyspieszenie w punkcie pos od masy mass umieszczonej
// w from:
//
//	a = G * m * d / (|d|^2 + eps^2)^(3/2)
//
// Człon zmiękczający eps^2 dodawany jest do kwadratu odległości przed
// potęgowaniem, więc wynik jest skończony nawet przy zerowej separacji.
func AccelFrom(pos, from Vec2, mass, softening float64) Vec2 {
	disp := from.Sub(pos)
	d2 := disp.X*disp.X + disp.Y*disp.Y + softening*softening
	return disp.Mul(G * mass / (d2 * math.Sqrt(d2)))
}

// ComputeAcceleration sumuje wkłady od wszystkich pozostałych ciał oraz od
// masy centralnej. Koszt O(n) na ciało, O(n^2) na pełny przebieg - bez
// podziału przestrzennego, świadomy kompromis dla zakresu [10,1000] ciał.
func ComputeAcceleration(i int, bodies []Body, central Body, softening float64) Vec2 {
	acc := AccelFrom(bodies[i].Pos, central.Pos, central.Mass, softening)
	for j := range bodies {
		if j == i {
			continue
		}
		acc = acc.Add(AccelFrom(bodies[i].Pos, bodies[j].Pos, bodies[j].Mass, softening))
	}
	return acc
}

package physics

import "math"

// TotalEnergy zwraca energię całkowitą układu: kinetyczną plus potencjalną
// ze zmiękczeniem, spójną z modelem sił (dzięki temu dryf energii jest
// miarodajnym testem regresji dla całkowania symplektycznego).
func TotalEnergy(bodies []Body, central Body, softening float64) float64 {
	eps2 := softening * softening
	var e float64
	for i := range bodies {
		v := bodies[i].Vel.Len()
		e += 0.5 * bodies[i].Mass * v * v

		d := bodies[i].Pos.Sub(central.Pos)
		e -= G * bodies[i].Mass * central.Mass / math.Sqrt(d.X*d.X+d.Y*d.Y+eps2)

		for j := i + 1; j < len(bodies); j++ {
			d := bodies[i].Pos.Sub(bodies[j].Pos)
			e -= G * bodies[i].Mass * bodies[j].Mass / math.Sqrt(d.X*d.X+d.Y*d.Y+eps2)
		}
	}
	return e
}

package physics

// IntegrateEulerSymplectic wykonuje jeden krok metodą semi-implicit Euler.
// Przyspieszenia liczone są najpierw dla wszystkich ciał ze spójnej migawki
// pozycji; żadne ciało nie może widzieć już przesuniętej pozycji innego.
func IntegrateEulerSymplectic(bodies []Body, central Body, dt, softening float64) {
	// faza odczytu: bufor przyspieszeń
	for i := range bodies {
		bodies[i].Acc = ComputeAcceleration(i, bodies, central, softening)
	}

	// faza zapisu
	for i := range bodies {
		if bodies[i].Locked {
			bodies[i].Vel = Vec2{0, 0}
			continue
		}

		// Semi-implicit Euler: najpierw prędkość, potem pozycja według
		// nowej prędkości - lepiej zachowuje energię niż jawny Euler
		bodies[i].Vel = bodies[i].Vel.Add(bodies[i].Acc.Mul(dt))
		bodies[i].Pos = bodies[i].Pos.Add(bodies[i].Vel.Mul(dt))
	}
}

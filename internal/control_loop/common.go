package control_loop

type ControlLoop interface {
	// Cycle advances the control loop, moving the current intensity towards the target
	// and returning the new intensity value in percent
	Cycle(current Intensity, target float64) float64
}

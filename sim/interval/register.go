// register.go wires the interval constructor into the sim package's
// registration variable (NewIntervalSourceFunc). This init() runs when any
// package imports sim/interval, breaking the import cycle between sim/
// (interface owner) and sim/interval/ (implementation).
package interval

import "github.com/inference-sim/sampling-sim/sim"

func init() {
	sim.NewIntervalSourceFunc = New
}

package sim_test

// Blank import triggers sim/interval's init(), which registers NewIntervalSourceFunc.
// This allows package sim's internal test files to build seeded sources
// without directly importing sim/interval (which would create an import cycle).
import _ "github.com/inference-sim/sampling-sim/sim/interval"

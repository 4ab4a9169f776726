package snapshot

import "github.com/katalvlaran/dkg/graph"

// classFromString inverts graph.EntityClass.String for Restore. Every
// EntityClass this module ever exports is listed here; an unrecognized
// label means the persisted snapshot predates a class this build knows
// about, which is a hard-error situation the caller should surface rather
// than silently default.
func classFromString(s string) graph.EntityClass {
	switch s {
	case "ModuleInstance":
		return graph.ModuleInstance
	case "RtlBlock":
		return graph.RtlBlock
	case "FlipFlop":
		return graph.FlipFlop
	case "Lut":
		return graph.Lut
	case "Mux":
		return graph.Mux
	case "Dsp":
		return graph.Dsp
	case "Bram":
		return graph.Bram
	case "IoPort":
		return graph.IoPort
	case "PackagePin":
		return graph.PackagePin
	case "Pblock":
		return graph.Pblock
	case "BoardConnector":
		return graph.BoardConnector
	case "ClockDomain":
		return graph.ClockDomain
	case "Fsm":
		return graph.Fsm
	default:
		panic("snapshot: unrecognized EntityClass label " + s)
	}
}

func relationFromString(s string) graph.RelationType {
	switch s {
	case "Data":
		return graph.Data
	case "Clock":
		return graph.Clock
	case "Reset":
		return graph.Reset
	case "Parameter":
		return graph.Parameter
	case "Constraint":
		return graph.Constraint
	case "PhysicalMapping":
		return graph.PhysicalMapping
	default:
		panic("snapshot: unrecognized RelationType label " + s)
	}
}

func flowFromString(s string) graph.FlowType {
	switch s {
	case "Combinational":
		return graph.Combinational
	case "SequentialLaunch":
		return graph.SequentialLaunch
	case "SequentialCapture":
		return graph.SequentialCapture
	case "ClockTree":
		return graph.ClockTree
	case "AsyncReset":
		return graph.AsyncReset
	default:
		panic("snapshot: unrecognized FlowType label " + s)
	}
}

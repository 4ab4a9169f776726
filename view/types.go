package view

// View is a filtered/abstracted perspective over the fused graph (§4.7).
type View int

const (
	Structural View = iota
	Connectivity
	Physical
)

func (v View) String() string {
	switch v {
	case Structural:
		return "Structural"
	case Connectivity:
		return "Connectivity"
	case Physical:
		return "Physical"
	default:
		panic("view: unhandled View variant")
	}
}

// Context is the engineering intent that swaps the active policy map.
type Context int

const (
	Design Context = iota
	Simulation
)

func (c Context) String() string {
	switch c {
	case Design:
		return "Design"
	case Simulation:
		return "Simulation"
	default:
		panic("view: unhandled Context variant")
	}
}

// Action is what the three-cycle builder does with a node under a given
// policy.
type Action int

const (
	Promote Action = iota
	Merge
	Eliminate
)

func (a Action) String() string {
	switch a {
	case Promote:
		return "Promote"
	case Merge:
		return "Merge"
	case Eliminate:
		return "Eliminate"
	default:
		panic("view: unhandled Action variant")
	}
}

package vns

// Phase - фаза автомата VNS, после которой вызывается Observer.PhaseDone.
// INTENSIFY не имеет отдельного события: трекер согласуется только
// в NEIGHBORHOOD_CHANGE, поэтому снимок после неё.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseShake
	PhaseNeighborhoodChange
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseShake:
		return "shake"
	case PhaseNeighborhoodChange:
		return "neighborhood_change"
	default:
		return "unknown"
	}
}

// Move - вид хода контроллера.
type Move int

const (
	MoveInit Move = iota
	MoveJump
	MoveMutation
	MoveCrossover
	MoveLocalSearch
)

func (m Move) String() string {
	switch m {
	case MoveInit:
		return "init"
	case MoveJump:
		return "jump"
	case MoveMutation:
		return "mutation"
	case MoveCrossover:
		return "crossover"
	case MoveLocalSearch:
		return "local_search"
	default:
		return "unknown"
	}
}

// Snapshot - состояние контроллера после фазы.
type Snapshot struct {
	Iteration int
	BestIndex int
	BestValue float64
	// Incumbent - лучшее значение, зафиксированное в NEIGHBORHOOD_CHANGE.
	// Не возрастает; BestValue может вырасти, если встряска испортила лучшую ячейку.
	Incumbent float64
	Reference int
	Values    []float64
	Improved  bool
}

// Observer получает события контроллера. Вызывается синхронно из Solve.
type Observer interface {
	PhaseDone(phase Phase, snap Snapshot)
	// HeuristicApplied вызывается после каждого хода; для MoveJump
	// heuristic равен -1, value - значение новой опорной ячейки.
	HeuristicApplied(move Move, heuristic int, value float64)
}

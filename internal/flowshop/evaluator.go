package flowshop

import "go.trai.ch/zerr"

// Evaluator считает makespan перестановки. Не потокобезопасен:
// буфер времён завершения переиспользуется между вызовами.
type Evaluator struct {
	inst              *Instance
	machineCompletion []int
}

func NewEvaluator(inst *Instance) (*Evaluator, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{inst: inst, machineCompletion: make([]int, inst.Machines)}, nil
}

func (e *Evaluator) Makespan(perm []int) (int, error) {
	if e == nil || e.inst == nil {
		return 0, zerr.New("nil evaluator")
	}
	if err := ValidatePermutation(perm, e.inst.Jobs); err != nil {
		return 0, err
	}
	return e.makespan(perm), nil
}

// makespan - вычисление без проверки; perm может быть неполной
// перестановкой (используется при вставке работ).
func (e *Evaluator) makespan(perm []int) int {
	for m := range e.machineCompletion {
		e.machineCompletion[m] = 0
	}
	last := e.inst.Machines - 1
	for _, job := range perm {
		e.machineCompletion[0] += e.inst.Time(job, 0)
		for m := 1; m <= last; m++ {
			left := e.machineCompletion[m-1]
			if up := e.machineCompletion[m]; up > left {
				left = up
			}
			e.machineCompletion[m] = left + e.inst.Time(job, m)
		}
	}
	return e.machineCompletion[last]
}

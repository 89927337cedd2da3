// Package flowshop - перестановочная задача flow-shop (минимизация makespan)
// и её представление в виде проблемной области гиперэвристики.
package flowshop

import (
	"math/rand"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidInstance is returned when an instance fails validation.
	ErrInvalidInstance = zerr.New("invalid flow-shop instance")

	// ErrNilRng is returned when a constructor gets a nil random generator.
	ErrNilRng = zerr.New("генератор случайных чисел не инициализирован (nil)")
)

type Instance struct {
	Jobs     int
	Machines int
	// ProcTimes length must be Jobs*Machines, row-major by job.
	ProcTimes []int
}

func NewInstance(jobs, machines int, procTimes []int) (*Instance, error) {
	inst := &Instance{Jobs: jobs, Machines: machines, ProcTimes: procTimes}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func (inst *Instance) Validate() error {
	if inst == nil {
		return zerr.Wrap(ErrInvalidInstance, "instance is nil")
	}
	if inst.Jobs <= 0 {
		return zerr.With(zerr.Wrap(ErrInvalidInstance, "jobs must be > 0"), "jobs", inst.Jobs)
	}
	if inst.Machines <= 0 {
		return zerr.With(zerr.Wrap(ErrInvalidInstance, "machines must be > 0"), "machines", inst.Machines)
	}
	if len(inst.ProcTimes) != inst.Jobs*inst.Machines {
		err := zerr.With(zerr.Wrap(ErrInvalidInstance, "procTimes length must be jobs*machines"), "want", inst.Jobs*inst.Machines)
		return zerr.With(err, "got", len(inst.ProcTimes))
	}
	for i, v := range inst.ProcTimes {
		if v < 0 {
			err := zerr.With(zerr.Wrap(ErrInvalidInstance, "processing time must be >= 0"), "index", i)
			return zerr.With(err, "value", v)
		}
	}
	return nil
}

func (inst *Instance) Time(job, machine int) int {
	return inst.ProcTimes[job*inst.Machines+machine]
}

// LowerBound - нижняя оценка makespan Тайяра: максимум из суммарной
// загрузки станка с минимальными "головой" и "хвостом" и из полной
// длительности самой длинной работы.
func (inst *Instance) LowerBound() int {
	lb := 0
	for m := 0; m < inst.Machines; m++ {
		load := 0
		minHead, minTail := -1, -1
		for j := 0; j < inst.Jobs; j++ {
			load += inst.Time(j, m)
			head, tail := 0, 0
			for k := 0; k < m; k++ {
				head += inst.Time(j, k)
			}
			for k := m + 1; k < inst.Machines; k++ {
				tail += inst.Time(j, k)
			}
			if minHead < 0 || head < minHead {
				minHead = head
			}
			if minTail < 0 || tail < minTail {
				minTail = tail
			}
		}
		if v := minHead + load + minTail; v > lb {
			lb = v
		}
	}
	for j := 0; j < inst.Jobs; j++ {
		total := 0
		for m := 0; m < inst.Machines; m++ {
			total += inst.Time(j, m)
		}
		if total > lb {
			lb = total
		}
	}
	return lb
}

// RandomInstance генерирует экземпляр с временами из [minTime, maxTime].
func RandomInstance(jobs, machines, minTime, maxTime int, rng *rand.Rand) (*Instance, error) {
	if rng == nil {
		return nil, ErrNilRng
	}
	if minTime < 0 || maxTime < minTime {
		err := zerr.With(zerr.Wrap(ErrInvalidInstance, "invalid time bounds"), "min", minTime)
		return nil, zerr.With(err, "max", maxTime)
	}
	if jobs <= 0 || machines <= 0 {
		err := zerr.With(zerr.Wrap(ErrInvalidInstance, "jobs and machines must be > 0"), "jobs", jobs)
		return nil, zerr.With(err, "machines", machines)
	}
	pt := make([]int, jobs*machines)
	span := maxTime - minTime + 1
	for i := range pt {
		pt[i] = minTime
		if span > 1 {
			pt[i] += rng.Intn(span)
		}
	}
	return NewInstance(jobs, machines, pt)
}

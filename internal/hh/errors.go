package hh

import "go.trai.ch/zerr"

var (
	// ErrNoHeuristics is returned when the domain offers no heuristics at all.
	ErrNoHeuristics = zerr.New("problem domain has no heuristics")

	// ErrInvalidHeuristic is returned when a category lists an id outside [0, total).
	ErrInvalidHeuristic = zerr.New("heuristic id out of range")

	// ErrPoolSize is returned for a pool with fewer than one slot.
	ErrPoolSize = zerr.New("pool size must be >= 1")

	// ErrSlotRange is returned for a slot index outside the pool.
	ErrSlotRange = zerr.New("slot index out of range")

	// ErrSlotNotReady is returned when a heuristic reads a slot that was never initialised.
	ErrSlotNotReady = zerr.New("slot not initialised")

	// ErrNonFinite is returned when the domain reports a NaN or infinite objective value.
	ErrNonFinite = zerr.New("non-finite objective value")

	// ErrTrackerStale is returned by Tracker.Check when the tracked best no longer matches the pool minimum.
	ErrTrackerStale = zerr.New("best tracker is stale")

	// ErrUnknownType is returned for an unrecognised heuristic category name.
	ErrUnknownType = zerr.New("unknown heuristic type")
)

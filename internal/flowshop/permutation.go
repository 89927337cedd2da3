package flowshop

import (
	"math/rand"

	"go.trai.ch/zerr"
)

// ErrInvalidPermutation is returned when a job order is not a permutation of 0..n-1.
var ErrInvalidPermutation = zerr.New("invalid permutation")

func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		err := zerr.With(zerr.Wrap(ErrInvalidPermutation, "wrong length"), "want", n)
		return zerr.With(err, "got", len(perm))
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			err := zerr.With(zerr.Wrap(ErrInvalidPermutation, "job id out of range"), "position", i)
			return zerr.With(err, "job", v)
		}
		if seen[v] {
			return zerr.With(zerr.Wrap(ErrInvalidPermutation, "duplicate job id"), "job", v)
		}
		seen[v] = true
	}
	return nil
}

// initPermutation генерирует срез [0, 1, 2, ..., n-1].
func initPermutation(p []int) {
	for i := range p {
		p[i] = i
	}
}

// shufflePermutation выполняет случайную перестановку элементов.
func shufflePermutation(p []int, rng *rand.Rand) {
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}

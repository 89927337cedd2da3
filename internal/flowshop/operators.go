package flowshop

import "math/rand"

// swapRandom меняет местами две различные позиции.
func swapRandom(p []int, rng *rand.Rand) {
	if len(p) < 2 {
		return
	}
	i := rng.Intn(len(p))
	j := rng.Intn(len(p) - 1)
	if j >= i {
		j++
	}
	p[i], p[j] = p[j], p[i]
}

// insertRandom извлекает элемент из позиции i и вставляет его в позицию j.
func insertRandom(p []int, rng *rand.Rand) {
	n := len(p)
	if n < 2 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	applyInsert(p, i, j)
}

// applyInsert применяет insert-ход (элемент из позиции from вставляется в позицию to).
func applyInsert(p []int, from, to int) {
	if from == to {
		return
	}
	val := p[from]
	if from < to {
		copy(p[from:to], p[from+1:to+1])
		p[to] = val
		return
	}
	copy(p[to+1:from+1], p[to:from])
	p[to] = val
}

// orderCrossover - Order Crossover (OX) с одним потомком: отрезок [a, b)
// берётся из p1, остальные позиции заполняются генами p2 по порядку,
// начиная с b. mark и stamp исключают повторную очистку меток.
func orderCrossover(p1, p2, child []int, rng *rand.Rand, mark []int, stamp *int) {
	n := len(p1)

	a := rng.Intn(n)
	b := rng.Intn(n)
	if a > b {
		a, b = b, a
	}
	if a == b {
		// Сегмент не должен быть пустым
		b = (a + 1) % n
		if a > b {
			a, b = b, a
		}
	}

	for i := range child {
		child[i] = -1
	}

	*stamp++
	cur := *stamp

	for i := a; i < b; i++ {
		gene := p1[i]
		child[i] = gene
		mark[gene] = cur
	}

	pos := b % n
	for i := 0; i < n; i++ {
		gene := p2[(b+i)%n]
		if mark[gene] == cur {
			continue
		}
		for child[pos] != -1 {
			pos = (pos + 1) % n
		}
		child[pos] = gene
		mark[gene] = cur
	}
}

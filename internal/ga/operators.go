package ga

import "math/rand"

// initPermutation генерирует срез [0, 1, 2, ..., n-1].
// Используется как базовое состояние перед случайной перестановкой.
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

// tournamentSelect реализует турнирный отбор.
// Возвращается индекс особи с наилучшим значением fitness
// (минимальное значение целевой функции).
func tournamentSelect(scores []float64, tournamentSize int, rng *rand.Rand) int {
	best := rng.Intn(len(scores))
	bestScore := scores[best]
	for i := 1; i < tournamentSize; i++ {
		cand := rng.Intn(len(scores))
		if scores[cand] < bestScore {
			best = cand
			bestScore = scores[cand]
		}
	}
	return best
}

// orderCrossoverOX реализует оператор Order Crossover: сегмент [a, b)
// копируется из одного родителя, свободные позиции заполняются слева
// направо генами второго родителя в его относительном порядке.
// Инвариант перестановки в потомках сохраняется по построению.
func orderCrossoverOX(
	p1, p2, c1, c2 []int,
	rng *rand.Rand,
	mark []int,
	stamp *int,
) {
	n := len(p1)

	// Выбор случайного отрезка [a, b)
	a := rng.Intn(n)
	b := rng.Intn(n)
	if a > b {
		a, b = b, a
	}
	if a == b {
		// Чтобы длина сегмента не была 0
		b = (a + 1) % n
		if a > b {
			a, b = b, a
		}
	}

	fillChild(p1, p2, c1, a, b, mark, stamp)
	fillChild(p2, p1, c2, a, b, mark, stamp)
}

// fillChild формирует одного потомка: сегмент донора donor[a:b] на тех же
// позициях, остальные позиции — гены filler по порядку следования.
func fillChild(donor, filler, child []int, a, b int, mark []int, stamp *int) {
	n := len(donor)

	*stamp++
	curStamp := *stamp

	// Копирование сегмента из родителя-донора
	for i := a; i < b; i++ {
		gene := donor[i]
		child[i] = gene
		mark[gene] = curStamp
	}

	// Заполнение свободных позиций слева направо генами второго родителя,
	// уже присутствующие гены пропускаются
	pos := 0
	for i := 0; i < n; i++ {
		gene := filler[i]
		if mark[gene] == curStamp {
			continue
		}
		if pos == a {
			pos = b
		}
		child[pos] = gene
		mark[gene] = curStamp
		pos++
	}
}

// mutateSwap реализует оператор мутации Swap.
func mutateSwap(p []int, rng *rand.Rand) {
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

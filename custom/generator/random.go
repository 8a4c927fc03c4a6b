package generator

import (
	"ecommerce_dataset/model"
	"fmt"
	"math"
	"strings"
)

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.IntN(len(pool))]
}

func (g *Generator) intIn(r IntRange) int {
	return r.Min + g.rng.IntN(r.Max-r.Min+1)
}

// weightedIndex picks an index proportionally to weights, uniformly when
// every weight is zero.
func (g *Generator) weightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return g.rng.IntN(len(weights))
	}
	n := g.rng.IntN(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

// dateIn returns a day uniformly drawn from [start, end].
func (g *Generator) dateIn(start, end model.Date) model.Date {
	return start.AddDays(g.rng.IntN(start.DaysUntil(end) + 1))
}

func (g *Generator) price(r PriceRange, distribution string) model.Money {
	var value float64
	switch distribution {
	case PRICE_LOG_UNIFORM:
		lo, hi := math.Log(r.Min), math.Log(r.Max)
		value = math.Exp(lo + g.rng.Float64()*(hi-lo))
	default:
		value = r.Min + g.rng.Float64()*(r.Max-r.Min)
	}
	price := model.NewMoney(value)
	// Rounding may step just outside the range
	if price.LessThan(model.NewMoney(r.Min).Decimal) {
		price = model.NewMoney(r.Min)
	}
	if price.GreaterThan(model.NewMoney(r.Max).Decimal) {
		price = model.NewMoney(r.Max)
	}
	return price
}

// sample draws k distinct indexes from [0, n) by a partial Fisher-Yates shuffle.
func (g *Generator) sample(n, k int) []int {
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + g.rng.IntN(n-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}
	return indexes[:k]
}

func (g *Generator) phone(dialCode string) string {
	return fmt.Sprintf("%s-%03d-%03d-%04d", dialCode, 200+g.rng.IntN(800), g.rng.IntN(1000), g.rng.IntN(10000))
}

// postalCode renders format with '#' as a digit and 'A' as a letter.
func (g *Generator) postalCode(format string) string {
	var b strings.Builder
	for _, r := range format {
		switch r {
		case '#':
			b.WriteByte(byte('0' + g.rng.IntN(10)))
		case 'A':
			b.WriteByte(byte('A' + g.rng.IntN(26)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

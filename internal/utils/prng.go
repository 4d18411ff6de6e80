// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"bastion-defense/pkg/geom"
)

// PRNGService — обертка над генератором случайных чисел, чтобы визуальные
// эффекты можно было воспроизводить по сиду. Симуляция её не использует.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// Direction возвращает случайный единичный вектор.
func (s *PRNGService) Direction() geom.Vec2 {
	a := s.rng.Float64() * 2 * math.Pi
	return geom.Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

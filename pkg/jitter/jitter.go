// Package jitter добавляет случайность к интервалам повторов, чтобы воркеры
// разных реплик не переподключались к брокеру и БД синхронно.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter задаёт стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает продолжительность с применённым джиттером в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	jitter := globalRand.Float64() * jitterFactor * float64(d)
	randMutex.Unlock()
	return d + time.Duration(jitter)
}

// ExponentialBackoff вычисляет экспоненциальное отступление без джиттера:
// base * 2^attempt, но не больше max. attempt нумеруется с нуля.
func ExponentialBackoff(base, max time.Duration, attempt int) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff >= max {
			return max
		}
	}
	return backoff
}

// Backoff считает последовательные неудачи и выдаёт растущие паузы с джиттером.
// Не потокобезопасен: предназначен для одной горутины воркера.
type Backoff struct {
	Base    time.Duration
	Max     time.Duration
	Factor  float64
	attempt int
}

func NewBackoff(base, max time.Duration) *Backoff {
	return &Backoff{Base: base, Max: max, Factor: DefaultJitter}
}

// Next возвращает паузу для очередной попытки и увеличивает счётчик.
func (b *Backoff) Next() time.Duration {
	d := Duration(ExponentialBackoff(b.Base, b.Max, b.attempt), b.Factor)
	b.attempt++
	return d
}

// Reset сбрасывает счётчик после успешной операции.
func (b *Backoff) Reset() {
	b.attempt = 0
}

func (b *Backoff) Attempt() int {
	return b.attempt
}

// This file is part of Satcore.
//
// Satcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Satcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Satcore.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(59.94)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		m.RunFrame()
//	}
package limiter

import (
	"time"
)

// Limiter blocks in Wait() until the next event is due.
type Limiter struct {
	period time.Duration

	// the time the next event is due
	next time.Time

	// used for testing
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter is the preferred method of initialisation for Limiter type.
func NewLimiter(rate float64) *Limiter {
	lim := &Limiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	lim.SetRate(rate)
	return lim
}

// SetRate changes the number of events per second. A rate of zero or less
// means that Wait() never blocks.
func (lim *Limiter) SetRate(rate float64) {
	if rate <= 0 {
		lim.period = 0
	} else {
		lim.period = time.Duration(float64(time.Second) / rate)
	}
	lim.next = time.Time{}
}

// Rate returns the number of events per second.
func (lim *Limiter) Rate() float64 {
	if lim.period == 0 {
		return 0
	}
	return float64(time.Second) / float64(lim.period)
}

// Wait blocks until the next event is due. If the caller has fallen more than
// one period behind the schedule then the schedule is restarted from now
// rather than allowing a burst of events to catch up.
func (lim *Limiter) Wait() {
	if lim.period == 0 {
		return
	}

	now := lim.now()
	if lim.next.IsZero() || now.Sub(lim.next) > lim.period {
		lim.next = now.Add(lim.period)
		return
	}

	if d := lim.next.Sub(now); d > 0 {
		lim.sleep(d)
	}
	lim.next = lim.next.Add(lim.period)
}

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

// Package scheduler implements the deadline based timer system against which
// every hardware unit posts "wake me at cycle N" requests.
//
// The Scheduler owns the master cycle counter. Units register one event per
// timer they need, once, at construction time. Registration returns a Handle
// which is used for all subsequent scheduling of the event. Each event has a
// clock ratio (owner ticks per master tick) and deadlines are always expressed
// in the owner's own clock. The conversion to master clock units rounds up so
// that the master clock can always be safely advanced to the cached next
// deadline without missing an event.
//
// The hot path is the Advance() function. It does nothing more than add to the
// master counter and compare against the cached next deadline. When a
// deadline has been reached all due events are run in deadline order, with
// events sharing a deadline run in registration order.
//
// Callbacks receive an EventContext. Calling neither of the EventContext
// reschedule functions means the event is one-shot. An event that has fallen
// more than one period behind is run repeatedly until its deadline is in the
// future.
//
// Contract violations (duplicate registration, full event table, bad handle,
// zero ratio, zero reschedule interval) panic via the assert package.
package scheduler

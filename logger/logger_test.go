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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/satcore/satcore/logger"
	"github.com/satcore/satcore/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "bus", "unmapped read8")
	log.Log(logger.Allow, "bus", "unmapped read8")
	log.Log(logger.Allow, "bus", "unmapped read8")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "bus: unmapped read8 (repeat x3)\n")
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", errors.New("an error"))
	log.Log(logger.Allow, "b", 100)
	log.Logf(logger.Allow, "c", "%d%%", 50)
	log.Log(logger.Allow, "d", "new\nline")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "a: an error\nb: 100\nc: 50%\nd: newline\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(3)
	w := &strings.Builder{}

	for i := 0; i < 5; i++ {
		log.Log(logger.Allow, "test", i)
	}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: 2\ntest: 3\ntest: 4\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(3)
	w := &strings.Builder{}

	log.Log(logger.Allow, "test", 1)
	log.Log(logger.Allow, "test", 2)
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "test: 1\ntest: 2\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")

	// older entries trimmed from the log do not disturb the recent position
	log.Log(logger.Allow, "test", 3)
	log.Log(logger.Allow, "test", 4)
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "test: 3\ntest: 4\n")
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(prohibitLogging{allow: false}, "test", "not logged")
	log.Log(nil, "test", "not logged")
	log.Log(prohibitLogging{allow: true}, "test", "logged")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: logged\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.SetEcho(logger.NewColorizer(w))
	log.Log(logger.Allow, "tag", "detail")
	test.ExpectEquality(t, w.String(), "\033[2mtag\033[0m: detail\n")

	w.Reset()
	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "detail 2")
	test.ExpectEquality(t, w.String(), "")
}

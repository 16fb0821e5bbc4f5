// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/RetroCogs/xemu65/logger"
)

type denyPermission struct{}

func (denyPermission) AllowLogging() bool { return false }

func TestLogAndWrite(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "MEM", "undecoded read")

	var b strings.Builder
	logger.Write(&b)
	if !strings.Contains(b.String(), "undecoded read") {
		t.Fatalf("expected the log to contain the entry, got %q", b.String())
	}
}

func TestLogfFormatting(t *testing.T) {
	logger.Clear()
	logger.Logf(logger.Allow, "MEM", "address %#08x out of range", 0x1234567)

	var b strings.Builder
	logger.Write(&b)
	if !strings.Contains(b.String(), fmt.Sprintf("%#08x", 0x1234567)) {
		t.Fatalf("expected formatted address in log, got %q", b.String())
	}
}

func TestPermissionDenied(t *testing.T) {
	logger.Clear()
	logger.Log(denyPermission{}, "MEM", "should not appear")

	var b strings.Builder
	logger.Write(&b)
	if b.String() != "" {
		t.Fatalf("expected nothing to be logged, got %q", b.String())
	}
}

func TestRepeatedEntriesAreCollapsed(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "MEM", "repeat me")
	logger.Log(logger.Allow, "MEM", "repeat me")
	logger.Log(logger.Allow, "MEM", "repeat me")

	var b strings.Builder
	logger.Write(&b)
	if strings.Count(b.String(), "\n") != 1 {
		t.Fatalf("expected repeated entries to be collapsed into one line, got %q", b.String())
	}
	if !strings.Contains(b.String(), "repeat x3") {
		t.Fatalf("expected a repeat count, got %q", b.String())
	}
}

func TestTail(t *testing.T) {
	logger.Clear()
	for i := 0; i < 5; i++ {
		logger.Logf(logger.Allow, "MEM", "entry %d", i)
	}

	var b strings.Builder
	logger.Tail(&b, 2)
	if !strings.Contains(b.String(), "entry 3") || !strings.Contains(b.String(), "entry 4") {
		t.Fatalf("expected the last two entries, got %q", b.String())
	}
	if strings.Contains(b.String(), "entry 2") {
		t.Fatalf("did not expect entry 2 in tail output, got %q", b.String())
	}
}

func TestWriteRecentOnlyReturnsNewEntries(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "MEM", "first")

	var first strings.Builder
	logger.WriteRecent(&first)
	if !strings.Contains(first.String(), "first") {
		t.Fatalf("expected first entry, got %q", first.String())
	}

	var empty strings.Builder
	logger.WriteRecent(&empty)
	if empty.String() != "" {
		t.Fatalf("expected no new entries, got %q", empty.String())
	}

	logger.Log(logger.Allow, "MEM", "second")
	var second strings.Builder
	logger.WriteRecent(&second)
	if !strings.Contains(second.String(), "second") {
		t.Fatalf("expected second entry, got %q", second.String())
	}
}

func TestBorrowLog(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "MEM", "borrowed")

	var count int
	logger.BorrowLog(func(entries []logger.Entry) {
		count = len(entries)
	})
	if count != 1 {
		t.Fatalf("expected 1 entry, got %d", count)
	}
}

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunParams(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := runParams(&out); err != nil {
		t.Fatalf("runParams() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want header plus 6 params:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[3], "Filter Cutoff") || !strings.Contains(lines[3], "1000 Hz") {
		t.Errorf("cutoff row = %q", lines[3])
	}
}

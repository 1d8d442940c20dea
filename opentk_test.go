// SPDX-License-Identifier: Unlicense OR MIT

package opentk

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	if Logger() == nil {
		t.Fatal("default logger is nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is not silent")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("probe")
	if buf.Len() == 0 {
		t.Error("configured logger received no output")
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

package magetasks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}

func TestPrintH1Header(t *testing.T) {
	buf := captureOut(t)
	PrintH1Header("Test Title")

	out := buf.String()
	assert.Contains(t, out, "Test Title")
	assert.Contains(t, out, strings.Repeat("=", 80))
}

func TestPrintH2Header(t *testing.T) {
	buf := captureOut(t)
	PrintH2Header("Test Section")
	assert.Contains(t, buf.String(), "=== Test Section ===")
}

func TestPrintMessages(t *testing.T) {
	tests := []struct {
		name  string
		print func(string)
		icon  string
	}{
		{"success", PrintSuccess, "✅"},
		{"warning", PrintWarning, "⚠️"},
		{"error", PrintError, "❌"},
		{"info", PrintInfo, "ℹ️"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOut(t)
			tt.print("hello")
			assert.Contains(t, buf.String(), tt.icon)
			assert.Contains(t, buf.String(), "hello")
		})
	}
}

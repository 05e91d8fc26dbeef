package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ogurasousui/employee-org-analyzer/internal/platform/config"
	"github.com/sirupsen/logrus"
)

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("dropped")
	logger.WithField("employee_id", 9).Warn("manager not found")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single json entry, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "manager not found" {
		t.Fatalf("unexpected message: %v", entry["msg"])
	}
	if entry["employee_id"] != float64(9) {
		t.Fatalf("unexpected field: %v", entry["employee_id"])
	}
	if logger.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn level, got %s", logger.GetLevel())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	if _, err := New(config.LoggingConfig{Level: "loud"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. It returns the
// app together with its command output and its debug-level log output.
func SetupAppTest(t *testing.T, cfg Config) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	validated, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	testApp := NewApp(out, logs, validated)

	t.Cleanup(func() {
		if err := testApp.Close(); err != nil {
			t.Errorf("closing app: %v", err)
		}
		if os.Getenv("SRCBUILD_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}

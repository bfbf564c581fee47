package config

import (
	"os"
	"sync"
	"testing"
)

func resetGlobals(t *testing.T) {
	t.Helper()
	reset := func() {
		configMutex.Lock()
		defer configMutex.Unlock()
		globalConfig = nil
		reloadHooks = nil
		initOnce = sync.Once{}
	}
	reset()
	t.Cleanup(reset)
}

func TestInitialize(t *testing.T) {
	resetGlobals(t)

	configPath := writeConfig(t, `
server:
  listen_address: "127.0.0.1:8080"
`)

	if err := Initialize(configPath); err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}

	cfg := GetConfig()
	if cfg == nil {
		t.Fatal("expected non-nil config after initialization")
	}
	if cfg.Server.ListenAddress != "127.0.0.1:8080" {
		t.Errorf("expected listen address %q, got %q", "127.0.0.1:8080", cfg.Server.ListenAddress)
	}
}

func TestInitialize_MultipleCallsIgnored(t *testing.T) {
	resetGlobals(t)

	first := writeConfig(t, "server:\n  listen_address: \"127.0.0.1:8080\"\n")
	second := writeConfig(t, "server:\n  listen_address: \"127.0.0.1:9090\"\n")

	if err := Initialize(first); err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}
	if err := Initialize(second); err != nil {
		t.Fatalf("second Initialize returned error: %v", err)
	}

	if got := GetConfig().Server.ListenAddress; got != "127.0.0.1:8080" {
		t.Errorf("expected first config to be retained, got listen address %q", got)
	}
}

func TestGetConfig_BeforeInitialize(t *testing.T) {
	resetGlobals(t)

	if cfg := GetConfig(); cfg != nil {
		t.Errorf("expected nil config before initialization, got %+v", cfg)
	}
}

func TestSetConfig(t *testing.T) {
	resetGlobals(t)

	cfg := Default()
	cfg.Server.ListenAddress = "0.0.0.0:4000"
	SetConfig(cfg)

	if got := GetConfig(); got != cfg {
		t.Error("expected GetConfig to return the config passed to SetConfig")
	}
}

func TestReloadConfig(t *testing.T) {
	resetGlobals(t)

	configPath := writeConfig(t, "telemetry:\n  logging:\n    level: \"info\"\n")
	if err := Initialize(configPath); err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}

	var hooked []string
	OnReload(func(c *Config) { hooked = append(hooked, c.Telemetry.Logging.Level) })

	if err := os.WriteFile(configPath, []byte("telemetry:\n  logging:\n    level: \"debug\"\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config file: %v", err)
	}
	if err := ReloadConfig(configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if got := GetConfig().Telemetry.Logging.Level; got != "debug" {
		t.Errorf("expected logging level %q after reload, got %q", "debug", got)
	}
	if len(hooked) != 1 || hooked[0] != "debug" {
		t.Errorf("expected reload hook to observe [debug], got %v", hooked)
	}
}

func TestReloadConfig_ValidationFailure(t *testing.T) {
	resetGlobals(t)

	configPath := writeConfig(t, "telemetry:\n  logging:\n    level: \"warn\"\n")
	if err := Initialize(configPath); err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}

	called := false
	OnReload(func(*Config) { called = true })

	if err := os.WriteFile(configPath, []byte("telemetry:\n  logging:\n    level: \"shout\"\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config file: %v", err)
	}
	if err := ReloadConfig(configPath); err == nil {
		t.Fatal("expected reload to fail validation")
	}

	if got := GetConfig().Telemetry.Logging.Level; got != "warn" {
		t.Errorf("expected previous logging level %q to remain, got %q", "warn", got)
	}
	if called {
		t.Error("expected reload hook not to run on failure")
	}
}

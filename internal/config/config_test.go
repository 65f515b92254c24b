package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeConfigFile(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigDefaultsAndDataDir(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	writeConfigFile(t, dir, "storage:\n  data_dir: "+dataDir+"\n")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != "8080" || cfg.Server.Mode != "debug" {
		t.Errorf("server defaults = %+v", cfg.Server)
	}
	if cfg.Storage.ModulesFile != "modules.json" {
		t.Errorf("modules file default = %q", cfg.Storage.ModulesFile)
	}
	if got := cfg.Storage.ModulesPath(); got != filepath.Join(dataDir, "modules.json") {
		t.Errorf("modules path = %q", got)
	}
	if _, err := os.Stat(dataDir); err != nil {
		t.Fatalf("data dir not created: %v", err)
	}
}

func TestLoadConfigReportsDataDirFailure(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()

	// a regular file where a directory component is needed makes MkdirAll fail
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	writeConfigFile(t, dir, "storage:\n  data_dir: "+filepath.Join(blocker, "nested")+"\n")

	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("expected error for uncreatable data dir")
	}
}

package sysinfo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBatteryFromSysfs(t *testing.T) {
	dir := t.TempDir()
	old := powerSupplyPath
	powerSupplyPath = dir
	defer func() { powerSupplyPath = old }()

	bat := filepath.Join(dir, "BAT0")
	if err := os.MkdirAll(bat, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bat, "capacity"), []byte("85\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bat, "status"), []byte("Charging\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Battery()
	if err != nil {
		t.Fatalf("Battery() error: %v", err)
	}
	if got != "85% (Charging)" {
		t.Fatalf("Battery() = %q; want %q", got, "85% (Charging)")
	}
}

func TestBatteryMissingStatus(t *testing.T) {
	dir := t.TempDir()
	old := powerSupplyPath
	powerSupplyPath = dir
	defer func() { powerSupplyPath = old }()

	bat := filepath.Join(dir, "BAT1")
	if err := os.MkdirAll(bat, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bat, "capacity"), []byte("42"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Battery()
	if err != nil {
		t.Fatalf("Battery() error: %v", err)
	}
	if got != "42% (Unknown)" {
		t.Fatalf("Battery() = %q; want %q", got, "42% (Unknown)")
	}
}

func TestBatteryAbsent(t *testing.T) {
	old := powerSupplyPath
	powerSupplyPath = t.TempDir()
	defer func() { powerSupplyPath = old }()

	if _, err := Battery(); err == nil {
		t.Fatal("Battery() on a machine without a battery should return an error")
	}
}

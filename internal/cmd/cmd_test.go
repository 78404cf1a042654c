package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/storefront/internal/errors"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// isolateConfig points the config directory at a temp dir so a user's
// own config file cannot leak into the test.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return filepath.Join(dir, "storefront")
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "storefront" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "storefront")
	}

	expectedCmds := []string{"browse", "catalog", "config"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}

	for _, flag := range []string{"catalog", "watch", "decline-payments"} {
		if browseCmd.Flags().Lookup(flag) == nil {
			t.Errorf("browse is missing --%s", flag)
		}
	}
}

func TestCatalogValidate(t *testing.T) {
	isolateConfig(t)

	t.Run("valid catalog", func(t *testing.T) {
		path := writeCatalog(t, `
products:
  - id: a
    name: A
    price: 300
  - id: b
    name: B
    price: 400
packages:
  - id: mini
    name: Mini
    price: 250
`)
		output, err := executeCommand(rootCmd, "catalog", "validate", path)
		if err != nil {
			t.Fatalf("validate failed: %v", err)
		}
		if !strings.Contains(output, "OK (2 products, 1 packages, 0 sort options)") {
			t.Errorf("unexpected output: %q", output)
		}
	})

	t.Run("invalid catalog", func(t *testing.T) {
		path := writeCatalog(t, `
products:
  - id: a
    price: -1
`)
		_, err := executeCommand(rootCmd, "catalog", "validate", path)
		if !errors.Is(err, errors.ErrCatalogInvalid) {
			t.Errorf("error = %v, want ErrCatalogInvalid", err)
		}
		if err != nil && !strings.Contains(err.Error(), "products[0].name") {
			t.Errorf("error should name the field: %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := executeCommand(rootCmd, "catalog", "validate", filepath.Join(t.TempDir(), "none.yaml"))
		if !errors.Is(err, errors.ErrCatalogNotFound) {
			t.Errorf("error = %v, want ErrCatalogNotFound", err)
		}
	})
}

func TestCatalogShow_Demo(t *testing.T) {
	isolateConfig(t)

	output, err := executeCommand(rootCmd, "catalog", "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{"tee-classic", "M=Medium", "sizes:  (none)", "price-asc", "classic"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestConfigShow(t *testing.T) {
	isolateConfig(t)

	output, err := executeCommand(rootCmd, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"busy_delay_ms: 500", "price_min: 250", "price_max: 650"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestConfigShow_InvalidConfig(t *testing.T) {
	isolateConfig(t)
	t.Setenv("STOREFRONT_FILTERS_PRICE_STEP", "-1")

	_, err := executeCommand(rootCmd, "config", "show")
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("config show error = %v, want ErrInvalidInput", err)
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("error = %q", err)
	}
}

func TestConfigInit(t *testing.T) {
	dir := isolateConfig(t)

	output, err := executeCommand(rootCmd, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(output, "Created config file") {
		t.Errorf("unexpected output: %q", output)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config file not created: %v", err)
	}

	if _, err := executeCommand(rootCmd, "config", "init"); err == nil {
		t.Error("second init should fail because the file exists")
	}
}

func TestOptionSummary(t *testing.T) {
	if got := optionSummary(nil); got != "(defaults)" {
		t.Errorf("optionSummary(nil) = %q", got)
	}
}

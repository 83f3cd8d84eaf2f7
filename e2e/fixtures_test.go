//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalog writes a plain text catalog, one suggestion per line
func (tf *TUITestFramework) WriteCatalog(name string, lines ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	return path, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}

// WriteConfig writes a TOML config with a short delay so tests run fast
func (tf *TUITestFramework) WriteConfig(catalog string, listSize int) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, "config.toml")
	content := fmt.Sprintf(`version = 1

[autocomplete]
suggestion_list_size = %d
suggestion_delay = 50

[source]
path = %q
mode = "prefix"
cache_size = 16
`, listSize, catalog)
	return path, os.WriteFile(path, []byte(content), 0644)
}

// StartWithCatalog sets up a workspace with the given catalog and starts the app
func (tf *TUITestFramework) StartWithCatalog(lines ...string) (configPath string, err error) {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return "", err
	}
	catalog, err := tf.WriteCatalog("catalog.txt", lines...)
	if err != nil {
		return "", err
	}
	configPath, err = tf.WriteConfig(catalog, 5)
	if err != nil {
		return "", err
	}
	return configPath, tf.StartApp("-config", configPath)
}

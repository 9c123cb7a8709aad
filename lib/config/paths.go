package config

import (
	"path/filepath"
)

// CfgPath is a file path taken from a config file.
type CfgPath string

// Resolve makes a relative path relative to base. Empty paths stay empty.
func (c CfgPath) Resolve(base string) CfgPath {
	if c == "" || filepath.IsAbs(string(c)) {
		return c
	}
	return CfgPath(filepath.Join(base, string(c)))
}

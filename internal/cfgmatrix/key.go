// Package cfgmatrix stores, per project, how each solution-level build
// configuration maps onto the project's own configuration.
package cfgmatrix

import (
	"fmt"
	"strings"
)

// anyCPU is the one platform spelling that is rewritten. Project build files
// expect the compact form; other spellings ("anycpu", "Any  CPU") are kept as
// they are.
const (
	anyCPUSpaced  = "Any CPU"
	anyCPUCompact = "AnyCPU"
)

// NormalizePlatform applies the fixed "Any CPU" → "AnyCPU" rewrite.
func NormalizePlatform(platform string) string {
	if platform == anyCPUSpaced {
		return anyCPUCompact
	}
	return platform
}

// Key is a (configuration, platform) pair such as Debug|AnyCPU. It is used
// both for solution-level selections and project-level targets and compares
// by value.
type Key struct {
	Configuration string
	Platform      string
}

// NewKey builds a normalised key.
func NewKey(configuration, platform string) Key {
	return Key{Configuration: configuration, Platform: NormalizePlatform(platform)}
}

// ParseKey reads the "Configuration|Platform" text form.
func ParseKey(s string) (Key, error) {
	configuration, platform, ok := strings.Cut(s, "|")
	if !ok {
		return Key{}, fmt.Errorf("invalid configuration key %q: expected \"Configuration|Platform\"", s)
	}
	configuration = strings.TrimSpace(configuration)
	platform = strings.TrimSpace(platform)
	if configuration == "" || platform == "" {
		return Key{}, fmt.Errorf("invalid configuration key %q: configuration and platform are both required", s)
	}
	if strings.Contains(platform, "|") {
		return Key{}, fmt.Errorf("invalid configuration key %q: too many '|' separators", s)
	}
	return NewKey(configuration, platform), nil
}

// Normalized returns k with its platform normalised.
func (k Key) Normalized() Key {
	return NewKey(k.Configuration, k.Platform)
}

// String renders the "Configuration|Platform" text form.
func (k Key) String() string {
	return k.Configuration + "|" + k.Platform
}

// MarshalText renders keys as plain strings in JSON output.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

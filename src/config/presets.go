package config

import (
	"bytes"
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// ErrUnknownPreset is returned by Preset for a name with no embedded file.
var ErrUnknownPreset = errors.New("unknown preset")

// PresetNames lists the embedded presets, sorted.
func PresetNames() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if n := e.Name(); strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// PresetSource returns the raw YAML of a preset.
func PresetSource(name string) ([]byte, error) {
	b, err := presetFS.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownPreset, "%q (have %s)", name, strings.Join(PresetNames(), ", "))
	}
	return b, nil
}

// Preset parses an embedded preset. Its panel files resolve against the
// working directory.
func Preset(name string) (*Figure, error) {
	b, err := PresetSource(name)
	if err != nil {
		return nil, err
	}
	f, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "preset %s", name)
	}
	return f, nil
}

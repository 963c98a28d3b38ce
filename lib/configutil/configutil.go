package configutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// layers returns the files making up a config, later files override
// earlier ones. ex. "otodom.json5" -> ["otodom.json5", "otodom.local.json5"]
func layers(name string) []string {
	ext := filepath.Ext(name)
	return []string{name, strings.TrimSuffix(name, ext) + ".local" + ext}
}

// ReadConfig reads the json5 config `name` and merges its ".local" variant
// over it (ex. otodom.local.json5). os.ErrNotExist is returned when neither
// file exists.
func ReadConfig[T any](name string) (T, error) {
	var out T
	found := false

	for _, path := range layers(name) {
		contents, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return out, err
		}
		if len(contents) == 0 {
			continue
		}

		var layer T
		err = json5.Unmarshal(contents, &layer)
		if err != nil {
			return out, fmt.Errorf("parse %s: %w", path, err)
		}
		err = mergo.Merge(&out, layer, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		if found {
			slog.Info("merged config with local overrides", "local", path)
		}
		found = true
	}

	if !found {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively is ReadConfig on `name` in the cwd and then in each
// parent directory up to the root, the first one found is returned.
func ReadRecursively[T any](name string) (T, error) {
	var empty T

	current, err := os.Getwd()
	if err != nil {
		return empty, err
	}
	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if err == nil {
			return config, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return empty, err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return empty, os.ErrNotExist
		}
		current = parent
	}
}

// ReadOrDefault reads `name` (recursively when it is not an explicit path)
// and merges the result over `defaults`. A config that does not exist
// yields `defaults` unchanged.
func ReadOrDefault[T any](name string, defaults T) (T, error) {
	var (
		found T
		err   error
	)
	if filepath.IsAbs(name) || filepath.Dir(name) != "." {
		found, err = ReadConfig[T](name)
	} else {
		found, err = ReadRecursively[T](name)
	}
	if errors.Is(err, os.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("read %s: %w", name, err)
	}

	out := defaults
	err = mergo.Merge(&out, found, mergo.WithOverride)
	if err != nil {
		return defaults, err
	}
	return out, nil
}

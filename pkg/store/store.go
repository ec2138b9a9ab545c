// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package store persists tournaments as YAML files, one file per
// tournament, so that a tournament can be continued across invocations.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/pairings/internal/util"
	"laptudirm.com/x/pairings/pkg/common"
	"laptudirm.com/x/pairings/pkg/tournament"
)

const extension = ".yaml"

var (
	ErrNotFound    = errors.New("tournament not found")
	ErrExists      = errors.New("tournament already exists")
	ErrInvalidName = errors.New("invalid tournament name")
)

type Store struct {
	dir string
}

// New creates a store keeping its files in the given directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Default returns the store in the user's data directory.
func Default() (*Store, error) {
	if err := common.Setup(); err != nil {
		return nil, fmt.Errorf("setup data directory: %w", err)
	}

	return New(common.TournamentDirectory), nil
}

func (store *Store) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return filepath.Join(store.dir, name+extension), nil
}

// Create saves a new tournament, failing if one with the same name exists.
func (store *Store) Create(state tournament.State) error {
	path, err := store.path(state.Config.Name)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, state.Config.Name)
	}

	return store.Save(state)
}

// Save writes the tournament's state, replacing any earlier state.
func (store *Store) Save(state tournament.State) error {
	path, err := store.path(state.Config.Name)
	if err != nil {
		return err
	}

	if err := common.TryMkdir(store.dir); err != nil {
		return err
	}

	data, err := yaml.Marshal(&state)
	if err != nil {
		return fmt.Errorf("save %s: %w", state.Config.Name, err)
	}

	// write to a temporary file first so a failed write never leaves a
	// truncated tournament behind
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, common.FilePermissions); err != nil {
		return fmt.Errorf("save %s: %w", state.Config.Name, err)
	}

	logrus.WithField("file", path).Debug("saving tournament")
	return os.Rename(tmp, path)
}

// Load reads the state of the named tournament.
func (store *Store) Load(name string) (tournament.State, error) {
	path, err := store.path(name)
	if err != nil {
		return tournament.State{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return tournament.State{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	} else if err != nil {
		return tournament.State{}, err
	}

	var state tournament.State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return tournament.State{}, fmt.Errorf("load %s: %w", name, err)
	}

	if state.Config.Name != name {
		logrus.Warnf("tournament file %s names tournament %q", path, state.Config.Name)
		state.Config.Name = name
	}

	return state, nil
}

// Open loads and restores the named tournament.
func (store *Store) Open(name string) (*tournament.Tournament, error) {
	state, err := store.Load(name)
	if err != nil {
		return nil, err
	}

	return tournament.Restore(state)
}

// List returns the names of the stored tournaments in natural order.
func (store *Store) List() ([]string, error) {
	entries, err := os.ReadDir(store.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != extension {
			continue
		}

		names = append(names, strings.TrimSuffix(entry.Name(), extension))
	}

	sort.Slice(names, func(i, j int) bool {
		return util.NaturalLess(names[i], names[j])
	})

	return names, nil
}

// Remove deletes the named tournament.
func (store *Store) Remove(name string) error {
	path, err := store.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	} else if err != nil {
		return err
	}

	return nil
}

// Package ruleset loads dice-set definitions from YAML content files.
package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/montecarlo/internal/game/dice"
	"github.com/cory-johannsen/montecarlo/internal/game/simerr"
)

// DiceSet describes the dice rolled together in one game.
//
// A set is given either by Notation ("3d6": Count fair dice with faces
// 1..Sides) or by an explicit Faces list repeated Copies times. Weights
// override the default weight of 1.0 and apply to every die in the set.
type DiceSet struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Notation    string             `yaml:"notation"`
	Faces       []string           `yaml:"faces"`
	Copies      int                `yaml:"copies"`
	Weights     map[string]float64 `yaml:"weights"`
}

// Numeric reports whether the set uses dice notation and so has integer faces.
func (s *DiceSet) Numeric() bool { return s.Notation != "" }

// Validate checks that the set is well formed.
//
// Postcondition: Returns nil iff ID is non-empty, exactly one of Notation and
// Faces is given, Copies is not negative and not combined with Notation,
// and every weighted face exists. Violations wrap simerr.ErrInvalidArgument.
func (s *DiceSet) Validate() error {
	var errs []string
	if s.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	switch {
	case s.Notation != "" && len(s.Faces) > 0:
		errs = append(errs, "notation and faces are mutually exclusive")
	case s.Notation == "" && len(s.Faces) == 0:
		errs = append(errs, "one of notation or faces is required")
	}
	if s.Copies < 0 {
		errs = append(errs, fmt.Sprintf("copies must be >= 0, got %d", s.Copies))
	}
	if s.Notation != "" && s.Copies > 0 {
		errs = append(errs, "copies must not be combined with notation")
	}
	if len(errs) == 0 {
		faces, err := s.faceLabels()
		if err != nil {
			errs = append(errs, err.Error())
		} else {
			known := make(map[string]bool, len(faces))
			for _, f := range faces {
				known[f] = true
			}
			for f := range s.Weights {
				if !known[f] {
					errs = append(errs, fmt.Sprintf("weight given for unknown face %q", f))
				}
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: dice set %q: %s", simerr.ErrInvalidArgument, s.ID, strings.Join(errs, "; "))
	}
	return nil
}

func (s *DiceSet) faceLabels() ([]string, error) {
	if s.Notation == "" {
		return s.Faces, nil
	}
	n, err := dice.ParseNotation(s.Notation)
	if err != nil {
		return nil, err
	}
	out := make([]string, n.Sides)
	for i, f := range n.Faces() {
		out[i] = strconv.Itoa(f)
	}
	return out, nil
}

func (s *DiceSet) copies() int {
	if s.Copies == 0 {
		return 1
	}
	return s.Copies
}

// Build creates the set's dice with string faces, sharing src.
//
// Precondition: s must not use notation (see BuildNumeric); Validate must pass.
// Postcondition: Returns Copies independent dice with Weights applied.
func (s *DiceSet) Build(src dice.Source) ([]*dice.Die[string], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Numeric() {
		return nil, fmt.Errorf("%w: dice set %q uses notation, build it with BuildNumeric", simerr.ErrInvalidArgument, s.ID)
	}
	out := make([]*dice.Die[string], 0, s.copies())
	for i := 0; i < s.copies(); i++ {
		d, err := dice.NewDie(s.Faces, src)
		if err != nil {
			return nil, fmt.Errorf("dice set %q: %w", s.ID, err)
		}
		for face, w := range s.Weights {
			if err := d.SetWeight(face, w); err != nil {
				return nil, fmt.Errorf("dice set %q: %w", s.ID, err)
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// BuildNumeric creates the dice described by Notation with integer faces.
//
// Precondition: s must use notation; Validate must pass.
// Postcondition: Returns Notation.Count independent dice with Weights applied.
func (s *DiceSet) BuildNumeric(src dice.Source) ([]*dice.Die[int], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !s.Numeric() {
		return nil, fmt.Errorf("%w: dice set %q has no notation, build it with Build", simerr.ErrInvalidArgument, s.ID)
	}
	n, err := dice.ParseNotation(s.Notation)
	if err != nil {
		return nil, err
	}
	out, err := n.Build(src)
	if err != nil {
		return nil, fmt.Errorf("dice set %q: %w", s.ID, err)
	}
	for label, w := range s.Weights {
		face, err := strconv.Atoi(label)
		if err != nil {
			return nil, fmt.Errorf("%w: dice set %q: face %q is not an integer", simerr.ErrInvalidArgument, s.ID, label)
		}
		for _, d := range out {
			if err := d.SetWeight(face, w); err != nil {
				return nil, fmt.Errorf("dice set %q: %w", s.ID, err)
			}
		}
	}
	return out, nil
}

// LoadDiceSet reads and validates a single dice-set file.
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns a valid DiceSet or a non-nil error.
func LoadDiceSet(path string) (*DiceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var s DiceSet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing dice set file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// LoadDiceSets reads all .yaml files in dir and parses each as a DiceSet.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed sets (may be empty slice) or a non-nil error.
func LoadDiceSets(dir string) ([]*DiceSet, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	sets := make([]*DiceSet, 0, len(files))
	for _, path := range files {
		s, err := LoadDiceSet(path)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}

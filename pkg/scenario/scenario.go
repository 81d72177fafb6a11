// Package scenario loads weighted-item datasets from TOML files and runs them
// through the treemap layout algorithms.
//
// A scenario file names a container rectangle, an ordered list of weighted
// items, and the algorithm (plus options) to lay them out with:
//
//	name = "paper"
//	algorithm = "squarify"
//	check_sorted = true
//
//	[container]
//	w = 6.0
//	h = 4.0
//
//	[[item]]
//	label = "core"
//	weight = 6.0
//
// Scenarios are the file-driven entry point for embedding code and for test
// fixtures; the layout functions themselves never touch the filesystem.
package scenario

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/treemap/pkg/errors"
	"github.com/matzehuels/treemap/pkg/geom"
	"github.com/matzehuels/treemap/pkg/treemap"
)

// Supported algorithm names.
const (
	AlgoSlice    = "slice"
	AlgoDice     = "dice"
	AlgoBinary   = "binary"
	AlgoSquarify = "squarify"
	AlgoOrdered  = "ordered"
)

// Item is one weighted entry of a scenario. Rect is filled in by Run.
type Item struct {
	ID     string  `toml:"id"`
	Label  string  `toml:"label"`
	Weight float64 `toml:"weight"`

	Rect geom.Rect[float64] `toml:"-"`
}

// Container is the target rectangle of a scenario.
type Container struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	W float64 `toml:"w"`
	H float64 `toml:"h"`
}

// Scenario is a declarative layout job: items, container, and algorithm.
type Scenario struct {
	Name      string `toml:"name"`
	Algorithm string `toml:"algorithm"`

	// Pivot selects the OrderedPivot strategy ("middle" or "size");
	// only meaningful when Algorithm is "ordered". Empty means "middle".
	Pivot string `toml:"pivot"`

	// CheckSorted enables the opt-in descending-weight verification before
	// a squarify run.
	CheckSorted bool `toml:"check_sorted"`

	Container Container `toml:"container"`
	Items     []Item    `toml:"item"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scenario file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "read scenario %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario from TOML bytes. Items without an
// explicit id get a deterministic UUID derived from the scenario name, their
// label and their position.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode scenario")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	for i := range s.Items {
		if s.Items[i].ID == "" {
			s.Items[i].ID = deriveID(s.Name, s.Items[i].Label, i)
		}
	}
	return &s, nil
}

// deriveID builds a stable UUIDv5 so reloading the same file yields the same
// item identities.
func deriveID(scenario, label string, index int) string {
	name := scenario + "/" + label + "/" + strconv.Itoa(index)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

func (s *Scenario) validate() error {
	if len(s.Items) == 0 {
		return errors.New(errors.ErrCodeInvalidScenario, "scenario %q has no items", s.Name)
	}
	if err := errors.ValidateRect(s.Container.X, s.Container.Y, s.Container.W, s.Container.H); err != nil {
		return err
	}
	for i := range s.Items {
		if err := errors.ValidateWeight(i, s.Items[i].Weight); err != nil {
			return err
		}
	}
	switch s.Algorithm {
	case AlgoSlice, AlgoDice, AlgoBinary, AlgoSquarify, AlgoOrdered:
	default:
		return errors.New(errors.ErrCodeInvalidAlgo, "unknown algorithm %q", s.Algorithm)
	}
	if s.Algorithm == AlgoOrdered {
		switch s.Pivot {
		case "", "middle", "size":
		default:
			return errors.New(errors.ErrCodeInvalidAlgo, "unknown pivot strategy %q", s.Pivot)
		}
	}
	return nil
}

// Rect returns the container as a geom.Rect.
func (s *Scenario) Rect() geom.Rect[float64] {
	return geom.Rect[float64]{X: s.Container.X, Y: s.Container.Y, W: s.Container.W, H: s.Container.H}
}

// Run lays out the scenario items, writing each item's rectangle back into
// the Items slice.
func (s *Scenario) Run() error {
	size := func(it *Item) float64 { return it.Weight }
	set := func(it *Item, r geom.Rect[float64]) { it.Rect = r }
	rect := s.Rect()

	switch s.Algorithm {
	case AlgoSlice:
		return treemap.Slice(rect, s.Items, size, set)
	case AlgoDice:
		return treemap.Dice(rect, s.Items, size, set)
	case AlgoBinary:
		return treemap.Binary(rect, s.Items, size, set)
	case AlgoSquarify:
		if s.CheckSorted {
			if err := treemap.CheckDescending(s.Items, size); err != nil {
				return err
			}
		}
		return treemap.Squarify(rect, s.Items, size, set)
	case AlgoOrdered:
		strategy := treemap.PivotByMiddle
		if s.Pivot == "size" {
			strategy = treemap.PivotBySize
		}
		return treemap.OrderedPivot(rect, s.Items, size, set, strategy)
	}
	return errors.New(errors.ErrCodeInvalidAlgo, "unknown algorithm %q", s.Algorithm)
}

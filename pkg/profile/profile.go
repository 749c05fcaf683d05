// Package profile loads named physics tuning profiles from YAML, so the
// feel of drag momentum, page snapping and spring return can be adjusted
// without recompiling the host application.
//
// A profiles file looks like:
//
//	version: v1
//	profiles:
//	  list:
//	    behavior: momentum
//	    friction: 0.08
//	    minimum_velocity: 0.1
//	  pager:
//	    behavior: snap
//	    page_size: 320
//	  sheet:
//	    behavior: spring
//	    stiffness: 170
//	    damping: 26
//	    target: 0
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/kinetic/pkg/motion"
)

// Kind names a behaviour implementation.
type Kind string

const (
	KindMomentum Kind = "momentum"
	KindSnap     Kind = "snap"
	KindSpring   Kind = "spring"
)

// CurrentVersion is the profiles file format version this package writes
// and accepts. Files from a different major version are rejected.
const CurrentVersion = "v1"

// DefaultFileName is the profiles file looked up by LoadOptional.
const DefaultFileName = "kinetic.yaml"

var (
	// ErrUnknownProfile is returned when a named profile does not exist.
	ErrUnknownProfile = errors.New("unknown profile")
	// ErrUnknownBehavior is returned for an unrecognized behaviour kind.
	ErrUnknownBehavior = errors.New("unknown behavior")
	// ErrVersion is returned for a missing or incompatible file version.
	ErrVersion = errors.New("incompatible profiles version")
)

// File is an on-disk collection of named profiles.
type File struct {
	Version  string          `yaml:"version"`
	Profiles map[string]Spec `yaml:"profiles"`
}

// Spec describes one behaviour configuration. Fields not used by the
// selected behaviour are ignored; zero values fall back to the
// behaviour's defaults.
type Spec struct {
	Behavior Kind `yaml:"behavior"`

	// Momentum parameters.
	Friction        float64 `yaml:"friction,omitempty"`
	MinimumVelocity float64 `yaml:"minimum_velocity,omitempty"`

	// Snap parameters.
	PageSize float64 `yaml:"page_size,omitempty"`

	// Spring parameters.
	Stiffness float64 `yaml:"stiffness,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
	Mass      float64 `yaml:"mass,omitempty"`
	Target    float64 `yaml:"target,omitempty"`
}

// Defaults returns the built-in profiles: "list" (momentum), "pager"
// (unit page snapping) and "sheet" (spring back to zero).
func Defaults() *File {
	return &File{
		Version: CurrentVersion,
		Profiles: map[string]Spec{
			"list":  {Behavior: KindMomentum, Friction: 0.08, MinimumVelocity: 0.1},
			"pager": {Behavior: KindSnap, PageSize: 1},
			"sheet": {Behavior: KindSpring, Stiffness: 170, Damping: 26, Mass: 1},
		},
	}
}

// Load reads and validates a profiles file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &f, nil
}

// LoadOptional reads DefaultFileName from dir if present, falling back to
// the built-in defaults when the file does not exist.
func LoadOptional(dir string) (*File, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	return Load(path)
}

func (f *File) validate() error {
	if f.Version == "" {
		return fmt.Errorf("%w: missing version", ErrVersion)
	}
	if !semver.IsValid(f.Version) {
		return fmt.Errorf("%w: %q is not a valid version", ErrVersion, f.Version)
	}
	if semver.Major(f.Version) != semver.Major(CurrentVersion) {
		return fmt.Errorf("%w: file is %s, supported is %s",
			ErrVersion, semver.Major(f.Version), semver.Major(CurrentVersion))
	}
	for name, spec := range f.Profiles {
		if err := spec.validate(); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return nil
}

func (s Spec) validate() error {
	switch s.Behavior {
	case KindMomentum:
		if s.Friction < 0 || s.Friction > 1 {
			return fmt.Errorf("friction %v outside [0, 1]", s.Friction)
		}
		if s.MinimumVelocity < 0 {
			return fmt.Errorf("minimum_velocity %v is negative", s.MinimumVelocity)
		}
	case KindSnap:
		if s.PageSize < 0 {
			return fmt.Errorf("page_size %v is negative", s.PageSize)
		}
	case KindSpring:
		if s.Stiffness < 0 || s.Damping < 0 || s.Mass < 0 {
			return fmt.Errorf("spring constants must be non-negative")
		}
	case "":
		return fmt.Errorf("%w: behavior is required", ErrUnknownBehavior)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBehavior, s.Behavior)
	}
	return nil
}

// Build constructs the behaviour a named profile describes.
func (f *File) Build(name string) (motion.Behavior, error) {
	spec, ok := f.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return spec.Build()
}

// Names returns the profile names in unspecified order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	return names
}

// Build constructs the behaviour this spec describes.
func (s Spec) Build() (motion.Behavior, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	switch s.Behavior {
	case KindMomentum:
		m := motion.NewMomentum()
		if s.Friction > 0 {
			m.SetFriction(s.Friction)
		}
		if s.MinimumVelocity > 0 {
			m.SetMinimumVelocity(s.MinimumVelocity)
		}
		return m, nil
	case KindSnap:
		snap := motion.NewSnapToPage()
		if s.PageSize > 0 {
			snap.SetPageSize(s.PageSize)
		}
		return snap, nil
	case KindSpring:
		b := motion.NewSpringBack(s.Target)
		spring := motion.IOSSpring()
		if s.Stiffness > 0 {
			spring.Stiffness = s.Stiffness
		}
		if s.Damping > 0 {
			spring.Damping = s.Damping
		}
		if s.Mass > 0 {
			spring.Mass = s.Mass
		}
		b.SetSpring(spring)
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBehavior, s.Behavior)
	}
}

// Package config holds the run options of the quasiorder tools. Options are read from a
// YAML (or JSON) file and then overridden by command line flags.
package config

import (
	"os"
	"slices"

	"github.com/limaJavier/quasiorder/pkg/lattice"
	"github.com/limaJavier/quasiorder/pkg/relation"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const DefaultThresholdSize = 500

const (
	ViewAll            = "all"
	ViewFaithful       = "faithful"
	ViewNormal         = "normal"
	ViewFaithfulNormal = "faithful-normal"
)

var (
	// Path to the config file used when none is given explicitly. Empty means defaults only
	ConfigPath = ""
	ValidViews = []string{ViewAll, ViewFaithful, ViewNormal, ViewFaithfulNormal}
)

type Options struct {
	Closure       relation.ClosureMode `mapstructure:"closure"`
	Sort          bool                 `mapstructure:"sort"`
	AllGraphs     bool                 `mapstructure:"allGraphs"`
	Threshold     bool                 `mapstructure:"threshold"`
	ThresholdSize int                  `mapstructure:"thresholdSize"`
	FaithfulOnly  bool                 `mapstructure:"faithfulOnly"`
	NormalOnly    bool                 `mapstructure:"normalOnly"`
	Views         []string             `mapstructure:"views"`
	GroupedNames  bool                 `mapstructure:"groupedNames"` // Name clustered nodes after every member instead of the first one
	OutDir        string               `mapstructure:"outDir"`
	Verbose       bool                 `mapstructure:"verbose"`
}

func Defaults() Options {
	return Options{
		Closure:       relation.ClosureBoth,
		ThresholdSize: DefaultThresholdSize,
		Views:         slices.Clone(ValidViews),
		OutDir:        ".",
	}
}

// Load reads the options stored at path on top of the defaults. An empty path yields the defaults
func Load(path string) (Options, error) {
	if path == "" {
		return Defaults(), nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrapf(err, "cannot read config file %v", path)
	}
	return Parse(bytes)
}

// Parse decodes YAML (JSON being a subset of it) on top of the defaults
func Parse(bytes []byte) (Options, error) {
	options := Defaults()

	var rawOptions map[string]any
	if err := yaml.Unmarshal(bytes, &rawOptions); err != nil {
		return Options{}, errors.Wrap(err, "cannot parse config")
	}
	if rawOptions == nil {
		return options, nil
	}

	// Lists given in the file replace the default ones instead of overwriting them element-wise
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{ZeroFields: true, Result: &options})
	if err != nil {
		return Options{}, errors.Wrap(err, "cannot build config decoder")
	}
	if err := decoder.Decode(rawOptions); err != nil {
		return Options{}, errors.Wrap(err, "cannot decode config")
	}

	if err := options.Validate(); err != nil {
		return Options{}, err
	}
	return options, nil
}

func (options Options) Validate() error {
	if !options.Closure.IsValid() {
		return errors.Errorf("closure must be one of \"both\", \"intersection\" or \"none\": %v", options.Closure)
	} else if options.ThresholdSize <= 0 {
		return errors.Errorf("threshold size must be greater than 0: %v", options.ThresholdSize)
	} else if len(options.Views) == 0 {
		return errors.New("at least one lattice view must be given")
	}

	if view, ok := lo.Find(options.Views, func(view string) bool { return !slices.Contains(ValidViews, view) }); ok {
		return errors.Errorf("view must be one of %v: %v", ValidViews, view)
	}
	return nil
}

// NameSelector picks how the nodes of an automorphism class are named in the lattice views
func (options Options) NameSelector() lattice.NameSelector {
	if options.GroupedNames {
		return lattice.FullPartName
	}
	return lattice.RepresentativeName
}

// SkipLattice reports whether a lattice of the given size is too big to be written
func (options Options) SkipLattice(size int) bool {
	return options.Threshold && size >= options.ThresholdSize
}

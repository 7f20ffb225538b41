package group

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// RawGroup is the unprocessed group descriptor. Every subgroup is given as the names of its members and every automorphism as a list of [from, to] element-name pairs.
//
// The first element must be the identity, the first subgroup must be the trivial one and the last conjugacy class must hold the whole group and nothing else: the enumeration always selects that class and skips the selections without it.
type RawGroup struct {
	Elements         []string     `mapstructure:"elements"`
	ConjugacyClasses [][][]string `mapstructure:"conjugacyClasses"`
	Automorphisms    [][][]string `mapstructure:"automorphisms"`
}

func GroupFromJson(file string, sortElements bool) (*Group, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read group file \"%v\"", file)
	}

	raw, err := RawGroupFromJson(bytes)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse group file \"%v\"", file)
	}
	return FromRaw(raw, sortElements)
}

// RawGroupFromJson accepts either an object with "elements", "conjugacyClasses" and "automorphisms" keys or the legacy nested array [[[elements]], classes, automorphisms]
func RawGroupFromJson(bytes []byte) (RawGroup, error) {
	var inputJson any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return RawGroup{}, err
	}

	var rawGroup RawGroup
	switch input := inputJson.(type) {
	case map[string]any:
		if err := mapstructure.Decode(input, &rawGroup); err != nil {
			return RawGroup{}, errors.Wrap(err, "cannot decode group descriptor")
		}
	case []any:
		var legacy [][][][]string
		if err := mapstructure.Decode(input, &legacy); err != nil {
			return RawGroup{}, errors.Wrap(err, "cannot decode legacy group descriptor")
		}
		if len(legacy) < 2 || len(legacy[0]) == 0 || len(legacy[0][0]) == 0 {
			return RawGroup{}, errors.Wrap(ErrInvalidGroup, "legacy descriptor must hold the elements at [0][0][0] and the conjugacy classes at [1]")
		}
		rawGroup.Elements = legacy[0][0][0]
		rawGroup.ConjugacyClasses = legacy[1]
		if len(legacy) > 2 {
			rawGroup.Automorphisms = legacy[2]
		}
	default:
		return RawGroup{}, errors.Wrapf(ErrInvalidGroup, "unexpected descriptor of type %T", inputJson)
	}

	// Every automorphism entry must be a [from, to] pair
	for i, automorphism := range rawGroup.Automorphisms {
		if malformed, ok := lo.Find(automorphism, func(pair []string) bool { return len(pair) != 2 }); ok {
			return RawGroup{}, errors.Wrapf(ErrInvalidPermutation, "automorphism %v holds a non-pair entry %v", i, malformed)
		}
	}
	return rawGroup, nil
}

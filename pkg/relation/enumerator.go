package relation

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/limaJavier/quasiorder/pkg/group"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Class masks are uint64 and the top class is always selected
const MaxClasses = 63

var ErrTooManyClasses = errors.New("too many conjugacy classes")

type ClosureMode string

const (
	ClosureBoth         ClosureMode = "both"         // Families must be closed under intersection and union
	ClosureIntersection ClosureMode = "intersection" // Families must be closed under intersection
	ClosureNone         ClosureMode = "none"         // Every family is investigated
)

func (mode ClosureMode) IsValid() bool {
	switch mode {
	case ClosureBoth, ClosureIntersection, ClosureNone:
		return true
	}
	return false
}

type Options struct {
	Closure      ClosureMode
	FaithfulOnly bool
	NormalOnly   bool
	Logger       log.FieldLogger
}

type Stats struct {
	ClassMasks   uint64 // Class selections visited
	Investigated int    // Families that passed the closure checks
	Unique       int
	NumClasses   int
	NumSubgroups int
}

func (stats Stats) Summary() string {
	return fmt.Sprintf("Found %d unique relations, from %d investigated relations, [ out of 2^%d or 2^%d ]", stats.Unique, stats.Investigated, stats.NumClasses, stats.NumSubgroups)
}

type Enumerator interface {
	Enumerate(g *group.Group) (*Set, Stats, error)
}

type enumeratorImplementation struct {
	options Options
}

func NewEnumerator(options Options) Enumerator {
	if options.Closure == "" {
		options.Closure = ClosureBoth
	}
	if options.Logger == nil {
		options.Logger = log.StandardLogger()
	}
	return &enumeratorImplementation{options: options}
}

// Enumerate visits every class selection containing the last class (the whole group) and collects the unique relations of the families that pass the closure checks
func (enumerator *enumeratorImplementation) Enumerate(g *group.Group) (*Set, Stats, error) {
	numClasses := g.NumClasses()
	if numClasses == 0 {
		return nil, Stats{}, errors.Wrap(group.ErrInvalidGroup, "a group must have at least one conjugacy class")
	}
	if numClasses > MaxClasses {
		return nil, Stats{}, errors.Wrapf(ErrTooManyClasses, "%v conjugacy classes were given but at most %v are supported", numClasses, MaxClasses)
	}

	stats := Stats{
		NumClasses:   numClasses,
		NumSubgroups: g.NumSubgroups(),
	}
	logger := enumerator.options.Logger.WithFields(log.Fields{
		"classes":   stats.NumClasses,
		"subgroups": stats.NumSubgroups,
		"closure":   enumerator.options.Closure,
	})
	logger.Debug("Enumerating subgroup families")

	set := NewSet()
	half := uint64(1) << (numClasses - 1)
	for selection := range half {
		classMask := half | selection
		stats.ClassMasks++

		family := group.FamilyFromClasses(g.ConjugacyClasses, g.NumSubgroups(), classMask)
		if !enumerator.isClosed(g, family) {
			continue
		}
		stats.Investigated++

		relation := FamilyRelation(g, family)
		if enumerator.options.FaithfulOnly && !relation.Faithful {
			continue
		}
		if enumerator.options.NormalOnly && !relation.Normal {
			continue
		}

		if set.Add(relation, family) {
			logger.WithField("mask", classMask).Debugf("New relation %v with cardinality %v", set.Len()-1, relation.Cardinality)
		}
	}

	stats.Unique = set.Len()
	logger.WithField("unique", stats.Unique).Debug("Enumeration finished")
	return set, stats, nil
}

func (enumerator *enumeratorImplementation) isClosed(g *group.Group, family *bitset.BitSet) bool {
	switch enumerator.options.Closure {
	case ClosureNone:
		return true
	case ClosureIntersection:
		return group.IsIntersectionClosed(g.Intersections, family)
	default:
		return group.IsIntersectionClosed(g.Intersections, family) && group.IsUnionClosed(g.Unions, family)
	}
}

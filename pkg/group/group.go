// Package group models a finite group through its elements, its subgroups grouped by conjugacy class and its automorphisms
package group

import (
	"cmp"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Group struct {
	ElementNames     []string
	ElementMasks     []*bitset.BitSet // Per element, the subgroups it belongs to
	SubgroupMasks    []*bitset.BitSet // Per subgroup, its elements
	SubgroupNames    []string
	SubgroupClasses  []int
	ConjugacyClasses []*bitset.BitSet // Per conjugacy class, its subgroups
	Intersections    [][]int
	Unions           [][]int // NoSubgroup when the union of two subgroups is not a subgroup
	Normal           *bitset.BitSet
	Automorphisms    []Permutation
}

func FromRaw(raw RawGroup, sortElements bool) (*Group, error) {
	elementNames := slices.Clone(raw.Elements)
	if sortElements {
		slices.SortStableFunc(elementNames, func(a, b string) int {
			return cmp.Or(cmp.Compare(len(a), len(b)), strings.Compare(a, b))
		})
	}

	//** Index elements
	elementIndices := make(map[string]int, len(elementNames))
	for i, name := range elementNames {
		if _, ok := elementIndices[name]; ok {
			return nil, errors.Wrapf(ErrInvalidGroup, "elements must be unique: \"%v\" is repeated", name)
		}
		elementIndices[name] = i
	}
	indexOf := func(name string) (int, error) {
		index, ok := elementIndices[name]
		if !ok {
			return 0, errors.Wrapf(ErrInvalidGroup, "unknown element \"%v\"", name)
		}
		return index, nil
	}

	numElements := len(elementNames)
	numSubgroups := lo.SumBy(raw.ConjugacyClasses, func(class [][]string) int { return len(class) })

	group := &Group{
		ElementNames:     elementNames,
		ElementMasks:     make([]*bitset.BitSet, numElements),
		SubgroupMasks:    make([]*bitset.BitSet, 0, numSubgroups),
		SubgroupNames:    make([]string, 0, numSubgroups),
		SubgroupClasses:  make([]int, 0, numSubgroups),
		ConjugacyClasses: make([]*bitset.BitSet, len(raw.ConjugacyClasses)),
		Normal:           bitset.New(uint(numSubgroups)),
	}
	for i := range group.ElementMasks {
		group.ElementMasks[i] = bitset.New(uint(numSubgroups))
	}

	//** Assign subgroups consecutive indices class by class
	for class, subgroups := range raw.ConjugacyClasses {
		group.ConjugacyClasses[class] = bitset.New(uint(numSubgroups))
		// A subgroup is normal if and only if it is alone in its conjugacy class
		if len(subgroups) == 1 {
			group.Normal.Set(uint(len(group.SubgroupMasks)))
		}

		for _, members := range subgroups {
			subgroup := len(group.SubgroupMasks)
			mask := bitset.New(uint(numElements))
			for _, member := range members {
				element, err := indexOf(member)
				if err != nil {
					return nil, errors.Wrapf(err, "subgroup %v of conjugacy class %v", subgroup, class)
				}
				mask.Set(uint(element))
				group.ElementMasks[element].Set(uint(subgroup))
			}

			group.SubgroupMasks = append(group.SubgroupMasks, mask)
			group.SubgroupNames = append(group.SubgroupNames, strings.Join(members, " "))
			group.SubgroupClasses = append(group.SubgroupClasses, class)
			group.ConjugacyClasses[class].Set(uint(subgroup))
		}
	}

	//** Automorphisms
	group.Automorphisms = make([]Permutation, len(raw.Automorphisms))
	for i, automorphism := range raw.Automorphisms {
		pairs := make([][2]int, len(automorphism))
		for j, pair := range automorphism {
			if len(pair) != 2 {
				return nil, errors.Wrapf(ErrInvalidPermutation, "automorphism %v holds a non-pair entry %v", i, pair)
			}
			from, err := indexOf(pair[0])
			if err != nil {
				return nil, errors.Wrapf(err, "automorphism %v", i)
			}
			to, err := indexOf(pair[1])
			if err != nil {
				return nil, errors.Wrapf(err, "automorphism %v", i)
			}
			pairs[j] = [2]int{from, to}
		}

		permutation, err := PermutationFromTable(pairs, numElements)
		if err != nil {
			return nil, errors.Wrapf(err, "automorphism %v", i)
		}
		group.Automorphisms[i] = permutation
	}

	if err := group.Validate(); err != nil {
		return nil, err
	}

	//** Combination tables
	intersections := combinationTable(group.SubgroupMasks, (*bitset.BitSet).InPlaceIntersection)
	for i, row := range intersections {
		if j := slices.Index(row, NoSubgroup); j != -1 {
			return nil, errors.Wrapf(ErrIntersectionNotFound, "subgroups {%v} and {%v}", group.SubgroupNames[i], group.SubgroupNames[j])
		}
	}
	group.Intersections = intersections
	group.Unions = combinationTable(group.SubgroupMasks, (*bitset.BitSet).InPlaceUnion)
	return group, nil
}

// Validate checks the structural invariants the enumeration relies on: element 0 is the identity and lies in every subgroup, subgroup 0 is trivial and the last subgroup is the whole group, alone in the last conjugacy class
func (group *Group) Validate() error {
	numElements := group.NumElements()
	numSubgroups := group.NumSubgroups()
	if numElements == 0 || numSubgroups == 0 {
		return errors.Wrapf(ErrInvalidGroup, "a group must have at least one element and one subgroup: %v elements and %v subgroups were given", numElements, numSubgroups)
	}

	if _, class, ok := lo.FindIndexOf(group.ConjugacyClasses, func(class *bitset.BitSet) bool { return class.None() }); ok {
		return errors.Wrapf(ErrInvalidGroup, "conjugacy classes must not be empty: class %v has no subgroups", class)
	}

	if missing := bitset.New(uint(numSubgroups)).Complement().Difference(group.ElementMasks[0]); missing.Any() {
		first, _ := missing.NextSet(0)
		return errors.Wrapf(ErrInvalidGroup, "identity \"%v\" must be a member of every subgroup: missing from subgroup %v", group.ElementNames[0], first)
	}

	if trivial := group.SubgroupMasks[0]; trivial.Count() != 1 || !trivial.Test(0) {
		return errors.Wrapf(ErrInvalidGroup, "first subgroup must be trivial: {%v}", group.SubgroupNames[0])
	}

	last := numSubgroups - 1
	if group.SubgroupMasks[last].Count() != uint(numElements) {
		return errors.Wrapf(ErrInvalidGroup, "last subgroup must be the whole group: {%v}", group.SubgroupNames[last])
	}
	if group.ConjugacyClasses[group.NumClasses()-1].Count() != 1 {
		return errors.Wrapf(ErrInvalidGroup, "whole group must be alone in the last conjugacy class")
	}

	for i, automorphism := range group.Automorphisms {
		for _, swap := range automorphism {
			if swap.I < 0 || swap.J >= numElements || swap.I > swap.J {
				return errors.Wrapf(ErrInvalidPermutation, "automorphism %v holds swap %v outside the element set", i, swap)
			}
		}
	}
	return nil
}

func (group *Group) NumElements() int {
	return len(group.ElementNames)
}

func (group *Group) NumSubgroups() int {
	return len(group.SubgroupMasks)
}

func (group *Group) NumClasses() int {
	return len(group.ConjugacyClasses)
}

// combinationTable combines every pair of subgroups and looks the result up among the subgroups. Pairs whose combination is not a subgroup are set to NoSubgroup
func combinationTable(subgroups []*bitset.BitSet, combine func(*bitset.BitSet, *bitset.BitSet)) [][]int {
	table := make([][]int, len(subgroups))
	for i := range table {
		table[i] = make([]int, len(subgroups))
	}

	for i := range subgroups {
		for j := i; j < len(subgroups); j++ {
			combined := subgroups[i].Clone()
			combine(combined, subgroups[j])

			// IndexFunc yields -1 (NoSubgroup) when nothing matches
			index := slices.IndexFunc(subgroups, func(subgroup *bitset.BitSet) bool { return subgroup.Equal(combined) })
			table[i][j] = index
			table[j][i] = index
		}
	}
	return table
}

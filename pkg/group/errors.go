package group

import "github.com/pkg/errors"

// NoSubgroup marks a union table entry whose union is not itself a subgroup
const NoSubgroup = -1

var (
	ErrInvalidGroup         = errors.New("invalid group")
	ErrIntersectionNotFound = errors.New("subgroup intersection is not a subgroup")
	ErrInvalidPermutation   = errors.New("invalid permutation")
)

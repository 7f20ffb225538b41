package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
	"github.com/limaJavier/quasiorder/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOrder(t *testing.T, directory, name, bitString string) {
	t.Helper()
	order, err := bitmatrix.FromString(bitString)
	require.NoError(t, err)
	serialized, err := output.MarshalOrder(order)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(directory, name), serialized, 0644))
}

func TestCheckDirectory(t *testing.T) {
	t.Run("Lattices", func(t *testing.T) {
		//** Arrange
		directory := t.TempDir()
		writeOrder(t, directory, "group-6-10.json", "100000"+"110000"+"101000"+"111100"+"110010"+"111111")
		writeOrder(t, directory, "group-6-2.json", "10000"+"11000"+"10100"+"10010"+"11111")
		writeOrder(t, directory, "antichain-2-1.json", "10"+"01")
		require.NoError(t, os.WriteFile(filepath.Join(directory, "notes.txt"), []byte("skipped"), 0644))
		require.NoError(t, os.Mkdir(filepath.Join(directory, "nested.json"), 0755))

		//** Act
		lines, err := checkDirectory(directory)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, []string{
			fmt.Sprintf("%-30s\t:\t", "antichain-2-1.json") + "Lattice: false\t\t {0, 1, -, -}",
			fmt.Sprintf("%-30s\t:\t", "group-6-2.json") + "Modular: true\tDistributive: false" + fmt.Sprintf("%-50s", "\t\tNot-distributive: {1, 2, 3, 0, 0, 4}"),
			fmt.Sprintf("%-30s\t:\t", "group-6-10.json") + "Modular: true\tDistributive: true",
		}, lines)
	})

	t.Run("Malformed order", func(t *testing.T) {
		directory := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(directory, "broken.json"), []byte("{"), 0644))

		_, err := checkDirectory(directory)
		assert.Error(t, err)
	})

	t.Run("Missing directory", func(t *testing.T) {
		_, err := checkDirectory(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})
}

func TestCompareFileNames(t *testing.T) {
	//** Arrange
	names := []string{"group-12-1.json", "group-2-10.json", "group-2-2.json", "group-2-2-faithful.json", "abelian-4-1.json"}

	//** Act
	slices.SortFunc(names, compareFileNames)

	//** Assert
	assert.Equal(t, []string{"abelian-4-1.json", "group-2-2.json", "group-2-2-faithful.json", "group-2-10.json", "group-12-1.json"}, names)
}

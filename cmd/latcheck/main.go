package main

import (
	"cmp"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/limaJavier/quasiorder/pkg/lattice"
	"github.com/limaJavier/quasiorder/pkg/output"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

const orderSuffix = ".json"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v directory\n\n", path.Base(os.Args[0]))
		fmt.Fprintln(os.Stderr, "Every \"*.json\" file in the directory is read as a serialized order and checked for modularity and distributivity.")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		log.Fatalf("exactly one directory must be specified: %v", flag.Args())
	}

	lines, err := checkDirectory(flag.Arg(0))
	if err != nil {
		log.Fatalf("cannot check lattices: %v", err)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}

func checkDirectory(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read directory %v", directory)
	}

	names := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return entry.Name(), !entry.IsDir() && strings.HasSuffix(entry.Name(), orderSuffix)
	})
	slices.SortFunc(names, compareFileNames)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		line, err := checkFile(filepath.Join(directory, name))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// checkFile reports the modular and distributive laws of the order stored in file, or why it is not a lattice
func checkFile(file string) (string, error) {
	order, err := output.OrderFromJson(file)
	if err != nil {
		return "", err
	}
	prefix := fmt.Sprintf("%-30s\t:\t", filepath.Base(file))
	names := output.IndexNames(order.Order())

	if check := lattice.IsALattice(order); !check.Holds {
		return prefix + lattice.LatticeMessage(check, names), nil
	}
	engine, err := lattice.NewEngine(order)
	if err != nil {
		return "", errors.Wrapf(err, "cannot check %v", file)
	}
	return prefix + lattice.ModDistMessage(engine.IsModular(), engine.IsDistributive(), names), nil
}

// compareFileNames orders names like "group-12-3.json" by their dash separated fields, numerically where both fields are numbers
func compareFileNames(a, b string) int {
	fieldsA := strings.Split(strings.TrimSuffix(a, orderSuffix), "-")
	fieldsB := strings.Split(strings.TrimSuffix(b, orderSuffix), "-")

	for i := range min(len(fieldsA), len(fieldsB)) {
		numberA, errA := strconv.Atoi(fieldsA[i])
		numberB, errB := strconv.Atoi(fieldsB[i])

		var comparison int
		if errA == nil && errB == nil {
			comparison = cmp.Compare(numberA, numberB)
		} else {
			comparison = strings.Compare(fieldsA[i], fieldsB[i])
		}
		if comparison != 0 {
			return comparison
		}
	}
	return cmp.Or(cmp.Compare(len(fieldsA), len(fieldsB)), strings.Compare(a, b))
}

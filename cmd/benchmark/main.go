package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/quasiorder/pkg/group"
	"github.com/limaJavier/quasiorder/pkg/lattice"
	"github.com/limaJavier/quasiorder/pkg/relation"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

const (
	defaultGroupDirectory         = "../../test/groups/"
	defaultResultFile             = "benchmark_results.csv"
	MB                    float32 = 1024 * 1024
)

var (
	closureModes  = []relation.ClosureMode{relation.ClosureBoth, relation.ClosureIntersection, relation.ClosureNone}
	groupSuffixes = []string{".in", ".json"}
)

type GroupMetadata struct {
	Name      string
	Elements  int
	Subgroups int
	Classes   int
	Sorted    bool
}

type BenchmarkResult struct {
	Group        GroupMetadata
	Closure      relation.ClosureMode
	Investigated int
	Unique       int
	Lattice      bool
	Duration     int64 // Milliseconds
	Memory       float32
}

func main() {
	directoryPtr := flag.String("dir", defaultGroupDirectory, "Directory holding the group descriptors (\"*.in\" or \"*.json\")")
	outPtr := flag.String("out", defaultResultFile, "Path to the CSV file where the results will be written")
	sortPtr := flag.BoolP("sort", "s", false, "Sort the group elements")
	flag.Parse()

	groups := getGroups(*directoryPtr, *sortPtr)
	results := make([]BenchmarkResult, 0, len(groups)*len(closureModes))

	for _, g := range groups {
		for _, closure := range closureModes {
			log.Infof("Benchmarking group \"%v\" with closure \"%v\"", g.Name, closure)
			result, err := measure(g, closure)
			if err != nil {
				log.Fatalf("an error occurred while benchmarking group \"%v\" with closure \"%v\": %v", g.Name, closure, err)
			}
			results = append(results, result)
		}
	}

	file, err := os.Create(*outPtr)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()
	toCsv(file, results)
}

// getGroups lists the descriptors of directory sorted by name. Files that do not hold a group are skipped
func getGroups(directory string, sorted bool) []GroupMetadata {
	files, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	groups := make([]GroupMetadata, 0)
	for _, file := range files {
		if file.IsDir() || !lo.SomeBy(groupSuffixes, func(suffix string) bool { return strings.HasSuffix(file.Name(), suffix) }) {
			continue
		}

		filename := filepath.Join(directory, file.Name())
		g, err := group.GroupFromJson(filename, sorted)
		if err != nil {
			log.Warnf("skipping \"%v\": %v", filename, err)
			continue
		}

		groups = append(groups, GroupMetadata{
			Name:      filename,
			Elements:  g.NumElements(),
			Subgroups: g.NumSubgroups(),
			Classes:   g.NumClasses(),
			Sorted:    sorted,
		})
	}

	slices.SortFunc(groups, func(a, b GroupMetadata) int { return strings.Compare(a.Name, b.Name) })
	return groups
}

// measure times the enumeration, the overall order and the lattice check of a group
func measure(metadata GroupMetadata, closure relation.ClosureMode) (BenchmarkResult, error) {
	g, err := group.GroupFromJson(metadata.Name, metadata.Sorted)
	if err != nil {
		return BenchmarkResult{}, err
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()

	set, stats, err := relation.NewEnumerator(relation.Options{Closure: closure}).Enumerate(g)
	if err != nil {
		return BenchmarkResult{}, err
	}
	set.Sort()
	check := lattice.IsALattice(relation.OverallOrder(set.Relations()))

	duration := time.Since(start)
	runtime.ReadMemStats(&after)

	return BenchmarkResult{
		Group:        metadata,
		Closure:      closure,
		Investigated: stats.Investigated,
		Unique:       stats.Unique,
		Lattice:      check.Holds,
		Duration:     duration.Milliseconds(),
		Memory:       float32(after.TotalAlloc-before.TotalAlloc) / MB,
	}, nil
}

func toCsv(file *os.File, results []BenchmarkResult) {
	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header()); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}
	for _, result := range results {
		if err := writer.Write(record(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func header() []string {
	return []string{"Group", "Sorted", "Elements", "Subgroups", "Classes", "Closure", "Investigated", "Unique", "Lattice", "Duration(ms)", "Allocated(MB)"}
}

func record(result BenchmarkResult) []string {
	return []string{
		result.Group.Name,
		fmt.Sprintf("%v", result.Group.Sorted),
		fmt.Sprintf("%d", result.Group.Elements),
		fmt.Sprintf("%d", result.Group.Subgroups),
		fmt.Sprintf("%d", result.Group.Classes),
		string(result.Closure),
		fmt.Sprintf("%d", result.Investigated),
		fmt.Sprintf("%d", result.Unique),
		fmt.Sprintf("%v", result.Lattice),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%.1f", result.Memory),
	}
}

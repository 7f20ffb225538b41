package main

import (
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/limaJavier/quasiorder/pkg/config"
	"github.com/limaJavier/quasiorder/pkg/group"
	"github.com/limaJavier/quasiorder/pkg/output"
	"github.com/limaJavier/quasiorder/pkg/relation"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
)

const (
	configFileName = "quasiorder.yaml"
	inputSuffix    = ".in"
)

var (
	holdsColor  = color.New(color.FgGreen)
	failsColor  = color.New(color.FgRed)
	headerColor = color.New(color.FgCyan, color.Bold)
)

func main() {
	setConfigPath()
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// Define arguments
	flag.Usage = usage
	sortPtr := flag.BoolP("sort", "s", false, "Sort the group elements by length, then lexicographically")
	allGraphsPtr := flag.BoolP("all-graphs", "o", false, "Write a graph file for every quasi-order (\"<title>.g<N>.lat\")")
	thresholdPtr := flag.BoolP("threshold", "t", false, "Do not write lattices of too many quasi-orders (see thresholdSize in the config file)")
	faithfulPtr := flag.BoolP("faithful", "f", false, "Only include faithful quasi-orders")
	normalPtr := flag.BoolP("normal", "n", false, "Only include normal quasi-orders")
	groupedNamesPtr := flag.BoolP("grouped-names", "g", false, "Name the automorphism classes of the lattice views after all of their members")
	closurePtr := flag.String("closure", string(relation.ClosureBoth), "Closure required from the subgroup families. Allowed values are: \"both\" (intersection and union), \"intersection\" and \"none\"")
	configPtr := flag.String("config", "", "Path to the config file; if empty, \""+configFileName+"\" next to the executable is used when present")
	outDirPtr := flag.String("out-dir", ".", "Directory where the output files will be written")
	verbosePtr := flag.BoolP("verbose", "v", false, "Log the enumeration progress")
	flag.Parse()

	// Validate arguments
	if flag.NArg() != 1 {
		flag.Usage()
		log.Fatalf("exactly one title must be specified: %v", flag.Args())
	}
	title := strings.TrimSuffix(flag.Arg(0), inputSuffix)

	configPath := config.ConfigPath
	if *configPtr != "" {
		configPath = *configPtr
	}
	options, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	//** Flags override the config file
	options.Sort = options.Sort || *sortPtr
	options.AllGraphs = options.AllGraphs || *allGraphsPtr
	options.Threshold = options.Threshold || *thresholdPtr
	options.FaithfulOnly = options.FaithfulOnly || *faithfulPtr
	options.NormalOnly = options.NormalOnly || *normalPtr
	options.GroupedNames = options.GroupedNames || *groupedNamesPtr
	options.Verbose = options.Verbose || *verbosePtr
	if flag.CommandLine.Changed("closure") {
		options.Closure = relation.ClosureMode(strings.ToLower(*closurePtr))
	}
	if flag.CommandLine.Changed("out-dir") {
		options.OutDir = *outDirPtr
	}
	if err := options.Validate(); err != nil {
		log.Fatalf("invalid options: %v", err)
	}
	if options.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	// Extract input
	g, err := group.GroupFromJson(title+inputSuffix, options.Sort)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Enumerate relations
	enumerator := relation.NewEnumerator(relation.Options{
		Closure:      options.Closure,
		FaithfulOnly: options.FaithfulOnly,
		NormalOnly:   options.NormalOnly,
		Logger:       log.StandardLogger(),
	})
	set, stats, err := enumerator.Enumerate(g)
	if err != nil {
		log.Fatalf("an error occurred during the enumeration: %v", err)
	}

	// Write output
	report, err := output.NewWriter(afero.NewOsFs(), title, options, log.StandardLogger()).Write(g, set, stats)
	if err != nil {
		log.Fatalf("an error occurred while writing the output: %v", err)
	}

	for _, view := range report.Views {
		printView(view)
	}
	fmt.Fprintln(os.Stderr, stats.Summary())
}

func printView(view output.View) {
	analysis := view.Analysis
	headerColor.Fprintf(os.Stderr, "%v (%v quasi-orders)\n", view.Name, view.Lattice.Size())

	holds := []bool{
		analysis.Lattice.Holds,
		analysis.Modular.Holds && analysis.Distributive.Holds,
		!analysis.Diamond.Found,
		analysis.Semidistributive.Holds,
	}
	for i, message := range view.Messages() {
		if holds[i] {
			holdsColor.Fprintf(os.Stderr, "\t%v\n", message)
		} else {
			failsColor.Fprintf(os.Stderr, "\t%v\n", message)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %v [flags] title\n\n", path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "The title is the name of the group: \"<title>.in\" is shortened to \"<title>\".")
	fmt.Fprintln(os.Stderr, "The input file is assumed to be \"<title>.in\" and the raw output is placed in \"<title>.out\".")
	fmt.Fprintln(os.Stderr, "The lattice of all fix-set quasi-orders is placed in \"<title>.full.lat\" and \"<title>.json\",")
	fmt.Fprintln(os.Stderr, "and each lattice view in \"<title>.<view>.lat\".")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

// setConfigPath points the config package to the config file next to the executable, if any
func setConfigPath() {
	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("cannot determine executable path: %v", err)
	}
	execPath = path.Dir(execPath)

	files, err := os.ReadDir(execPath)
	if err != nil {
		log.Fatalf("cannot read executable's directory: %v", err)
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	if slices.Contains(fileNames, configFileName) {
		config.ConfigPath = execPath + "/" + configFileName
	}
}

package output

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/limaJavier/quasiorder/pkg/config"
	"github.com/limaJavier/quasiorder/pkg/group"
	"github.com/limaJavier/quasiorder/pkg/lattice"
	"github.com/limaJavier/quasiorder/pkg/relation"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const fileMode = 0644

// Report describes what a Write call produced
type Report struct {
	Skipped bool     // The lattice was too big to be written
	Views   []View   // Empty when Skipped
	Files   []string // Paths written, in order
}

type Writer struct {
	fs      afero.Fs
	prefix  string
	options config.Options
	logger  log.FieldLogger
}

// NewWriter writes every file as <options.OutDir>/<title>.<suffix>
func NewWriter(fs afero.Fs, title string, options config.Options, logger log.FieldLogger) *Writer {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Writer{
		fs:      fs,
		prefix:  filepath.Join(options.OutDir, title),
		options: options,
		logger:  logger.WithField("title", title),
	}
}

// Write sorts the relations and writes the raw report, the optional per-relation graphs, and unless the lattice is too big, the overall order and its views
func (writer *Writer) Write(g *group.Group, set *relation.Set, stats relation.Stats) (Report, error) {
	if err := writer.fs.MkdirAll(filepath.Dir(writer.prefix), 0755); err != nil {
		return Report{}, errors.Wrapf(err, "cannot create output directory for %v", writer.prefix)
	}

	set.Sort()
	relations := set.Relations()
	report := Report{Files: make([]string, 0)}
	var raw bytes.Buffer

	//** Families and relations
	for i := range relations {
		WriteFamilies(&raw, g, set.Families(i), i)
	}
	for i, rel := range relations {
		WriteRelation(&raw, rel.Matrix, g.ElementNames, i)
	}

	//** Graph of every relation
	if writer.options.AllGraphs {
		for i, rel := range relations {
			attributes := lattice.ColorAttributes(slices.Repeat([]string{rel.Color}, g.NumElements()))
			dot := Dot(rel.Matrix, g.ElementNames, attributes, nil)
			if err := writer.writeFile(&report, fmt.Sprintf("g%d.lat", i), []byte(dot)); err != nil {
				return Report{}, err
			}
		}
	}

	//** Lattice of relations
	if writer.options.SkipLattice(len(relations)) {
		writer.logger.Warnf("Skipped lattice: size=%d is too big", len(relations))
		report.Skipped = true
	} else if err := writer.writeLattice(&report, &raw, g, relations); err != nil {
		return Report{}, err
	}

	//** Summary
	fmt.Fprintf(&raw, "\n\n%s\n", stats.Summary())
	if len(report.Views) > 0 {
		fmt.Fprintln(&raw)
		WriteViewTable(&raw, report.Views)
	}

	if err := writer.writeFile(&report, "out", raw.Bytes()); err != nil {
		return Report{}, err
	}
	return report, nil
}

func (writer *Writer) writeLattice(report *Report, raw *bytes.Buffer, g *group.Group, relations []relation.Relation) error {
	order := relation.OverallOrder(relations)
	names := IndexNames(len(relations))
	colors := lo.Map(relations, func(rel relation.Relation, _ int) string { return rel.Color })

	fmt.Fprint(raw, "\n\nLattice of all fix set quasi orders: \n")
	WriteRelation(raw, order, names, 0)

	full := Dot(order, names, lattice.ColorAttributes(colors), nil)
	if err := writer.writeFile(report, "full.lat", []byte(full)); err != nil {
		return err
	}

	serialized, err := MarshalOrder(order)
	if err != nil {
		return errors.Wrap(err, "cannot serialize overall order")
	}
	if err := writer.writeFile(report, "json", serialized); err != nil {
		return err
	}

	//** Views
	base := lattice.New(order, names, colors, relation.PartitionBy(relations, g.Automorphisms))
	for _, name := range writer.options.Views {
		view := NewView(name, base, relations)
		writer.logger.WithField("view", name).Debugf("Lattice view of size %v", view.Lattice.Size())
		if err := writer.writeFile(report, name+".lat", []byte(view.Dot(writer.options.NameSelector()))); err != nil {
			return err
		}
		report.Views = append(report.Views, view)
	}
	return nil
}

func (writer *Writer) writeFile(report *Report, suffix string, content []byte) error {
	path := writer.prefix + "." + suffix
	if err := afero.WriteFile(writer.fs, path, content, fileMode); err != nil {
		return errors.Wrapf(err, "cannot write %v", path)
	}
	report.Files = append(report.Files, path)
	return nil
}

package output

import (
	"fmt"
	"io"

	"github.com/limaJavier/quasiorder/pkg/config"
	"github.com/limaJavier/quasiorder/pkg/lattice"
	"github.com/limaJavier/quasiorder/pkg/relation"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
)

var viewFilters = map[string]struct{ faithfulOnly, normalOnly bool }{
	config.ViewAll:            {false, false},
	config.ViewFaithful:       {true, false},
	config.ViewNormal:         {false, true},
	config.ViewFaithfulNormal: {true, true},
}

// View is the lattice of relations restricted to the faithful and/or normal ones
type View struct {
	Name     string
	Lattice  *lattice.Lattice
	Analysis lattice.Analysis
}

func NewView(name string, base *lattice.Lattice, relations []relation.Relation) View {
	filter, ok := viewFilters[name]
	if !ok {
		log.Panicf("unknown lattice view: %v", name)
	}

	filtered := base.FilterBy(lattice.IncludeBy(relations, filter.faithfulOnly, filter.normalOnly))
	return View{
		Name:     name,
		Lattice:  filtered,
		Analysis: filtered.Analyze(),
	}
}

func (view View) Messages() []string {
	return view.Analysis.Messages(view.Lattice.Names)
}

// Dot draws the view with every automorphism class named by the selector
func (view View) Dot(selector lattice.NameSelector) string {
	collapsed := view.Lattice.CollapseBy(selector)
	return Dot(collapsed.Order, collapsed.Names, view.Analysis.NodeAttributes, collapsed.Partition)
}

// WriteViewTable summarises the checks of every view. Law columns are left blank for views that are not lattices
func WriteViewTable(writer io.Writer, views []View) {
	table := tablewriter.NewWriter(writer)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"View", "Size", "Lattice", "Modular", "Distributive", "Diamond", "Meet-semidistributive"})

	for _, view := range views {
		analysis := view.Analysis
		row := []string{view.Name, fmt.Sprint(view.Lattice.Size()), fmt.Sprint(analysis.Lattice.Holds), "", "", "", ""}
		if analysis.Lattice.Holds {
			row[3] = fmt.Sprint(analysis.Modular.Holds)
			row[4] = fmt.Sprint(analysis.Distributive.Holds)
			row[5] = fmt.Sprint(analysis.Diamond.Found)
			row[6] = fmt.Sprint(analysis.Semidistributive.Holds)
		}
		table.Append(row)
	}
	table.Render()
}

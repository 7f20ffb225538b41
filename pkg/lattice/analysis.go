package lattice

import (
	log "github.com/sirupsen/logrus"
)

// Analysis gathers every check run over a lattice. Law checks are only meaningful when Lattice holds
type Analysis struct {
	Lattice          LatticeCheck
	Modular          ModularCheck
	Distributive     DistributiveCheck
	Diamond          DiamondCheck
	Semidistributive SemidistributiveCheck
	NodeAttributes   []string
}

func (lattice *Lattice) Analyze() Analysis {
	analysis := Analysis{
		Lattice:        IsALattice(lattice.Order),
		NodeAttributes: ColorAttributes(lattice.Colors),
	}
	if !analysis.Lattice.Holds {
		return analysis
	}

	engine, err := NewEngine(lattice.Order)
	if err != nil {
		log.Warnf("Cannot build join and meet tables: %v", err)
		analysis.Lattice = LatticeCheck{Witness: LatticeWitness{NoWitness, NoWitness, NoWitness, NoWitness}}
		return analysis
	}

	analysis.Modular = engine.IsModular()
	analysis.Distributive = engine.IsDistributive()
	analysis.Diamond = engine.FindDiamond()
	analysis.Semidistributive = engine.IsMeetSemidistributive()
	analysis.NodeAttributes = NodeAttributes(lattice.Colors, engine.JoinReducibles(), engine.MeetReducibles())
	return analysis
}

// Messages renders the lattice check followed, for lattices, by the law checks
func (analysis Analysis) Messages(names []string) []string {
	messages := []string{LatticeMessage(analysis.Lattice, names)}
	if analysis.Lattice.Holds {
		messages = append(messages,
			ModDistMessage(analysis.Modular, analysis.Distributive, names),
			DiamondMessage(analysis.Diamond, names),
			SemidistributiveMessage(analysis.Semidistributive, names),
		)
	}
	return messages
}

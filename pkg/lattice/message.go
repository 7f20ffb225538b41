package lattice

import (
	"fmt"
	"strings"
)

// ModDistMessage summarises the modular and distributive laws, naming the witnesses of any violation
func ModDistMessage(modular ModularCheck, distributive DistributiveCheck, names []string) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Modular: %t\tDistributive: %t", modular.Holds, distributive.Holds)

	if !modular.Holds {
		w := modular.Witness
		fmt.Fprintf(&builder, "%-50s", fmt.Sprintf("\t\tNot-modular: {%s, %s, %s, %s, %s}",
			nameOf(names, w.X), nameOf(names, w.A), nameOf(names, w.B), nameOf(names, w.XJoinA), nameOf(names, w.AMeetB)))
	}
	if !distributive.Holds {
		w := distributive.Witness
		fmt.Fprintf(&builder, "%-50s", fmt.Sprintf("\t\tNot-distributive: {%s, %s, %s, %s, %s, %s}",
			nameOf(names, w.X), nameOf(names, w.Y), nameOf(names, w.Z), nameOf(names, w.XJoinY), nameOf(names, w.XJoinZ), nameOf(names, w.YMeetZ)))
	}
	return builder.String()
}

func LatticeMessage(check LatticeCheck, names []string) string {
	message := fmt.Sprintf("Lattice: %t", check.Holds)
	if !check.Holds {
		w := check.Witness
		message += fmt.Sprintf("\t\t {%s, %s, %s, %s}", nameOf(names, w.I), nameOf(names, w.J), nameOf(names, w.K), nameOf(names, w.M))
	}
	return message
}

func DiamondMessage(diamond DiamondCheck, names []string) string {
	message := fmt.Sprintf("Diamond: %t", diamond.Found)
	if diamond.Found {
		w := diamond.Witness
		message += fmt.Sprintf("\t\t {%s, %s, %s, %s, %s}", nameOf(names, w.X), nameOf(names, w.Y), nameOf(names, w.Z), nameOf(names, w.Join), nameOf(names, w.Meet))
	}
	return message
}

func SemidistributiveMessage(check SemidistributiveCheck, names []string) string {
	message := fmt.Sprintf("Meet-semidistributive: %t", check.Holds)
	if !check.Holds {
		w := check.Witness
		message += fmt.Sprintf("\t\t {%s, %s, %s, %s, %s, %s}", nameOf(names, w.X), nameOf(names, w.Y), nameOf(names, w.Z), nameOf(names, w.Meet), nameOf(names, w.YJoinZ), nameOf(names, w.Violating))
	}
	return message
}

func nameOf(names []string, index int) string {
	if index < 0 || index >= len(names) {
		return "-"
	}
	return names[index]
}

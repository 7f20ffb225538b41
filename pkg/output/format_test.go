package output

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
	"github.com/limaJavier/quasiorder/pkg/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	symmetric3File = "testdata/s3.json"
	dotHeader      = "strict digraph {\nedge [ arrowhead=\"none\", arrowtail=\"none\"]\n"
)

func mustParse(t *testing.T, bitString string) *bitmatrix.Matrix {
	t.Helper()
	matrix, err := bitmatrix.FromString(bitString)
	require.NoError(t, err)
	return matrix
}

// edges quotes both ends of every "from->to" edge
func edges(unquoted ...string) string {
	var builder strings.Builder
	for _, edge := range unquoted {
		from, to, _ := strings.Cut(edge, "->")
		fmt.Fprintf(&builder, "%q->%q\n", from, to)
	}
	return builder.String()
}

func nodes(names []string, attribute string) string {
	var builder strings.Builder
	for _, name := range names {
		fmt.Fprintf(&builder, "%q [%s]\n", name, attribute)
	}
	return builder.String()
}

func TestDot(t *testing.T) {
	const attribute = `fillcolor="gray"`

	scenarios := []struct {
		title    string
		names    []string
		relation string
		edges    []string
	}{
		{"S2 order", []string{"()", "(1,2)"}, "1011", []string{"()->()", "()->(1,2)", "(1,2)->(1,2)"}},
		{"S2 complete", []string{"()", "(1,2)"}, "1111", []string{"()->()", "(1,2)->()", "()->(1,2)", "(1,2)->(1,2)"}},
		{
			"Z4 all but identity",
			[]string{"0", "1", "2", "3"},
			"1000" + "1111" + "1111" + "1111",
			[]string{"0->0", "0->1", "1->1", "2->1", "3->1", "0->2", "1->2", "2->2", "3->2", "0->3", "1->3", "2->3", "3->3"},
		},
		{
			"Z4 subgroup of order 2",
			[]string{"0", "1", "2", "3"},
			"1010" + "1111" + "1010" + "1111",
			[]string{"0->0", "2->0", "0->1", "1->1", "2->1", "3->1", "0->2", "2->2", "0->3", "1->3", "2->3", "3->3"},
		},
		{
			"Z4 chain",
			[]string{"0", "1", "2", "3"},
			"1000" + "1111" + "1010" + "1111",
			[]string{"0->0", "0->1", "1->1", "2->1", "3->1", "0->2", "2->2", "0->3", "1->3", "2->3", "3->3"},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.title, func(t *testing.T) {
			//** Arrange
			relation := mustParse(t, scenario.relation)
			attributes := make([]string, len(scenario.names))
			for i := range attributes {
				attributes[i] = attribute
			}

			//** Act
			dot := Dot(relation, scenario.names, attributes, nil)

			//** Assert
			assert.Equal(t, dotHeader+nodes(scenario.names, attribute)+edges(scenario.edges...)+"}\n", dot)
		})
	}

	t.Run("Clusters", func(t *testing.T) {
		//** Arrange
		order := mustParse(t, "100"+"010"+"001")
		names := []string{"a", "b", "c"}
		attributes := []string{"", "", ""}

		//** Act
		dot := Dot(order, names, attributes, [][]int{{0}, {1, 2}})

		//** Assert
		expected := dotHeader + nodes(names, "") +
			"subgraph cluster_0 { \"b\" \"c\"; style=filled; color=lightgrey }\n" +
			edges("a->a", "b->b", "c->c") + "}\n"
		assert.Equal(t, expected, dot)
	})
}

func TestWriteRelation(t *testing.T) {
	//** Arrange
	var buffer bytes.Buffer
	relation := mustParse(t, "1011")

	//** Act
	WriteRelation(&buffer, relation, []string{"()", "(1,2)"}, 3)

	//** Assert
	expected := "\n3>>>\n" +
		"()" + strings.Repeat(" ", 18) + " \t:x   \n" +
		"(1,2)" + strings.Repeat(" ", 15) + " \t:x x \n" +
		"\n"
	assert.Equal(t, expected, buffer.String())
}

func TestWriteFamilies(t *testing.T) {
	//** Arrange
	g, err := group.GroupFromJson(symmetric3File, false)
	require.NoError(t, err)
	families := []*bitset.BitSet{
		bitmatrix.VectorFromString("011101"),
		bitmatrix.VectorFromString("100001"),
	}
	var buffer bytes.Buffer

	//** Act
	WriteFamilies(&buffer, g, families, 4)

	//** Assert
	whole := "{() (1,2) (1,3) (2,3) (1,2,3) (1,3,2)} "
	expected := "\n4>>>\n" +
		"{() (1,2)} {() (1,3)} {() (2,3)} " + whole + "\n" +
		"{()} " + whole + "\n" +
		"\n"
	assert.Equal(t, expected, buffer.String())
}

func TestIndexNames(t *testing.T) {
	assert.Equal(t, []string{"0", "1", "2"}, IndexNames(3))
	assert.Empty(t, IndexNames(0))
}

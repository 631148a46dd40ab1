package graph_test

import (
	"testing"

	"github.com/CodMac/go-treesitter-uml/graph"
	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func class(t *testing.T, qn, pkg string) *model.DomainClass {
	t.Helper()
	dc, err := model.NewDomainClass(&handle.Type{QualifiedName: qn, Package: pkg})
	require.NoError(t, err)
	return dc
}

func TestAssemble_Dedupe(t *testing.T) {
	a, b := class(t, "p.A", "p"), class(t, "p.B", "p")
	set := model.NewClassSet(a, b)

	first := []*model.Edge{
		model.NewEdge(a.WithDescription("b"), b, model.Composition),
		nil,
	}
	second := []*model.Edge{
		model.NewEdge(a.WithDescription("other"), b, model.Composition),
		model.NewEdge(a, b, model.Extends),
	}

	g := graph.Assemble(set, first, second)
	require.Len(t, g.Edges(), 2)
	// 首次出现的边保留，描述也随之保留
	assert.Equal(t, "b", g.Edges()[0].Source().Description())
	assert.Equal(t, model.Extends, g.Edges()[1].Type())

	assert.Len(t, g.HierarchyEdges(), 1)
	assert.Len(t, g.RelationEdges(), 1)
}

func TestGraph_Packages(t *testing.T) {
	set := model.NewClassSet(
		class(t, "q.X", "q"),
		class(t, "p.A", "p"),
		class(t, "q.Y", "q"),
		class(t, "Root", ""),
	)
	g := graph.Assemble(set)

	pkgs := g.Packages()
	require.Len(t, pkgs, 3)
	assert.Equal(t, "q", pkgs[0].Name)
	assert.Len(t, pkgs[0].Classes, 2)
	assert.Equal(t, "p", pkgs[1].Name)
	assert.Equal(t, "", pkgs[2].Name)

	assert.True(t, g.Contains("q.Y"))
	assert.False(t, g.Contains("q.Z"))
	assert.Empty(t, g.Edges())
}

func TestAssemble_NilClassSet(t *testing.T) {
	g := graph.Assemble(nil)
	assert.Empty(t, g.Classes())
	assert.Empty(t, g.Packages())
}

package output_test

import (
	"testing"

	"github.com/CodMac/go-treesitter-uml/graph"
	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/CodMac/go-treesitter-uml/scanner"
	"github.com/stretchr/testify/require"
)

// buildGraph 用默认扫描器构建图
func buildGraph(t *testing.T, types ...*handle.Type) *graph.Graph {
	t.Helper()
	set := model.NewClassSet()
	for _, h := range types {
		dc, err := model.NewDomainClass(h)
		require.NoError(t, err)
		set.Add(dc)
	}
	var lists [][]*model.Edge
	for _, s := range scanner.Defaults() {
		lists = append(lists, s.Scan(set))
	}
	return graph.Assemble(set, lists...)
}

func sampleTypes() []*handle.Type {
	return []*handle.Type{
		{
			QualifiedName: "p.A",
			Package:       "p",
			Mods:          handle.Public | handle.Abstract,
			FieldDecls: []handle.Field{
				{Name: "name", Modifiers: handle.Private, Type: handle.Ref("java.lang.String")},
			},
			CtorDecls: []handle.Executable{{Name: "A", Modifiers: handle.Public}},
			MethodDecls: []handle.Executable{
				{Name: "describe", Modifiers: handle.Public | handle.Abstract},
			},
		},
		{
			QualifiedName: "p.B",
			Package:       "p",
			Kind:          handle.KindInterface,
			Mods:          handle.Public,
			MethodDecls: []handle.Executable{
				{Name: "run", Modifiers: handle.Public | handle.Abstract},
			},
		},
		{
			QualifiedName: "p.C",
			Package:       "p",
			Mods:          handle.Public,
			Super:         "p.A",
			Ifaces:        []string{"p.B"},
			FieldDecls: []handle.Field{
				{Name: "part", Modifiers: handle.Private, Type: handle.Ref("p.Part"), Ownership: handle.OwnershipOwned},
				{Name: "count", Modifiers: handle.Protected | handle.Static, Type: handle.Ref("int")},
			},
			CtorDecls: []handle.Executable{{
				Name:       "C",
				Modifiers:  handle.Public,
				Parameters: []handle.Parameter{{Name: "part", Type: handle.Ref("p.Part")}},
			}},
		},
		{QualifiedName: "p.Part", Package: "p"},
		{
			QualifiedName: "q.Color",
			Package:       "q",
			Kind:          handle.KindEnum,
			Mods:          handle.Public,
			Constants:     []string{"RED", "GREEN"},
		},
	}
}

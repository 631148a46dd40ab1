package model_test

import (
	"testing"

	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdge(t *testing.T) {
	a, err := model.NewDomainClass(&handle.Type{QualifiedName: "p.A", Package: "p"})
	require.NoError(t, err)
	b, err := model.NewDomainClass(&handle.Type{QualifiedName: "p.B", Package: "p"})
	require.NoError(t, err)

	e := model.NewEdge(a.WithDescription("b"), b, model.Composition)
	assert.Equal(t, "p.A|p.B|COMPOSITION", e.Key())
	assert.Equal(t, "b", e.Source().Description())
	assert.False(t, e.IsSelfReference())
	assert.False(t, e.Type().IsHierarchy())

	self := model.NewEdge(a, a, model.Aggregation)
	assert.True(t, self.IsSelfReference())

	assert.True(t, model.Extends.IsHierarchy())
	assert.True(t, model.StaticInnerClass.IsNesting())
	assert.Equal(t, "STATIC_INNER_CLASS", model.StaticInnerClass.String())

	text, err := model.Aggregation.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "AGGREGATION", string(text))
}

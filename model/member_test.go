package model_test

import (
	"testing"

	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibilityOf(t *testing.T) {
	tests := []struct {
		mods handle.Modifier
		want model.Visibility
		sym  string
	}{
		{handle.Public, model.Public, "+"},
		{handle.Protected, model.Protected, "#"},
		{handle.Private, model.Private, "-"},
		{0, model.Default, "~"},
		{handle.Static | handle.Final, model.Default, "~"},
		// 非法组合按优先级取第一个
		{handle.Public | handle.Private, model.Public, "+"},
		{handle.Protected | handle.Private, model.Protected, "#"},
	}
	for _, tt := range tests {
		got := model.VisibilityOf(tt.mods)
		assert.Equal(t, tt.want, got, tt.mods.String())
		assert.Equal(t, tt.sym, got.Symbol())
	}
}

func TestCutPackages(t *testing.T) {
	assert.Equal(t, "List<Part>", model.CutPackages("java.util.List<com.x.Part>"))
	assert.Equal(t, "Map<String, Part[]>", model.CutPackages("java.util.Map<java.lang.String, com.x.Part[]>"))
	assert.Equal(t, "int", model.CutPackages("int"))
	assert.Equal(t, "Inner", model.CutPackages("com.x.Outer.Inner"))
}

func TestDomainExecutable_UMLName(t *testing.T) {
	h := &handle.Type{
		QualifiedName: "com.x.Service",
		Package:       "com.x",
		MethodDecls: []handle.Executable{
			{
				Name:      "transfer",
				Modifiers: handle.Public,
				Parameters: []handle.Parameter{
					{Name: "from", Type: handle.ParseTypeRef("com.x.Account")},
					{Name: "amounts", Type: handle.ParseTypeRef("java.util.List<java.math.BigDecimal>")},
				},
			},
			{
				Name: "legacy",
				Parameters: []handle.Parameter{
					{Name: "a", Type: handle.Ref("int")},
					{Type: handle.Ref("java.lang.String")},
				},
			},
			{Name: "noop"},
		},
	}
	dc, err := model.NewDomainClass(h)
	require.NoError(t, err)
	methods := dc.Methods()
	require.Len(t, methods, 3)

	assert.Equal(t, "transfer(from : Account, amounts : List<BigDecimal>)", methods[0].UMLName(true))
	assert.Equal(t, "transfer(Account, List<BigDecimal>)", methods[0].UMLName(false))

	// 任一参数名不可恢复时只显示类型
	assert.False(t, methods[1].ParameterNamesKnown())
	assert.Equal(t, "legacy(int, String)", methods[1].UMLName(true))

	assert.Equal(t, "noop()", methods[2].UMLName(true))
	assert.Equal(t, model.Default, methods[2].Visibility())
}

func TestDomainField_UMLName(t *testing.T) {
	dc, err := model.NewDomainClass(&handle.Type{
		QualifiedName: "com.x.Owner",
		Package:       "com.x",
		FieldDecls: []handle.Field{
			{Name: "parts", Modifiers: handle.Private | handle.Static, Type: handle.ParseTypeRef("java.util.Set<com.x.Part>")},
		},
	})
	require.NoError(t, err)
	f := dc.Fields()[0]
	assert.Equal(t, "parts : Set<Part>", f.UMLName())
	assert.True(t, f.IsStatic())
	assert.Equal(t, model.Private, f.Visibility())
}

package java_test

import (
	"path/filepath"
	"testing"

	"github.com/CodMac/go-treesitter-uml/core"
	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/CodMac/go-treesitter-uml/parser"
	"github.com/CodMac/go-treesitter-uml/x/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestFilePath(parts ...string) string {
	currentDir, _ := filepath.Abs(".")
	return filepath.Join(append([]string{currentDir, "testdata"}, parts...)...)
}

func collectFile(t *testing.T, parts ...string) *core.FileContext {
	t.Helper()
	p, err := parser.NewParser(model.LangJava)
	require.NoError(t, err)
	t.Cleanup(p.Close)

	path := getTestFilePath(parts...)
	root, src, err := p.ParseFile(path)
	require.NoError(t, err)

	fc, err := java.NewJavaCollector().CollectDefinitions(root, path, src)
	require.NoError(t, err)
	return fc
}

func declByQN(t *testing.T, fc *core.FileContext, qn string) *java.TypeDecl {
	t.Helper()
	for _, d := range java.Declarations(fc.Payload) {
		if d.QualifiedName == qn {
			return d
		}
	}
	require.Failf(t, "declaration not found", "qn=%s", qn)
	return nil
}

func fieldByName(t *testing.T, d *java.TypeDecl, name string) *java.FieldDecl {
	t.Helper()
	for _, f := range d.Fields {
		if f.Name == name {
			return f
		}
	}
	require.Failf(t, "field not found", "%s.%s", d.QualifiedName, name)
	return nil
}

func methodNames(decls []*java.ExecutableDecl) []string {
	var names []string
	for _, m := range decls {
		names = append(names, m.Name)
	}
	return names
}

func TestJavaCollector_PackageAndImports(t *testing.T) {
	fc := collectFile(t, "com", "example", "shop", "Order.java")

	assert.Equal(t, "com.example.shop", fc.PackageName)

	require.Len(t, fc.Imports["List"], 1)
	assert.Equal(t, "java.util.List", fc.Imports["List"][0].RawImportPath)
	assert.False(t, fc.Imports["List"][0].IsWildcard)

	wildcards := fc.WildcardImports()
	require.Len(t, wildcards, 1)
	assert.Equal(t, "com.example.util.*", wildcards[0].RawImportPath)
	assert.True(t, wildcards[0].IsWildcard)
}

func TestJavaCollector_TypeDeclarations(t *testing.T) {
	fc := collectFile(t, "com", "example", "shop", "Order.java")

	order := declByQN(t, fc, "com.example.shop.Order")
	assert.Equal(t, handle.KindClass, order.Kind)
	assert.True(t, order.Modifiers.IsPublic())
	assert.Equal(t, "AbstractEntity", order.SuperClass)
	assert.Equal(t, []string{"Comparable<Order>", "Auditable"}, order.Interfaces)
	assert.Equal(t, 7, order.Location.StartLine)

	lineItem := declByQN(t, fc, "com.example.shop.Order.LineItem")
	assert.Equal(t, "com.example.shop.Order", lineItem.Enclosing)
	assert.True(t, lineItem.Modifiers.Has(handle.Public|handle.Static))
	require.Len(t, lineItem.Constructors, 1, "implicit default constructor")
	assert.True(t, lineItem.Constructors[0].Modifiers.IsPublic())

	cursor := declByQN(t, fc, "com.example.shop.Order.Cursor")
	assert.False(t, cursor.Modifiers.IsStatic())

	status := declByQN(t, fc, "com.example.shop.Order.Status")
	assert.Equal(t, handle.KindEnum, status.Kind)
	assert.True(t, status.Modifiers.IsStatic(), "nested enums are implicitly static")
	assert.Equal(t, []string{"NEW", "PAID"}, status.EnumConstants)
	require.Len(t, status.Constructors, 1, "implicit enum constructor")
	assert.Equal(t, "Status", status.Constructors[0].Name)
	assert.True(t, status.Constructors[0].Modifiers.IsPrivate())
	assert.Empty(t, status.Constructors[0].Params)

	anon := declByQN(t, fc, "com.example.shop.Order$1")
	assert.True(t, anon.Anonymous)
	assert.Equal(t, "Runnable", anon.SuperClass)
	assert.Empty(t, anon.Constructors)

	step := declByQN(t, fc, "com.example.shop.Order$2Step")
	assert.True(t, step.Local)
	assert.Equal(t, "Step", step.Name)

	// 只有具名成员类型进入符号表
	assert.Contains(t, fc.DefinitionsBySN, "Order")
	assert.Contains(t, fc.DefinitionsBySN, "LineItem")
	assert.NotContains(t, fc.DefinitionsBySN, "Step")
}

func TestJavaCollector_Members(t *testing.T) {
	fc := collectFile(t, "com", "example", "shop", "Order.java")
	order := declByQN(t, fc, "com.example.shop.Order")

	var names []string
	for _, f := range order.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"items", "customer", "shipping", "clock", "count", "tags"}, names)
	assert.Equal(t, "List<LineItem>", fieldByName(t, order, "items").TypeText)
	assert.True(t, fieldByName(t, order, "items").Modifiers.Has(handle.Private|handle.Final))
	assert.Equal(t, "String[]", fieldByName(t, order, "tags").TypeText)

	require.Len(t, order.Constructors, 1)
	ctor := order.Constructors[0]
	assert.Equal(t, "Order", ctor.Name)
	assert.Equal(t, []java.ParamDecl{{Name: "customer", TypeText: "Customer"}, {Name: "clock", TypeText: "Clock"}}, ctor.Params)

	assert.Equal(t, []string{"add", "find", "compareTo", "process"}, methodNames(order.Methods))
	find := order.Methods[1]
	assert.Equal(t, []string{"T"}, find.TypeParameters)
	assert.Equal(t, []java.ParamDecl{{Name: "type", TypeText: "Class<T>"}, {Name: "ids", TypeText: "String..."}}, find.Params)
}

func TestJavaCollector_Ownership(t *testing.T) {
	fc := collectFile(t, "com", "example", "shop", "Order.java")
	order := declByQN(t, fc, "com.example.shop.Order")

	tests := []struct {
		field string
		want  handle.Ownership
	}{
		{"items", handle.OwnershipOwned},       // 字段初始值 new
		{"customer", handle.OwnershipInjected}, // this.customer = customer
		{"shipping", handle.OwnershipOwned},    // shipping = new Address()
		{"clock", handle.OwnershipInjected},    // requireNonNull(clock)
		{"count", handle.OwnershipUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldByName(t, order, tt.field).Ownership)
		})
	}
}

func TestJavaCollector_OwnershipLocalScopes(t *testing.T) {
	fc := collectFile(t, "com", "example", "shop", "Warehouse.java")
	warehouse := declByQN(t, fc, "com.example.shop.Warehouse")

	tests := []struct {
		field string
		want  handle.Ownership
	}{
		{"address", handle.OwnershipInjected}, // 块内同名局部变量不影响块外赋值
		{"owner", handle.OwnershipInjected},   // 局部变量 owner 的 new 不算字段构造
		{"dock", handle.OwnershipInjected},    // 循环变量与 lambda 参数遮蔽字段
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldByName(t, warehouse, tt.field).Ownership)
		})
	}
}

func TestJavaCollector_InterfaceImplicitModifiers(t *testing.T) {
	fc := collectFile(t, "com", "example", "shop", "Entity.java")
	entity := declByQN(t, fc, "com.example.shop.Entity")

	assert.Equal(t, handle.KindInterface, entity.Kind)
	assert.True(t, fieldByName(t, entity, "PREFIX").Modifiers.Has(handle.Public|handle.Static|handle.Final))
	assert.Empty(t, entity.Constructors)

	require.Equal(t, []string{"getId", "isNew", "none"}, methodNames(entity.Methods))
	assert.True(t, entity.Methods[0].Modifiers.Has(handle.Public|handle.Abstract))
	assert.True(t, entity.Methods[1].Modifiers.IsPublic())
	assert.False(t, entity.Methods[1].Modifiers.IsAbstract(), "default methods have a body")
	assert.True(t, entity.Methods[2].Modifiers.Has(handle.Public|handle.Static))
	assert.False(t, entity.Methods[2].Modifiers.IsAbstract())
}

func TestJavaCollector_Record(t *testing.T) {
	fc := collectFile(t, "com", "example", "shop", "Customer.java")
	customer := declByQN(t, fc, "com.example.shop.Customer")

	assert.Equal(t, handle.KindRecord, customer.Kind)
	address := fieldByName(t, customer, "address")
	assert.True(t, address.Modifiers.Has(handle.Private|handle.Final))
	assert.Equal(t, handle.OwnershipInjected, address.Ownership)

	// 紧凑构造器即规范构造器，不再补充隐式构造器
	require.Len(t, customer.Constructors, 1)
	assert.Len(t, customer.Constructors[0].Params, 2)

	// name() 显式声明，address() 隐式生成
	assert.Equal(t, []string{"name", "address"}, methodNames(customer.Methods))
}

func TestJavaCollector_EnumWithConstantBody(t *testing.T) {
	fc := collectFile(t, "com", "example", "shop", "Priority.java")
	priority := declByQN(t, fc, "com.example.shop.Priority")

	assert.Equal(t, []string{"LOW", "HIGH"}, priority.EnumConstants)
	require.Len(t, priority.Constructors, 1)
	assert.True(t, priority.Constructors[0].Modifiers.IsPrivate(), "enum constructors are implicitly private")
	assert.Equal(t, handle.OwnershipUnknown, fieldByName(t, priority, "weight").Ownership)

	high := declByQN(t, fc, "com.example.shop.Priority$1")
	assert.True(t, high.Anonymous)
	assert.Equal(t, "Priority", high.SuperClass)
	assert.Equal(t, []string{"urgent"}, methodNames(high.Methods))
}

func TestJavaCollector_AnnotationType(t *testing.T) {
	fc := collectFile(t, "com", "example", "util", "Auditable.java")
	anno := declByQN(t, fc, "com.example.util.Auditable")

	assert.Equal(t, handle.KindAnnotation, anno.Kind)
	require.Equal(t, []string{"value", "level"}, methodNames(anno.Methods))
	for _, m := range anno.Methods {
		assert.True(t, m.Modifiers.Has(handle.Public|handle.Abstract), m.Name)
	}
}

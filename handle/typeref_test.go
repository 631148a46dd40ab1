package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeRef(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantRaw  string
		wantDims int
		wantArgs []string
	}{
		{"simple", "com.x.Part", "com.x.Part", 0, nil},
		{"primitive", "int", "int", 0, nil},
		{"array", "com.x.Part[]", "com.x.Part", 1, nil},
		{"matrix", "int[][]", "int", 2, nil},
		{"varargs", "String...", "String", 1, nil},
		{"generic", "java.util.List<com.x.Part>", "java.util.List", 0, []string{"com.x.Part"}},
		{"map", "java.util.Map<String, List<Part>>", "java.util.Map", 0, []string{"String", "List"}},
		{"annotated", "@NonNull String", "String", 0, nil},
		{"annotation with args", `@Size(max = 3) java.util.List<Part>`, "java.util.List", 0, []string{"Part"}},
		{"diamond", "ArrayList<>", "ArrayList", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ParseTypeRef(tt.text)
			assert.Equal(t, tt.text, ref.Text)
			assert.Equal(t, tt.wantRaw, ref.Raw)
			assert.Equal(t, tt.wantDims, ref.Dims)
			var args []string
			for _, a := range ref.Args {
				args = append(args, a.Raw)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestParseTypeRef_Wildcards(t *testing.T) {
	ref := ParseTypeRef("List<? extends com.x.Shape>")
	require.Len(t, ref.Args, 1)
	assert.Equal(t, "com.x.Shape", ref.Args[0].Raw)
	assert.Equal(t, "? extends com.x.Shape", ref.Args[0].Text)

	ref = ParseTypeRef("Comparator<? super T>")
	require.Len(t, ref.Args, 1)
	assert.Equal(t, "T", ref.Args[0].Raw)

	unbounded := ParseTypeRef("Class<?>")
	require.Len(t, unbounded.Args, 1)
	assert.Empty(t, unbounded.Args[0].Raw)
}

func TestTypeRef_Elements(t *testing.T) {
	ref := ParseTypeRef("Map<Key, List<Value>>")
	var raws []string
	for _, el := range ref.Elements() {
		raws = append(raws, el.Raw)
	}
	assert.Equal(t, []string{"Key", "List", "Value"}, raws)
	assert.Empty(t, Ref("com.x.Part").Elements())
}

func TestTypeRef_UnmarshalYAMLShorthand(t *testing.T) {
	handles, err := ParseManifest([]byte(`
types:
  - name: com.x.Owner
    fields:
      - name: parts
        type: java.util.List<com.x.Part>
      - name: tags
        type:
          text: String[]
`))
	require.NoError(t, err)
	require.Len(t, handles, 1)

	fields := handles[0].Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "java.util.List", fields[0].Type.Raw)
	assert.Equal(t, "com.x.Part", fields[0].Type.Args[0].Raw)
	assert.Equal(t, "String", fields[1].Type.Raw)
	assert.Equal(t, 1, fields[1].Type.Dims)
}

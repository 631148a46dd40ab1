package processor_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/CodMac/go-treesitter-uml/diagram"
	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/CodMac/go-treesitter-uml/processor"
	_ "github.com/CodMac/go-treesitter-uml/x/java" // 确保注册 Java
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceRoot() string {
	return filepath.Join("testdata", "src")
}

func names(handles []handle.TypeHandle) []string {
	var out []string
	for _, h := range handles {
		out = append(out, h.Name())
	}
	return out
}

func TestFileProcessor_DiscoverFiles(t *testing.T) {
	fp := processor.NewFileProcessor(model.LangJava, 2)
	files, err := fp.DiscoverFiles([]string{sourceRoot(), sourceRoot()})
	require.NoError(t, err)

	// 隐藏目录被跳过，重复的根目录不会产生重复文件
	assert.Len(t, files, 4)
	for _, f := range files {
		assert.NotContains(t, f, ".generated")
	}
}

func TestFileProcessor_Locate(t *testing.T) {
	tests := []struct {
		name string
		req  processor.Request
		want []string
	}{
		{
			name: "all packages",
			req:  processor.Request{IncludeInnerClasses: true},
			want: []string{
				"com.acme.core.Engine",
				"com.acme.core.Engine.Listener",
				"com.acme.core.Part",
				"com.acme.core.internal.Cache",
				"com.acme.ui.View",
			},
		},
		{
			name: "package includes sub-packages",
			req:  processor.Request{Packages: []string{"com.acme.core"}, IncludeInnerClasses: true},
			want: []string{
				"com.acme.core.Engine",
				"com.acme.core.Engine.Listener",
				"com.acme.core.Part",
				"com.acme.core.internal.Cache",
			},
		},
		{
			name: "ignore type with its nested types and a package",
			req: processor.Request{
				Packages: []string{"com.acme"},
				Ignore:   []string{"com.acme.core.Engine", "com.acme.core.internal"},
			},
			want: []string{"com.acme.core.Part", "com.acme.ui.View"},
		},
		{
			name: "nested types excluded by default",
			req:  processor.Request{Packages: []string{"com.acme.core"}},
			want: []string{
				"com.acme.core.Engine",
				"com.acme.core.Part",
				"com.acme.core.internal.Cache",
			},
		},
		{
			name: "ignore by simple name",
			req:  processor.Request{Ignore: []string{"Part", "Listener"}, IncludeInnerClasses: true},
			want: []string{
				"com.acme.core.Engine",
				"com.acme.core.internal.Cache",
				"com.acme.ui.View",
			},
		},
		{
			name: "unknown package selects nothing",
			req:  processor.Request{Packages: []string{"org.missing"}},
			want: nil,
		},
	}

	fp := processor.NewFileProcessor(model.LangJava, 3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Roots = []string{sourceRoot()}
			handles, err := fp.Locate(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(handles))
		})
	}
}

func TestFileProcessor_LocateResolvesAcrossFiles(t *testing.T) {
	fp := processor.NewFileProcessor(model.LangJava, 2)
	handles, err := fp.Locate(context.Background(), processor.Request{Roots: []string{sourceRoot()}})
	require.NoError(t, err)

	byName := make(map[string]handle.TypeHandle)
	for _, h := range handles {
		byName[h.Name()] = h
	}
	view := byName["com.acme.ui.View"]
	require.NotNil(t, view)
	assert.Equal(t, []string{"com.acme.core.Engine.Listener"}, view.Interfaces())

	engine := byName["com.acme.core.Engine"]
	require.NotNil(t, engine)
	var cache handle.Field
	for _, f := range engine.Fields() {
		if f.Name == "cache" {
			cache = f
		}
	}
	assert.Equal(t, "com.acme.core.internal.Cache", cache.Type.Raw)
	assert.Equal(t, handle.OwnershipInjected, cache.Ownership)
}

func TestFileProcessor_NoSourceFiles(t *testing.T) {
	fp := processor.NewFileProcessor(model.LangJava, 1)
	_, err := fp.Locate(context.Background(), processor.Request{Roots: []string{t.TempDir()}})
	assert.ErrorIs(t, err, processor.ErrNoSourceFiles)
}

func TestFileProcessor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fp := processor.NewFileProcessor(model.LangJava, 2)
	_, err := fp.Locate(ctx, processor.Request{Roots: []string{sourceRoot()}})
	assert.ErrorIs(t, err, context.Canceled)
}

// 从源码到 PlantUML 的完整流程
func TestFileProcessor_GeneratePlantUML(t *testing.T) {
	fp := processor.NewFileProcessor(model.LangJava, 2)
	handles, err := fp.Locate(context.Background(), processor.Request{
		Roots:               []string{sourceRoot()},
		Packages:            []string{"com.acme.core"},
		IncludeInnerClasses: true,
	})
	require.NoError(t, err)

	rep, err := diagram.Generate(context.Background(), handles, diagram.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "puml", rep.FileEnding)

	assert.Contains(t, rep.Content, "package com.acme.core {\n")
	assert.Contains(t, rep.Content, "package com.acme.core.internal {\n")
	assert.Contains(t, rep.Content, "+ Engine(cache : Cache)")
	assert.Contains(t, rep.Content, "+ start(rpm : int, warm : boolean)")
	assert.Contains(t, rep.Content, `Part "-part" <-- Engine`+"\n")
	assert.Contains(t, rep.Content, "Engine +-- Listener : static\n")
	// 类型在图中的字段不再列出
	assert.NotContains(t, rep.Content, "- part : Part")
}

func TestInPackages(t *testing.T) {
	assert.True(t, processor.InPackages("com.acme", nil))
	assert.True(t, processor.InPackages("com.acme.core", []string{"com.acme"}))
	assert.False(t, processor.InPackages("com.acmex", []string{"com.acme"}))
}

func TestIgnored(t *testing.T) {
	manager := &handle.Type{QualifiedName: "com.acme.person.Manager", Package: "com.acme.person"}

	tests := []struct {
		name   string
		ignore []string
		want   bool
	}{
		{"qualified name", []string{"com.acme.person.Manager"}, true},
		{"simple name", []string{"Manager"}, true},
		{"package", []string{"com.acme.person"}, true},
		{"parent package", []string{"com.acme"}, true},
		{"other simple name", []string{"Employee"}, false},
		{"name prefix is not a package", []string{"com.acme.per"}, false},
		{"empty entry", []string{""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, processor.Ignored(manager, tt.ignore))
		})
	}
}

func TestFileProcessor_Select(t *testing.T) {
	handles := []handle.TypeHandle{
		&handle.Type{QualifiedName: "p.Outer", Package: "p"},
		&handle.Type{QualifiedName: "p.Outer.Inner", Package: "p", Enclosing: "p.Outer", Mods: handle.Static},
		&handle.Type{QualifiedName: "p.Outer$1", Package: "p", Enclosing: "p.Outer", Anonymous: true},
		&handle.Type{QualifiedName: "p.Outer$1Helper", Simple: "Helper", Package: "p", Enclosing: "p.Outer", Local: true},
		&handle.Type{QualifiedName: "p.Synth", Package: "p", Mods: handle.Synthetic},
		&handle.Type{QualifiedName: "java.util.List", Package: "java.util", Kind: handle.KindInterface},
	}
	fp := processor.NewFileProcessor(model.LangJava, 1)

	assert.Equal(t, []string{"p.Outer", "p.Outer.Inner"},
		names(fp.Select(handles, processor.Request{IncludeInnerClasses: true})))
	assert.Equal(t, []string{"p.Outer"},
		names(fp.Select(handles, processor.Request{})))
}

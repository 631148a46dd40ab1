// Package processor 是基于 tree-sitter 的类型定位器：
// 在源码根目录下发现文件，两阶段解析后按包过滤，产出 handle.TypeHandle。
package processor

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/CodMac/go-treesitter-uml/collector"
	"github.com/CodMac/go-treesitter-uml/core"
	"github.com/CodMac/go-treesitter-uml/extractor"
	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/logger"
	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/CodMac/go-treesitter-uml/noisefilter"
	"github.com/CodMac/go-treesitter-uml/parser"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// ErrNoSourceFiles 表示源码根目录下没有找到任何可解析的文件
var ErrNoSourceFiles = errors.New("no source files found")

// Request 描述一次定位
type Request struct {
	Roots []string
	// Packages 为空时包含全部包；否则包含等于或位于其下的包
	Packages []string
	// Ignore 中的条目可以是类型限定名、简单类名或包名前缀
	Ignore []string
	// IncludeInnerClasses 为 false 时丢弃嵌套类型
	IncludeInnerClasses bool
}

// FileProcessor 负责并发处理文件列表，并聚合所有类型句柄。
type FileProcessor struct {
	Language model.Language
	Workers  int // 并发协程数量
}

// NewFileProcessor 创建 FileProcessor 实例
func NewFileProcessor(lang model.Language, workers int) *FileProcessor {
	if workers <= 0 {
		workers = 4 // 默认并发数
	}
	return &FileProcessor{
		Language: lang,
		Workers:  workers,
	}
}

// DiscoverFiles 递归查找源码文件，跳过隐藏目录，结果排序保证确定性
func (fp *FileProcessor) DiscoverFiles(roots []string) ([]string, error) {
	ext := fp.Language.Extension()
	seen := make(map[string]bool)
	var files []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == ext && !seen[path] {
				seen[path] = true
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to walk source root %s", root)
		}
	}
	sort.Strings(files)
	return files, nil
}

// Locate 实现了两阶段处理逻辑，返回按限定名排序的类型句柄。
func (fp *FileProcessor) Locate(ctx context.Context, req Request) ([]handle.TypeHandle, error) {
	log := logger.Named("processor")

	files, err := fp.DiscoverFiles(req.Roots)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.WithHintf(ErrNoSourceFiles, "searched %v for *%s files", req.Roots, fp.Language.Extension())
	}

	resolver, err := core.GetSymbolResolver(fp.Language)
	if err != nil {
		return nil, err
	}
	gc := core.NewGlobalContext(resolver)

	// --- 阶段 1: 收集定义 (Collect Definitions) ---
	log.Infow("Phase 1: collecting definitions", "files", len(files), "workers", fp.Workers)
	fileContexts, err := fp.collect(ctx, files, gc)
	if err != nil {
		return nil, errors.Wrap(err, "phase 1 (definition collection) failed")
	}

	for _, pkg := range req.Packages {
		if !gc.HasPackage(pkg) {
			log.Warnw("Package filter matches no scanned package", "package", pkg)
		}
	}

	// --- 阶段 2: 链接类型 (Link Types) ---
	log.Infow("Phase 2: linking types", "files", len(fileContexts))
	handles, err := fp.link(ctx, fileContexts, gc)
	if err != nil {
		return nil, errors.Wrap(err, "phase 2 (type linking) failed")
	}

	filtered := fp.Select(handles, req)
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Name() < filtered[j].Name() })
	log.Infow("Types located", "total", len(handles), "selected", len(filtered))
	return filtered, nil
}

// collect 每个 worker 持有自己的 parser；单个文件失败只记录警告并跳过
func (fp *FileProcessor) collect(ctx context.Context, files []string, gc *core.GlobalContext) ([]*core.FileContext, error) {
	coll, err := collector.GetCollector(fp.Language)
	if err != nil {
		return nil, err
	}

	log := logger.Named("processor")
	filesChan := make(chan string)
	var (
		mu      sync.Mutex
		results []*core.FileContext
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(filesChan)
		for _, f := range files {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case filesChan <- f:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < fp.Workers; i++ {
		g.Go(func() error {
			p, err := parser.NewParser(fp.Language)
			if err != nil {
				return err
			}
			defer p.Close()

			for filePath := range filesChan {
				rootNode, sourceBytes, err := p.ParseFile(filePath)
				if err != nil {
					log.Warnw("Skipping unparsable file", "file", filePath, "error", err)
					continue
				}
				if rootNode.HasError() {
					log.Debugw("Syntax errors in file, collecting what parsed", "file", filePath)
				}
				fc, err := coll.CollectDefinitions(rootNode, filePath, sourceBytes)
				if err != nil {
					log.Warnw("Failed to collect definitions", "file", filePath, "error", err)
					continue
				}
				gc.RegisterFileContext(fc)

				mu.Lock()
				results = append(results, fc)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].FilePath < results[j].FilePath })
	return results, nil
}

func (fp *FileProcessor) link(ctx context.Context, fileContexts []*core.FileContext, gc *core.GlobalContext) ([]handle.TypeHandle, error) {
	ext, err := extractor.GetExtractor(fp.Language)
	if err != nil {
		return nil, err
	}

	results := make([][]handle.TypeHandle, len(fileContexts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fp.Workers)
	for i, fc := range fileContexts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			handles, err := ext.Extract(fc, gc)
			if err != nil {
				logger.Named("processor").Warnw("Failed to link types", "file", fc.FilePath, "error", err)
				return nil
			}
			results[i] = handles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []handle.TypeHandle
	for _, hs := range results {
		all = append(all, hs...)
	}
	return all, nil
}

// Select 去掉匿名类、局部类、合成类与噪音类型，并应用嵌套类开关与包含/忽略规则。
// 源码定位与 YAML 快照共用这一过滤。
func (fp *FileProcessor) Select(handles []handle.TypeHandle, req Request) []handle.TypeHandle {
	noise := noisefilter.GetNoiseFilter(fp.Language)
	out := make([]handle.TypeHandle, 0, len(handles))
	for _, h := range handles {
		switch {
		case h.IsAnonymous(), h.IsLocal(), h.Modifiers().IsSynthetic(), noise.IsNoise(h.Name()):
			continue
		case !req.IncludeInnerClasses && h.EnclosingType() != "":
			continue
		case !InPackages(h.PackageName(), req.Packages):
			continue
		case Ignored(h, req.Ignore):
			continue
		}
		out = append(out, h)
	}
	return out
}

// InPackages 报告 pkg 是否等于或位于 packages 中任一包之下；packages 为空时总是 true
func InPackages(pkg string, packages []string) bool {
	if len(packages) == 0 {
		return true
	}
	for _, p := range packages {
		if pkg == p || strings.HasPrefix(pkg, p+".") {
			return true
		}
	}
	return false
}

// Ignored 报告类型是否被忽略：限定名或简单类名完全匹配，或位于被忽略的包 (含子包) 或外层类型之下
func Ignored(h handle.TypeHandle, ignore []string) bool {
	for _, ig := range ignore {
		if ig == "" {
			continue
		}
		if h.Name() == ig || h.SimpleName() == ig || h.PackageName() == ig || strings.HasPrefix(h.Name(), ig+".") {
			return true
		}
	}
	return false
}

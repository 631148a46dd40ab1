// Package diagram 串联完整流程：类型句柄 -> 领域类 -> 扫描器 -> 合并 -> Presenter。
//
// 每次调用都是独立的，所有开关通过 Options 显式传入，不依赖任何全局状态。
package diagram

import (
	"context"

	"github.com/CodMac/go-treesitter-uml/graph"
	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/logger"
	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/CodMac/go-treesitter-uml/output"
	"github.com/CodMac/go-treesitter-uml/scanner"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Options 控制一次生成
type Options struct {
	ShowParameterNames bool
	// Presenter 是 output 注册表中的名称
	Presenter string
	// Scanners 为空时使用 scanner.Defaults()
	Scanners []scanner.Scanner
}

func DefaultOptions() Options {
	return Options{
		ShowParameterNames: true,
		Presenter:          "plantuml",
		Scanners:           scanner.Defaults(),
	}
}

// BuildClasses 把句柄映射为领域类。匿名类被丢弃，元数据损坏的句柄使整个运行失败。
func BuildClasses(handles []handle.TypeHandle) (*model.ClassSet, error) {
	log := logger.Named("diagram")
	set := model.NewClassSet()
	for _, h := range handles {
		dc, err := model.NewDomainClass(h)
		if errors.Is(err, model.ErrAnonymousType) {
			log.Debugw("Skipping anonymous type", "type", h.Name())
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to build domain model")
		}
		if !set.Add(dc) {
			log.Debugw("Duplicate type handle ignored", "type", dc.QualifiedName())
		}
	}
	return set, nil
}

// BuildGraph 运行全部扫描器并合并结果。扫描器之间互不依赖，并发执行，结果按扫描器顺序合并。
func BuildGraph(ctx context.Context, handles []handle.TypeHandle, opts Options) (*graph.Graph, error) {
	classes, err := BuildClasses(handles)
	if err != nil {
		return nil, err
	}

	scanners := opts.Scanners
	if len(scanners) == 0 {
		scanners = scanner.Defaults()
	}

	results := make([][]*model.Edge, len(scanners))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range scanners {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Scan(classes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "scanning aborted")
	}

	assembled := graph.Assemble(classes, results...)
	logger.Named("diagram").Debugw("Graph assembled",
		"classes", len(assembled.Classes()),
		"edges", len(assembled.Edges()))
	return assembled, nil
}

// Generate 生成图表文本
func Generate(ctx context.Context, handles []handle.TypeHandle, opts Options) (*output.Representation, error) {
	presenterName := opts.Presenter
	if presenterName == "" {
		presenterName = "plantuml"
	}
	presenter, err := output.Get(presenterName, output.Options{ShowParameterNames: opts.ShowParameterNames})
	if err != nil {
		return nil, err
	}

	g, err := BuildGraph(ctx, handles, opts)
	if err != nil {
		return nil, err
	}

	rep, err := presenter.Describe(g)
	if err != nil {
		return nil, errors.Wrapf(err, "presenter %s failed", presenterName)
	}
	return rep, nil
}

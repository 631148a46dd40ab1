package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodMac/go-treesitter-uml/config"
	"github.com/CodMac/go-treesitter-uml/diagram"
	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/CodMac/go-treesitter-uml/logger"
	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/CodMac/go-treesitter-uml/output"
	"github.com/CodMac/go-treesitter-uml/processor"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// 未指定文件名时的输出文件基名
const defaultOutputName = "diagram"

var configPath string

// GenerateCmd 生成图表
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a class diagram",
	Long: `Generate a class diagram from Java sources or a YAML type manifest.

Settings are read from urm.toml (or --config), URM_* environment variables
and flags, in increasing order of precedence.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := GenerateCmd.Flags()
	f.StringVar(&configPath, "config", "", "Config file (default: ./urm.toml if present)")
	f.StringSliceP("source", "s", nil, "Source root directories (repeatable)")
	f.StringSliceP("package", "p", nil, "Packages to include, with their sub-packages (repeatable)")
	f.StringSliceP("ignore", "i", nil, "Type names or packages to leave out (repeatable)")
	f.StringP("manifest", "m", "", "YAML type manifest to read instead of sources")
	f.Bool("inner-classes", true, "Include nested types (use --inner-classes=false to drop them)")
	f.String("presenter", config.DefaultPresenter, "Output format (see 'urm presenters')")
	f.StringP("output", "o", "", "Output file or directory (default: stdout)")
	f.Bool("no-parameter-names", false, "Render parameter types only")
	f.Int("workers", 0, "Parser workers (default: number of CPUs)")
	f.Bool("log-json", false, "Log as JSON to stderr")
}

// flagKeys 把 flag 映射到配置键
var flagKeys = map[string]string{
	"source":        "source.roots",
	"package":       "source.packages",
	"ignore":        "source.ignore",
	"manifest":      "source.manifest",
	"inner-classes": "source.include_inner_classes",
	"presenter":     "presenter",
	"output":        "output.path",
	"workers":       "workers",
	"log-json":      "log.json",
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v, err := config.New(configPath)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(cmd, v); err != nil {
		return nil, err
	}
	return config.FromViper(v)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return errors.Wrapf(err, "failed to bind flag --%s", name)
		}
	}
	if cmd.Flags().Changed("no-parameter-names") {
		off, _ := cmd.Flags().GetBool("no-parameter-names")
		v.Set("show_parameter_names", !off)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
		return err
	}
	log := logger.Named("generate")

	handles, err := locateTypes(cmd, cfg)
	if err != nil {
		return err
	}
	log.Debugw("Types located", "count", len(handles))

	rep, err := diagram.Generate(cmd.Context(), handles, diagram.Options{
		ShowParameterNames: cfg.ShowParameterNames,
		Presenter:          cfg.Presenter,
	})
	if err != nil {
		return err
	}

	if cfg.Output.Path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), rep.Content)
		return err
	}
	path, err := writeRepresentation(cfg.Output.Path, rep)
	if err != nil {
		return err
	}
	log.Infow("Diagram written", "path", path, "presenter", cfg.Presenter)
	return nil
}

// locateTypes 从 YAML 快照或源码定位类型，两者经过同一套过滤规则
func locateTypes(cmd *cobra.Command, cfg *config.Config) ([]handle.TypeHandle, error) {
	fp := processor.NewFileProcessor(model.LangJava, cfg.Workers)
	req := processor.Request{
		Roots:               cfg.Source.Roots,
		Packages:            cfg.Source.Packages,
		Ignore:              cfg.Source.Ignore,
		IncludeInnerClasses: cfg.Source.IncludeInnerClasses,
	}

	if cfg.Source.Manifest != "" {
		handles, err := handle.LoadManifest(cfg.Source.Manifest)
		if err != nil {
			return nil, err
		}
		return fp.Select(handles, req), nil
	}
	return fp.Locate(cmd.Context(), req)
}

// writeRepresentation 写入文件；path 是目录 (已存在或以分隔符结尾) 时使用 diagram.<ending>
func writeRepresentation(path string, rep *output.Representation) (string, error) {
	if info, err := os.Stat(path); (err == nil && info.IsDir()) || strings.HasSuffix(path, string(os.PathSeparator)) {
		path = filepath.Join(path, defaultOutputName+"."+rep.FileEnding)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create output directory for %s", path)
	}
	if err := os.WriteFile(path, []byte(rep.Content), 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}

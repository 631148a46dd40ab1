package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger 是全局日志实例，Initialize 之前为 no-op
	Logger *zap.SugaredLogger
	// JSONOutput 记录是否启用了 JSON 输出
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize 按输出格式与级别初始化全局日志。日志总是写到 stderr，stdout 留给图表文本。
func Initialize(jsonOutput bool, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}

	var zapLogger *zap.Logger
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
		zapLogger, err = config.Build()
		if err != nil {
			return errors.Wrap(err, "failed to build json logger")
		}
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			lvl,
		))
	}

	JSONOutput = jsonOutput
	Logger = zapLogger.Sugar()
	return nil
}

// Named 返回带组件名的子 logger
func Named(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// Sync 刷新缓冲，忽略 stderr 在部分平台上的 sync 错误
func Sync() {
	_ = Logger.Sync()
}

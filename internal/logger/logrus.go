package logger

import (
	"io"
	"log/slog"

	sloghook "github.com/shogo82148/logrus-slog-hook"
	"github.com/sirupsen/logrus"
)

// bridgeLogrus forwards everything logged through the logrus standard logger,
// which is used by some of the dependencies, to the given handler.
func bridgeLogrus(handler slog.Handler) {
	std := logrus.StandardLogger()
	std.ReplaceHooks(logrus.LevelHooks{})
	std.AddHook(sloghook.New(handler))
	std.SetFormatter(sloghook.NewFormatter())
	std.SetOutput(io.Discard)
	std.SetLevel(logrus.TraceLevel)
}

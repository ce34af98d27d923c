// Package notify carries the transient user-facing success/error messages the
// wizard emits after a submission attempt. The real delivery channel is the
// web front end; server-side the messages are logged and forgotten.
package notify

import "go.uber.org/zap"

type ZapNotifier struct{ logger *zap.Logger }

func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapNotifier{logger: logger}
}

func (n *ZapNotifier) Success(msg string) { n.logger.Info("notify", zap.String("message", msg)) }
func (n *ZapNotifier) Error(msg string)   { n.logger.Warn("notify", zap.String("message", msg)) }

package notify

import (
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// Desktop delivers alerts through the OS notification center. Delivery is
// best effort: an unsupported platform or a denied permission surfaces as a
// false return, never as an error that reaches the evaluation loop.
type Desktop struct {
	logger *zap.Logger
}

func NewDesktop(logger *zap.Logger) *Desktop {
	return &Desktop{logger: logger}
}

func (d *Desktop) Notify(title, body string) bool {
	if err := beeep.Notify(title, body, ""); err != nil {
		d.logger.Warn("desktop notification failed", zap.String("title", title), zap.Error(err))
		return false
	}
	d.logger.Info("desktop notification sent", zap.String("title", title), zap.String("body", body))
	return true
}

package screen

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"weather-app/internal/domain/gateway/store"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

// LogFailure logs a failed screen operation under message key with args {0}=id, then args, then err.
// Cancellation and unmounted screens follow an unmount and are logged at debug level.
func LogFailure(key string, id string, err error, args ...interface{}) {
	fields := []zap.Field{zap.String("screen_id", id), zap.Error(err)}
	messageArgs := append(append([]interface{}{id}, args...), err)
	message := msg.GetMessage(key, messageArgs...)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, store.ErrScreenNotFound):
		log.Debug(message, fields...)
	default:
		log.Error(message, fields...)
	}
}

package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// HumaMiddleware gives every huma operation a LogData in its context and logs
// one line per request once the handler has written its response.
func HumaMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		name := "Unknown"
		if op := ctx.Operation(); op != nil {
			name = op.OperationID
		}

		logData := NewLogData(log)
		logData.AddData("operationID", name)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		endTimer := logData.AddTiming("durationMs")
		next(huma.WithContext(ctx, WithLogData(ctx.Context(), logData)))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		switch {
		case status >= http.StatusInternalServerError:
			logData.Log().Errorf("Handler.%v.Error", name)
		case status >= http.StatusBadRequest:
			logData.Log().Warnf("Handler.%v.Rejected", name)
		default:
			logData.Log().Infof("Handler.%v.Complete", name)
		}
	}
}

package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time logs end-to-end duration of an operation. Typical use:
//
//	defer obs.Time(ctx, "store.SaveSimulation")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Error().Str("req_id", reqID).Str("op", name).Int64("dur_ms", dur.Milliseconds()).Err(*errp).Msg("op failed")
			return
		}
		log.Debug().Str("req_id", reqID).Str("op", name).Int64("dur_ms", dur.Milliseconds()).Msg("op done")
	}
}

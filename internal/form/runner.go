package form

import (
	"context"

	"go.uber.org/zap"
)

// Runner owns one Form and executes the effects its transitions request. The
// pure core stays synchronous; the only suspension point is the generation
// call, which the Runner awaits to completion before feeding SubmitResolved
// back in.
type Runner struct {
	form   Form
	client Client
	log    *zap.Logger
}

func NewRunner(f Form, client Client, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{form: f, client: client, log: log}
}

// Form returns the current state.
func (r *Runner) Form() Form {
	return r.form
}

// Dispatch applies one event and performs the resulting effects. The returned
// effects are the terminal ones (notifications, navigation); the CallGenerate
// effect is consumed here and never escapes.
func (r *Runner) Dispatch(ctx context.Context, ev Event) []Effect {
	next, effects := Apply(r.form, ev)
	r.form = next

	var out []Effect
	for _, eff := range effects {
		call, ok := eff.(CallGenerate)
		if !ok {
			out = append(out, eff)
			continue
		}

		res, err := r.client.CreateInterview(ctx, call.Req)
		if err != nil {
			r.log.Sugar().Errorw("interview generation call failed", "err", err)
			res = Result{Message: MsgTransportError}
		}
		out = append(out, r.Dispatch(ctx, SubmitResolved{Result: res})...)
	}
	return out
}

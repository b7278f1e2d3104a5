// Package gateway mirrors local entry mutations to the remote collection.
//
// Every call is best effort: the local store has already been updated when a
// mirror call starts, and the outcome is only logged. Nothing is retried and
// nothing is written back into the store.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Makepad-fr/journal/internal/logging"
	"github.com/Makepad-fr/journal/internal/model"
	"github.com/Makepad-fr/journal/internal/remote"
)

type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Remote is the part of remote.Client the gateway needs.
type Remote interface {
	Create(ctx context.Context, p remote.Post) (remote.Post, error)
	Update(ctx context.Context, id int64, p remote.Post) (remote.Post, error)
	Delete(ctx context.Context, id int64) error
}

// Result describes one mirror attempt.
type Result struct {
	Op        Op
	AttemptID string
	Entry     model.Entry
	// Merged is the remote echo folded into Entry with model.Merge.
	// Informational only; zero when the call failed or was skipped.
	Merged  model.Entry
	Err     error
	Skipped bool
	Elapsed time.Duration
}

func (r Result) OK() bool { return r.Err == nil && !r.Skipped }

type Gateway struct {
	remote  Remote
	log     *log.Logger
	timeout time.Duration
	enabled bool
}

type Option func(*Gateway)

// WithTimeout bounds each remote attempt.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

// Disabled turns every mirror call into a logged no-op.
func Disabled() Option {
	return func(g *Gateway) { g.enabled = false }
}

func New(r Remote, logger *log.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		remote:  r,
		log:     logger,
		timeout: 10 * time.Second,
		enabled: r != nil,
	}
	for _, o := range opts {
		o(g)
	}
	if g.log == nil {
		g.log = logging.Discard()
	}
	return g
}

// Mirror dispatches op for e.
func (g *Gateway) Mirror(ctx context.Context, op Op, e model.Entry) Result {
	switch op {
	case OpCreate:
		return g.Create(ctx, e)
	case OpUpdate:
		return g.Update(ctx, e)
	case OpDelete:
		return g.Delete(ctx, e)
	}
	res := Result{Op: op, Entry: e, AttemptID: uuid.NewString(), Err: fmt.Errorf("unknown op %q", op)}
	g.log.Error("sync rejected", "op", op, "id", e.ID, "attempt", res.AttemptID, "err", res.Err)
	return res
}

func (g *Gateway) Create(ctx context.Context, e model.Entry) Result {
	return g.attempt(ctx, OpCreate, e, func(ctx context.Context) (remote.Post, error) {
		return g.remote.Create(ctx, toPost(e))
	})
}

func (g *Gateway) Update(ctx context.Context, e model.Entry) Result {
	return g.attempt(ctx, OpUpdate, e, func(ctx context.Context) (remote.Post, error) {
		return g.remote.Update(ctx, e.ID, toPost(e))
	})
}

func (g *Gateway) Delete(ctx context.Context, e model.Entry) Result {
	return g.attempt(ctx, OpDelete, e, func(ctx context.Context) (remote.Post, error) {
		return remote.Post{}, g.remote.Delete(ctx, e.ID)
	})
}

func (g *Gateway) attempt(ctx context.Context, op Op, e model.Entry, call func(context.Context) (remote.Post, error)) Result {
	res := Result{Op: op, Entry: e, AttemptID: uuid.NewString()}
	logger := g.log.With("op", op, "id", e.ID, "attempt", res.AttemptID)

	if !g.enabled {
		res.Skipped = true
		logger.Debug("sync skipped")
		return res
	}

	ctx = remote.WithRequestID(ctx, res.AttemptID)
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	post, err := call(ctx)
	res.Elapsed = time.Since(start)
	if err != nil {
		res.Err = err
		logger.Warn("sync failed", "kind", Kind(err), "elapsed", res.Elapsed, "err", err)
		return res
	}

	if op != OpDelete {
		res.Merged = model.Merge(e, fromPost(post))
	}
	logger.Debug("synced", "remote_id", post.ID, "elapsed", res.Elapsed)
	return res
}

// Kind classifies a mirror failure for diagnostics.
func Kind(err error) string {
	var se *remote.StatusError
	var ne net.Error
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, remote.ErrMalformed):
		return "malformed"
	case errors.As(err, &se):
		return "status"
	case errors.As(err, &ne) && ne.Timeout():
		return "timeout"
	default:
		return "network"
	}
}

func toPost(e model.Entry) remote.Post {
	return remote.Post{ID: e.ID, UserID: e.UserID, Title: e.Title, Body: e.Body}
}

func fromPost(p remote.Post) model.Entry {
	return model.Entry{ID: p.ID, UserID: p.UserID, Title: p.Title, Body: p.Body}
}

// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets them, services read them, and the
// package stays free of net/http so the engine core never imports transport
// code.
package requestcontext

import (
	"context"
	"time"

	id "provenia/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	actorIDKey     struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	deviceKey      struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// WithActorID stores the authenticated initiating party on the context.
func WithActorID(ctx context.Context, actorID id.PartyID) context.Context {
	return context.WithValue(ctx, actorIDKey{}, actorID)
}

// ActorID returns the initiating party, or the nil PartyID when absent.
func ActorID(ctx context.Context) id.PartyID {
	v, _ := ctx.Value(actorIDKey{}).(id.PartyID)
	return v
}

// WithRequestID stores the correlation ID on the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the correlation ID, or "" when absent.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// WithClientIP stores the caller's IP on the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIP returns the caller's IP, or "" when absent.
func ClientIP(ctx context.Context) string {
	v, _ := ctx.Value(clientIPKey{}).(string)
	return v
}

// WithUserAgent stores the caller's user agent on the context.
func WithUserAgent(ctx context.Context, ua string) context.Context {
	return context.WithValue(ctx, userAgentKey{}, ua)
}

// UserAgent returns the caller's user agent, or "" when absent.
func UserAgent(ctx context.Context) string {
	v, _ := ctx.Value(userAgentKey{}).(string)
	return v
}

// WithDevice stores a compact device summary parsed from the user agent.
func WithDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, deviceKey{}, device)
}

// Device returns the parsed device summary, or "" when absent.
func Device(ctx context.Context) string {
	v, _ := ctx.Value(deviceKey{}).(string)
	return v
}

// WithTime pins the request-processing time on the context; tests use this
// to make time-dependent behavior deterministic.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}

// Now returns the pinned request time when present, time.Now otherwise.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

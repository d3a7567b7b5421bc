package testutil

import (
	"net/http"
	"time"

	id "provenia/pkg/domain"
	"provenia/pkg/requestcontext"
)

// WithActor adds an initiating party to the request context, simulating what
// an authenticating middleware would establish.
func WithActor(req *http.Request, actorID id.PartyID) *http.Request {
	return req.WithContext(requestcontext.WithActorID(req.Context(), actorID))
}

// WithRequestID pins the correlation ID on the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithTime pins the request-processing time for deterministic assertions.
func WithTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}

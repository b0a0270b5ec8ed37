package middleware

import (
	"ai-task-assistant/pkg/log"
)

const (
	DefaultIdentityHeader = "X-User-ID"
	RequestIDHeader       = "X-Request-ID"
	InternalKeyHeader     = "X-Internal-Key"
)

type Middleware struct {
	l              log.Logger
	identityHeader string
	internalKey    string
}

func New(l log.Logger, identityHeader string, internalKey string) Middleware {
	if identityHeader == "" {
		identityHeader = DefaultIdentityHeader
	}
	return Middleware{
		l:              l,
		identityHeader: identityHeader,
		internalKey:    internalKey,
	}
}

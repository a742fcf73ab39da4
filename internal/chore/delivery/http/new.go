package http

import (
	"chorechum/internal/chore"
	pkgLog "chorechum/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc chore.UseCase
}

// New creates the HTTP handler for the chore domain.
func New(l pkgLog.Logger, uc chore.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

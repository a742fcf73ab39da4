package http

import (
	"chorechum/internal/household"
	pkgLog "chorechum/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc household.UseCase
}

// New creates the HTTP handler for the household domain.
func New(l pkgLog.Logger, uc household.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

package handlers

import (
	"github.com/edudata/unidex/internal/services"
)

type Handler struct {
	reporter *services.Reporter
}

func New(reporter *services.Reporter) *Handler {
	return &Handler{reporter: reporter}
}

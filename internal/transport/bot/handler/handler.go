package handler

import (
	"phone-input/internal/domain/service/links"
)

type Handler struct {
	links links.Builder
}

func New() *Handler {
	return &Handler{
		links: links.NewBuilder(),
	}
}

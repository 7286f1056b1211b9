package api

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/frontdesk-org/frontdesk/forms"
	"github.com/frontdesk-org/frontdesk/links"
	"github.com/frontdesk-org/frontdesk/reconcile"
)

type Handler struct {
	forms      forms.Service
	links      links.Service
	reconciler *reconcile.Reconciler
	workflow   *reconcile.Workflow
	logger     *zap.SugaredLogger
}

type Params struct {
	fx.In

	Forms      forms.Service
	Links      links.Service
	Reconciler *reconcile.Reconciler
	Workflow   *reconcile.Workflow
	Logger     *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		forms:      p.Forms,
		links:      p.Links,
		reconciler: p.Reconciler,
		workflow:   p.Workflow,
		logger:     p.Logger,
	}
}

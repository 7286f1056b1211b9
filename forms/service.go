package forms

import (
	"context"

	"go.uber.org/zap"

	"github.com/frontdesk-org/frontdesk/store"
)

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *service) Get(ctx context.Context, id string) (*Form, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context, filter *Filter, pagination store.Pagination) ([]*Form, error) {
	return s.repo.List(ctx, filter, pagination)
}

func (s *service) Create(ctx context.Context, form Form) (*Form, error) {
	created, err := s.repo.Create(ctx, form)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("created intake form", "formId", created.Id, "status", created.Status)
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, form Form) (*Form, error) {
	return s.repo.Update(ctx, id, form)
}

func (s *service) Submit(ctx context.Context, id string) (*Form, error) {
	form, err := s.repo.Submit(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("intake form submitted", "formId", id)
	return form, nil
}

func (s *service) Process(ctx context.Context, id string) (*Form, error) {
	form, err := s.repo.Process(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("intake form processed", "formId", id)
	return form, nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("intake form removed", "formId", id)
	return nil
}

package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/frontdesk-org/frontdesk/forms"
	"github.com/frontdesk-org/frontdesk/store"
)

// InMemoryService is a test double for forms.Service with the same
// transition rules as the mongo repository.
type InMemoryService struct {
	mu   sync.Mutex
	byId map[string]*forms.Form
	// order preserves insertion order for List
	order []string
}

var _ forms.Service = &InMemoryService{}

func NewInMemoryService(seed ...forms.Form) *InMemoryService {
	service := &InMemoryService{
		byId: make(map[string]*forms.Form),
	}
	for _, form := range seed {
		clone := form
		service.byId[clone.Id] = &clone
		service.order = append(service.order, clone.Id)
	}
	return service
}

func (s *InMemoryService) Get(ctx context.Context, id string) (*forms.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.byId[id]
	if !ok {
		return nil, forms.ErrNotFound
	}
	clone := *form
	return &clone, nil
}

func (s *InMemoryService) List(ctx context.Context, filter *forms.Filter, pagination store.Pagination) ([]*forms.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*forms.Form, 0, len(s.order))
	for _, id := range s.order {
		form := s.byId[id]
		if !matchesFilter(form, filter) {
			continue
		}
		clone := *form
		list = append(list, &clone)
	}
	return list, nil
}

func matchesFilter(form *forms.Form, filter *forms.Filter) bool {
	if filter == nil {
		return true
	}
	if filter.Status != nil && form.Status != *filter.Status {
		return false
	}
	// Dates are ISO formatted, so lexicographic comparison matches the
	// repository's range query. Undated forms never match a date filter.
	if filter.DateFrom != nil && form.AppointmentDate < *filter.DateFrom {
		return false
	}
	if filter.DateTo != nil && (form.AppointmentDate == "" || form.AppointmentDate > *filter.DateTo) {
		return false
	}
	return true
}

func (s *InMemoryService) Create(ctx context.Context, form forms.Form) (*forms.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if form.Id == "" {
		form.Id = uuid.NewString()
	}
	if form.Status == "" {
		form.Status = forms.StatusDraft
	}
	now := time.Now()
	form.CreatedTime = now
	form.UpdatedTime = now

	s.byId[form.Id] = &form
	s.order = append(s.order, form.Id)
	clone := form
	return &clone, nil
}

func (s *InMemoryService) Update(ctx context.Context, id string, form forms.Form) (*forms.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.byId[id]
	if !ok {
		return nil, forms.ErrNotFound
	}
	existing.Name = form.Name
	existing.Email = form.Email
	existing.Phone = form.Phone
	existing.BirthDate = form.BirthDate
	existing.AppointmentDate = form.AppointmentDate
	existing.AppointmentTime = form.AppointmentTime
	existing.UpdatedTime = time.Now()
	clone := *existing
	return &clone, nil
}

func (s *InMemoryService) Submit(ctx context.Context, id string) (*forms.Form, error) {
	return s.transition(ctx, id, forms.StatusDraft, forms.StatusSubmitted)
}

func (s *InMemoryService) Process(ctx context.Context, id string) (*forms.Form, error) {
	return s.transition(ctx, id, forms.StatusSubmitted, forms.StatusProcessed)
}

func (s *InMemoryService) transition(ctx context.Context, id, from, to string) (*forms.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.byId[id]
	if !ok {
		return nil, forms.ErrNotFound
	}
	if form.Status != from {
		return nil, forms.ErrInvalidTransition
	}

	now := time.Now()
	form.Status = to
	form.UpdatedTime = now
	if to == forms.StatusSubmitted {
		form.SubmittedTime = &now
	}
	clone := *form
	return &clone, nil
}

func (s *InMemoryService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byId[id]; !ok {
		return forms.ErrNotFound
	}
	delete(s.byId, id)
	for i, orderedId := range s.order {
		if orderedId == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

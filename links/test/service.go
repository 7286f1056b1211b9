package test

import (
	"context"
	"sync"
	"time"

	"github.com/frontdesk-org/frontdesk/links"
)

// InMemoryService is a test double for links.Service with the same
// clear-other-owner semantics as the mongo repository.
type InMemoryService struct {
	mu     sync.Mutex
	byAppt map[string]*links.Link
}

var _ links.Service = &InMemoryService{}

func NewInMemoryService() *InMemoryService {
	return &InMemoryService{
		byAppt: make(map[string]*links.Link),
	}
}

func (s *InMemoryService) Get(ctx context.Context, appointmentId string) (*links.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.byAppt[appointmentId]
	if !ok {
		return nil, links.ErrNotFound
	}
	clone := *link
	return &clone, nil
}

func (s *InMemoryService) GetAll(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]string, len(s.byAppt))
	for appointmentId, link := range s.byAppt {
		result[appointmentId] = link.FormId
	}
	return result, nil
}

func (s *InMemoryService) List(ctx context.Context) ([]*links.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*links.Link, 0, len(s.byAppt))
	for _, link := range s.byAppt {
		clone := *link
		list = append(list, &clone)
	}
	return list, nil
}

func (s *InMemoryService) Set(ctx context.Context, appointmentId, formId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for other, link := range s.byAppt {
		if other != appointmentId && link.FormId == formId {
			delete(s.byAppt, other)
		}
	}
	s.byAppt[appointmentId] = &links.Link{
		AppointmentId: appointmentId,
		FormId:        formId,
		UpdatedTime:   time.Now(),
	}
	return nil
}

func (s *InMemoryService) Delete(ctx context.Context, appointmentId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byAppt[appointmentId]; !ok {
		return links.ErrNotFound
	}
	delete(s.byAppt, appointmentId)
	return nil
}

package services

import (
	"context"
	"fmt"

	"partnerapi/models"
)

type EventRepository interface {
	InsertEvent(ctx context.Context, event *models.Event) error
	FindEvents(ctx context.Context) ([]models.Event, error)
	// FindEventByID 查無資料時回傳 nil, nil
	FindEventByID(ctx context.Context, id string) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, fields map[string]interface{}) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) (*models.Event, error)
	ReserveSpots(ctx context.Context, event *models.Event, names []string, kind models.TicketKind, email string) ([]models.Ticket, error)
}

type EventsService struct {
	repo EventRepository
}

func NewEventsService(repo EventRepository) *EventsService {
	return &EventsService{repo: repo}
}

func (s *EventsService) Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Price:       req.Price,
	}
	if err := s.repo.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *EventsService) FindAll(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.FindEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (s *EventsService) FindOne(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.repo.FindEventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", id, err)
	}
	return event, nil
}

func (s *EventsService) Update(ctx context.Context, id string, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.repo.UpdateEvent(ctx, id, req.Fields())
	if err != nil {
		return nil, fmt.Errorf("failed to update event %s: %w", id, err)
	}
	return event, nil
}

// Remove 刪除活動及其車位、票券
func (s *EventsService) Remove(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.repo.DeleteEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return event, nil
}

// Reserve 預約多個車位，任何一個無法預約則全部不成立
func (s *EventsService) Reserve(ctx context.Context, id string, req models.ReserveSpotRequest) ([]models.Ticket, error) {
	if !req.TicketKind.Valid() {
		return nil, models.ErrInvalidTicketKind
	}

	event, err := s.repo.FindEventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", id, err)
	}
	if event == nil {
		return nil, models.ErrEventNotFound
	}

	// 去除重複名稱，保留原順序
	seen := make(map[string]bool, len(req.Spots))
	names := make([]string, 0, len(req.Spots))
	for _, name := range req.Spots {
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	tickets, err := s.repo.ReserveSpots(ctx, event, names, req.TicketKind, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve spots: %w", err)
	}
	return tickets, nil
}

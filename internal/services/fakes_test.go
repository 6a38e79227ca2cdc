package services

import (
	"context"
	"sync"
	"time"

	"matchday/internal/models"
	"matchday/internal/repositories/interfaces"
	"matchday/internal/repositories/mongodb"
	"matchday/internal/utils"
	"matchday/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger() *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text", Output: "stderr"})
	if err != nil {
		panic(err)
	}
	return log
}

// fakeEmailService records sends without delivering anything.
type fakeEmailService struct {
	welcomes      int
	confirmations int
	cancellations int
}

func (f *fakeEmailService) SendWelcome(ctx context.Context, user *models.User) error {
	f.welcomes++
	return nil
}

func (f *fakeEmailService) SendTicketConfirmation(ctx context.Context, user *models.User, ticket *models.Ticket, event *models.Event, qrPNG []byte) error {
	f.confirmations++
	return nil
}

func (f *fakeEmailService) SendCancellationNotice(ctx context.Context, user *models.User, ticket *models.Ticket, event *models.Event) error {
	f.cancellations++
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return mongodb.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	if name, ok := updates["name"].(string); ok {
		user.Name = name
	}
	if phone, ok := updates["phone"].(string); ok {
		user.Phone = phone
	}
	if password, ok := updates["password"].(string); ok {
		user.Password = password
	}
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		now := time.Now()
		user.LastLogin = &now
	}
	return nil
}

func (r *fakeUserRepo) SetLoyalty(ctx context.Context, id primitive.ObjectID, points int, tier models.LoyaltyTier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	user.LoyaltyPoints = points
	user.LoyaltyTier = tier
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []*models.User
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, int64(len(users)), nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[primitive.ObjectID]*models.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[primitive.ObjectID]*models.Event{}}
}

func (r *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	copied := *event
	copied.TicketCategories = append([]models.EventTicketCategory(nil), event.TicketCategories...)
	return &copied, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	if title, ok := updates["title"].(string); ok {
		event.Title = title
	}
	if date, ok := updates["date"].(time.Time); ok {
		event.Date = date
	}
	if status, ok := updates["status"].(models.EventStatus); ok {
		event.Status = status
	}
	return nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return mongodb.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) List(ctx context.Context, filter *interfaces.EventFilter, params *utils.PaginationParams) ([]*models.Event, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var events []*models.Event
	for _, event := range r.events {
		copied := *event
		events = append(events, &copied)
	}
	return events, int64(len(events)), nil
}

func (r *fakeEventRepo) ReserveSeats(ctx context.Context, id primitive.ObjectID, category models.TicketCategory, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	cat := event.Category(category)
	if cat == nil || cat.AvailableSeats < quantity {
		return mongodb.ErrInsufficientSeats
	}
	cat.AvailableSeats -= quantity
	return nil
}

func (r *fakeEventRepo) ReleaseSeats(ctx context.Context, id primitive.ObjectID, category models.TicketCategory, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	cat := event.Category(category)
	if cat == nil {
		return mongodb.ErrNotFound
	}
	cat.AvailableSeats += quantity
	if cat.AvailableSeats > cat.TotalSeats {
		cat.AvailableSeats = cat.TotalSeats
	}
	return nil
}

type fakeTicketRepo struct {
	mu      sync.Mutex
	tickets map[primitive.ObjectID]*models.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[primitive.ObjectID]*models.Ticket{}}
}

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *models.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket.ID = primitive.NewObjectID()
	if ticket.EntryCode == "" {
		ticket.EntryCode = utils.GenerateTicketCode()
	}
	if ticket.PurchaseDate.IsZero() {
		ticket.PurchaseDate = time.Now()
	}
	copied := *ticket
	r.tickets[ticket.ID] = &copied
	return nil
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	copied := *ticket
	return &copied, nil
}

func (r *fakeTicketRepo) GetByEntryCode(ctx context.Context, code string) (*models.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ticket := range r.tickets {
		if ticket.EntryCode == code {
			copied := *ticket
			return &copied, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (r *fakeTicketRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.TicketStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	ticket.Status = status
	return nil
}

func (r *fakeTicketRepo) ListByUser(ctx context.Context, userID primitive.ObjectID, filter *interfaces.TicketFilter, params *utils.PaginationParams) ([]*models.Ticket, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var tickets []*models.Ticket
	for _, ticket := range r.tickets {
		if ticket.User != userID {
			continue
		}
		if filter != nil && filter.Status != "" && ticket.Status != filter.Status {
			continue
		}
		copied := *ticket
		tickets = append(tickets, &copied)
	}
	return tickets, int64(len(tickets)), nil
}

type fakeVenueRepo struct {
	mu     sync.Mutex
	venues map[primitive.ObjectID]*models.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: map[primitive.ObjectID]*models.Venue{}}
}

func (r *fakeVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	venue.ID = primitive.NewObjectID()
	r.venues[venue.ID] = venue
	return nil
}

func (r *fakeVenueRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	venue, ok := r.venues[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	copied := *venue
	return &copied, nil
}

func (r *fakeVenueRepo) GetByName(ctx context.Context, name string) (*models.Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, venue := range r.venues {
		if venue.Name == name {
			copied := *venue
			return &copied, nil
		}
	}
	return nil, mongodb.ErrNotFound
}

func (r *fakeVenueRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	venue, ok := r.venues[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	if name, ok := updates["name"].(string); ok {
		venue.Name = name
	}
	if active, ok := updates["is_active"].(bool); ok {
		venue.IsActive = active
	}
	return nil
}

func (r *fakeVenueRepo) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": false})
}

func (r *fakeVenueRepo) List(ctx context.Context, filter *interfaces.VenueFilter, params *utils.PaginationParams) ([]*models.Venue, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var venues []*models.Venue
	for _, venue := range r.venues {
		if filter != nil && filter.ActiveOnly && !venue.IsActive {
			continue
		}
		copied := *venue
		venues = append(venues, &copied)
	}
	return venues, int64(len(venues)), nil
}

type fakeSeasonPassRepo struct {
	mu     sync.Mutex
	passes map[primitive.ObjectID]*models.SeasonPass
}

func newFakeSeasonPassRepo() *fakeSeasonPassRepo {
	return &fakeSeasonPassRepo{passes: map[primitive.ObjectID]*models.SeasonPass{}}
}

func (r *fakeSeasonPassRepo) Create(ctx context.Context, pass *models.SeasonPass) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pass.ID = primitive.NewObjectID()
	r.passes[pass.ID] = pass
	return nil
}

func (r *fakeSeasonPassRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SeasonPass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pass, ok := r.passes[id]
	if !ok {
		return nil, mongodb.ErrNotFound
	}
	copied := *pass
	return &copied, nil
}

func (r *fakeSeasonPassRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.SeasonPass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var passes []*models.SeasonPass
	for _, pass := range r.passes {
		if pass.User == userID {
			copied := *pass
			passes = append(passes, &copied)
		}
	}
	return passes, nil
}

func (r *fakeSeasonPassRepo) IncrementUsage(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pass, ok := r.passes[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	pass.EventsUsed++
	return nil
}

func (r *fakeSeasonPassRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.SeasonPassStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pass, ok := r.passes[id]
	if !ok {
		return mongodb.ErrNotFound
	}
	pass.Status = status
	return nil
}

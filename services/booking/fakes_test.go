package booking

import (
	"fmt"

	"legalsahyog/models"

	bookingRepo "legalsahyog/database/repository/booking"

	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory collaborators for exercising the engine without a database.

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copy := *b
	return &copy, nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByProvider(providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByUserAndStatus(userID string, status models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID && b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByProviderAndStatus(providerID string, status models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetActiveByProviderAndDate(providerID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date && b.IsActive() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetActiveByProviderDateStart(providerID, date, startTime string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date && b.StartTime == startTime && b.IsActive() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetRecent(limit int) ([]models.Booking, error) {
	out, _ := r.GetAll()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeBookingRepo) Count() (int64, error) {
	return int64(len(r.bookings)), nil
}

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	for _, b := range r.bookings {
		if b.ProviderID == booking.ProviderID && b.Date == booking.Date &&
			b.StartTime == booking.StartTime && b.IsActive() {
			return bookingRepo.ErrDuplicateActiveSlot
		}
	}
	copy := *booking
	r.bookings[booking.ID] = &copy
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus, meetingLink string) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	b.Status = status
	if meetingLink != "" {
		b.MeetingLink = meetingLink
	}
	return nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	delete(r.bookings, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	_, err := r.GetByEmail(email)
	return err == nil, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Count() (int64, error) { return int64(len(r.users)), nil }

func (r *fakeUserRepo) Create(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateSet(id string, fields map[string]interface{}) error { return nil }

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func newFakeProviderRepo(providers ...*models.Provider) *fakeProviderRepo {
	r := &fakeProviderRepo{providers: make(map[string]*models.Provider)}
	for _, p := range providers {
		r.providers[p.ID] = p
	}
	return r
}

func (r *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (r *fakeProviderRepo) GetByEmail(email string) (*models.Provider, error) {
	for _, p := range r.providers {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeProviderRepo) ExistsByEmail(email string) (bool, error) {
	_, err := r.GetByEmail(email)
	return err == nil, nil
}

func (r *fakeProviderRepo) ExistsByBarCouncilNumber(number string) (bool, error) {
	for _, p := range r.providers {
		if p.BarCouncilNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProviderRepo) GetAll() ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.providers {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProviderRepo) GetVerified() ([]models.Provider, error)            { return r.GetAll() }
func (r *fakeProviderRepo) GetPendingVerification() ([]models.Provider, error) { return nil, nil }
func (r *fakeProviderRepo) GetByCity(string) ([]models.Provider, error)        { return nil, nil }
func (r *fakeProviderRepo) GetByState(string) ([]models.Provider, error)       { return nil, nil }
func (r *fakeProviderRepo) GetByPracticeArea(string) ([]models.Provider, error) {
	return nil, nil
}
func (r *fakeProviderRepo) GetTopRated(int) ([]models.Provider, error)        { return nil, nil }
func (r *fakeProviderRepo) GetMostExperienced(int) ([]models.Provider, error) { return nil, nil }
func (r *fakeProviderRepo) Count() (int64, error)                             { return int64(len(r.providers)), nil }

func (r *fakeProviderRepo) Create(provider *models.Provider) error {
	r.providers[provider.ID] = provider
	return nil
}

func (r *fakeProviderRepo) Update(provider *models.Provider) error {
	r.providers[provider.ID] = provider
	return nil
}

func (r *fakeProviderRepo) UpdateSet(id string, fields map[string]interface{}) error { return nil }

func (r *fakeProviderRepo) IncrementCompletedSessions(id string) error {
	p, ok := r.providers[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.CompletedSessions++
	return nil
}

func (r *fakeProviderRepo) AddEarnings(id string, amount float64) error {
	p, ok := r.providers[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.TotalEarnings += amount
	return nil
}

func (r *fakeProviderRepo) Delete(id string) error {
	delete(r.providers, id)
	return nil
}

type fakeAdminRepo struct {
	admins []*models.Admin
}

func (r *fakeAdminRepo) GetByID(id string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAdminRepo) GetAll() ([]models.Admin, error) {
	var out []models.Admin
	for _, a := range r.admins {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAdminRepo) GetActive() ([]models.Admin, error) {
	var out []models.Admin
	for _, a := range r.admins {
		if a.IsActive {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAdminRepo) Count() (int64, error) { return int64(len(r.admins)), nil }

func (r *fakeAdminRepo) Create(admin *models.Admin) error {
	r.admins = append(r.admins, admin)
	return nil
}

func (r *fakeAdminRepo) Update(admin *models.Admin) error { return nil }

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo(services ...*models.Service) *fakeServiceRepo {
	r := &fakeServiceRepo{services: make(map[string]*models.Service)}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}

func (r *fakeServiceRepo) GetAll() ([]models.Service, error)               { return nil, nil }
func (r *fakeServiceRepo) GetAvailable() ([]models.Service, error)         { return nil, nil }
func (r *fakeServiceRepo) GetByProvider(string) ([]models.Service, error)  { return nil, nil }
func (r *fakeServiceRepo) GetByCategory(string) ([]models.Service, error)  { return nil, nil }
func (r *fakeServiceRepo) GetByPriceRange(_, _ float64) ([]models.Service, error) {
	return nil, nil
}
func (r *fakeServiceRepo) Search(string) ([]models.Service, error) { return nil, nil }

func (r *fakeServiceRepo) Create(service *models.Service) error {
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) Update(service *models.Service) error {
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) Delete(id string) error {
	delete(r.services, id)
	return nil
}

type sinkCall struct {
	recipient string
	title     string
	message   string
}

type fakeNotifier struct {
	providerCalls []sinkCall
	adminCalls    []sinkCall
	userCalls     []sinkCall
	fail          bool
}

func (n *fakeNotifier) NotifyProvider(providerID, title, message string) error {
	if n.fail {
		return fmt.Errorf("notification sink unavailable")
	}
	n.providerCalls = append(n.providerCalls, sinkCall{providerID, title, message})
	return nil
}

func (n *fakeNotifier) NotifyAdmin(adminID, title, message string, notifType models.NotificationType) error {
	if n.fail {
		return fmt.Errorf("notification sink unavailable")
	}
	n.adminCalls = append(n.adminCalls, sinkCall{adminID, title, message})
	return nil
}

func (n *fakeNotifier) NotifyUser(userID, title, message string, notifType models.NotificationType) error {
	if n.fail {
		return fmt.Errorf("notification sink unavailable")
	}
	n.userCalls = append(n.userCalls, sinkCall{userID, title, message})
	return nil
}

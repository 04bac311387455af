package booking

import (
	"testing"

	"legalsahyog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeProviderRepo, *fakeNotifier) {
	bookings := newFakeBookingRepo()
	users := newFakeUserRepo(&models.User{
		ID: "user-1", Email: "asha@example.com", FirstName: "Asha", LastName: "Verma",
	})
	providers := newFakeProviderRepo(&models.Provider{
		ID: "prov-1", Email: "ravi@example.com", FirstName: "Ravi", LastName: "Sharma",
		ConsultationFee: 2500.00, IsVerified: true, IsActive: true,
	})
	admins := &fakeAdminRepo{admins: []*models.Admin{
		{ID: "admin-1", Email: "root@example.com", IsActive: true},
		{ID: "admin-2", Email: "retired@example.com", IsActive: false},
	}}
	services := newFakeServiceRepo(&models.Service{
		ID: "svc-1", ProviderID: "prov-1", Title: "Contract Review", Price: 1000.00, IsAvailable: true,
	}, &models.Service{
		ID: "svc-free", ProviderID: "prov-1", Title: "Broken Entry", Price: 0,
	})
	notifier := &fakeNotifier{}

	svc := NewBookingService(bookings, users, providers, admins, services, notifier)
	return svc, bookings, providers, notifier
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		UserID:     "user-1",
		ProviderID: "prov-1",
		ServiceID:  "svc-1",
		Date:       "2026-09-15",
		StartTime:  "10:00",
		EndTime:    "11:00",
		Notes:      "Need help with a vendor agreement",
	}
}

func TestCreateBookingWithCatalogService(t *testing.T) {
	svc, bookings, _, notifier := newTestService()

	created, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.BookingPending, created.Status)
	assert.Equal(t, "svc-1", created.ServiceID)
	assert.Equal(t, 1000.00, created.TotalAmount)
	assert.Equal(t, 150.00, created.PlatformFee)
	assert.Equal(t, 850.00, created.Earnings)
	assert.Empty(t, created.MeetingLink)

	stored, err := bookings.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.TotalAmount, stored.TotalAmount)

	// One provider notification plus one per active admin.
	require.Len(t, notifier.providerCalls, 1)
	assert.Equal(t, "New Booking Received", notifier.providerCalls[0].title)
	require.Len(t, notifier.adminCalls, 1)
	assert.Equal(t, "admin-1", notifier.adminCalls[0].recipient)
	assert.Contains(t, notifier.adminCalls[0].message, "Asha Verma")
	assert.Contains(t, notifier.adminCalls[0].message, "Contract Review")
}

func TestCreateBookingWithConsultationFee(t *testing.T) {
	svc, _, _, _ := newTestService()

	req := validRequest()
	req.ServiceID = ""
	created, err := svc.CreateBooking(req)
	require.NoError(t, err)

	assert.Empty(t, created.ServiceID)
	assert.Equal(t, 2500.00, created.TotalAmount)
	assert.Equal(t, 375.00, created.PlatformFee)
	assert.Equal(t, 2125.00, created.Earnings)
}

func TestCreateBookingValidationFailures(t *testing.T) {
	svc, bookings, providers, _ := newTestService()

	t.Run("unknown user", func(t *testing.T) {
		req := validRequest()
		req.UserID = "ghost"
		_, err := svc.CreateBooking(req)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown provider", func(t *testing.T) {
		req := validRequest()
		req.ProviderID = "ghost"
		_, err := svc.CreateBooking(req)
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("unknown service", func(t *testing.T) {
		req := validRequest()
		req.ServiceID = "ghost"
		_, err := svc.CreateBooking(req)
		assert.ErrorIs(t, err, ErrInvalidService)
	})

	t.Run("non-positive service price", func(t *testing.T) {
		req := validRequest()
		req.ServiceID = "svc-free"
		_, err := svc.CreateBooking(req)
		assert.ErrorIs(t, err, ErrInvalidServicePrice)
	})

	t.Run("no consultation fee", func(t *testing.T) {
		providers.providers["prov-1"].ConsultationFee = 0
		defer func() { providers.providers["prov-1"].ConsultationFee = 2500.00 }()

		req := validRequest()
		req.ServiceID = ""
		_, err := svc.CreateBooking(req)
		assert.ErrorIs(t, err, ErrNoConsultationFee)
	})

	// None of the failures may have persisted anything.
	count, _ := bookings.Count()
	assert.Zero(t, count)
}

func TestCreateBookingSlotConflict(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)

	// Same provider, date and start time must be rejected.
	_, err = svc.CreateBooking(validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)

	// A different start time is fine.
	req := validRequest()
	req.StartTime = "11:00"
	_, err = svc.CreateBooking(req)
	assert.NoError(t, err)
}

func TestCreateBookingConflictFreedByCancellation(t *testing.T) {
	svc, _, _, _ := newTestService()

	first, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)

	_, err = svc.CancelBooking(first.ID)
	require.NoError(t, err)

	// A cancelled booking no longer blocks the slot.
	_, err = svc.CreateBooking(validRequest())
	assert.NoError(t, err)
}

func TestCreateBookingStorageLevelConflict(t *testing.T) {
	svc, bookings, _, _ := newTestService()

	// Simulate a racing insert that the pre-check cannot see: the record
	// lands in the store between the check and the insert.
	raced := &models.Booking{
		ID: "raced", ProviderID: "prov-1", Date: "2026-09-15", StartTime: "10:00",
		Status: models.BookingPending,
	}
	svcWrapped := *svc
	svcWrapped.Bookings = &racingBookingRepo{fakeBookingRepo: bookings, inject: raced}

	_, err := svcWrapped.CreateBooking(validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestNotifierFailureDoesNotFailCreation(t *testing.T) {
	svc, bookings, _, notifier := newTestService()
	notifier.fail = true

	created, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)

	stored, err := bookings.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, stored.Status)
}

func TestNilNotifierDoesNotFailCreation(t *testing.T) {
	svc, _, _, _ := newTestService()
	svc.Notifier = nil

	_, err := svc.CreateBooking(validRequest())
	assert.NoError(t, err)
}

func TestConfirmBookingSetsMeetingLink(t *testing.T) {
	svc, _, _, notifier := newTestService()

	created, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)

	confirmed, err := svc.ConfirmBooking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)
	assert.Contains(t, confirmed.MeetingLink, "legal-"+created.ID)

	// Confirming again must not fail and must still yield a link.
	again, err := svc.ConfirmBooking(created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, again.MeetingLink)

	require.NotEmpty(t, notifier.userCalls)
	assert.Equal(t, "user-1", notifier.userCalls[0].recipient)
	assert.Equal(t, "Booking Confirmed", notifier.userCalls[0].title)
}

func TestCompleteBookingCreditsProvider(t *testing.T) {
	svc, _, providers, _ := newTestService()

	created, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)

	before := *providers.providers["prov-1"]

	completed, err := svc.CompleteBooking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, completed.Status)

	after := providers.providers["prov-1"]
	assert.Equal(t, before.CompletedSessions+1, after.CompletedSessions)
	assert.Equal(t, before.TotalEarnings+created.Earnings, after.TotalEarnings)
}

func TestCancelBookingKeepsMeetingLink(t *testing.T) {
	svc, bookings, _, _ := newTestService()

	created, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)
	_, err = svc.ConfirmBooking(created.ID)
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
	assert.NotEmpty(t, cancelled.MeetingLink)

	stored, err := bookings.GetByID(created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.MeetingLink)
}

func TestTransitionsArePermissive(t *testing.T) {
	svc, _, _, _ := newTestService()

	created, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)

	// Transitions do not enforce a from-state: a cancelled booking can
	// still be completed.
	_, err = svc.CancelBooking(created.ID)
	require.NoError(t, err)
	completed, err := svc.CompleteBooking(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, completed.Status)
}

func TestUpdateBookingStatusRejectsUnknown(t *testing.T) {
	svc, _, _, _ := newTestService()

	created, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)

	_, err = svc.UpdateBookingStatus(created.ID, models.BookingStatus("FROZEN"))
	assert.Error(t, err)
}

func TestTransitionUnknownBooking(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.ConfirmBooking("ghost")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetAvailableSlots(t *testing.T) {
	svc, _, _, _ := newTestService()

	slots, err := svc.GetAvailableSlots("prov-1", "2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, SlotCatalog(), slots)

	_, err = svc.CreateBooking(validRequest())
	require.NoError(t, err)

	slots, err = svc.GetAvailableSlots("prov-1", "2026-09-15")
	require.NoError(t, err)
	assert.Len(t, slots, 7)
	assert.NotContains(t, slots, "10:00")

	// Completed bookings free their slot.
	req := validRequest()
	req.StartTime = "14:00"
	b, err := svc.CreateBooking(req)
	require.NoError(t, err)
	_, err = svc.CompleteBooking(b.ID)
	require.NoError(t, err)

	slots, err = svc.GetAvailableSlots("prov-1", "2026-09-15")
	require.NoError(t, err)
	assert.Contains(t, slots, "14:00")
}

// racingBookingRepo makes the pre-check miss a record that the insert then
// collides with.
type racingBookingRepo struct {
	*fakeBookingRepo
	inject *models.Booking
}

func (r *racingBookingRepo) GetActiveByProviderDateStart(providerID, date, startTime string) ([]models.Booking, error) {
	return nil, nil
}

func (r *racingBookingRepo) Create(booking *models.Booking) error {
	if r.inject != nil {
		r.fakeBookingRepo.bookings[r.inject.ID] = r.inject
		r.inject = nil
	}
	return r.fakeBookingRepo.Create(booking)
}

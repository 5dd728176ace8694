package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/macicado/barberagenda/internal/audit"
	domain "github.com/macicado/barberagenda/internal/domain/schedule"
	"github.com/macicado/barberagenda/internal/httperr"
	"github.com/macicado/barberagenda/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	cfg      *models.BusinessConfig
	cfgErr   error
	services map[string]models.Service
	bookings []*models.Booking
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	cfg := models.DefaultBusinessConfig()
	return &fakeRepo{
		cfg: &cfg,
		services: map[string]models.Service{
			"Corte Tradicional": {ID: 1, Name: "Corte Tradicional", Price: 60, Active: true},
			"Barba Completa":    {ID: 2, Name: "Barba Completa", Price: 45, Active: true},
		},
		nextID: 1,
	}
}

func (f *fakeRepo) ListBookingsForDate(_ context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsForMonth(_ context.Context, month string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if len(b.Date) >= 7 && b.Date[:7] == month {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	b.ID = f.nextID
	f.nextID++
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	stored := *b
	f.bookings = append(f.bookings, &stored)
	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			out := *b
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i, stored := range f.bookings {
		if stored.ID == b.ID {
			b.UpdatedAt = time.Now()
			updated := *b
			f.bookings[i] = &updated
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetConfig(_ context.Context) (*models.BusinessConfig, error) {
	if f.cfgErr != nil {
		return nil, f.cfgErr
	}
	out := *f.cfg
	return &out, nil
}

func (f *fakeRepo) SaveConfig(_ context.Context, cfg *models.BusinessConfig) error {
	stored := *cfg
	f.cfg = &stored
	return nil
}

func (f *fakeRepo) GetServiceByName(_ context.Context, name string) (*models.Service, error) {
	if svc, ok := f.services[name]; ok && svc.Active {
		out := svc
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

var _ domain.Repository = (*fakeRepo)(nil)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

// 2024-06-03 é uma segunda-feira
func monday() time.Time {
	return time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
}

// ======================================================
// AVAILABILITY
// ======================================================

func TestGetAvailability_OpenDayNoBookings(t *testing.T) {
	repo := newFakeRepo()
	repo.cfg.OpeningTime = "09:00"
	repo.cfg.ClosingTime = "11:00"
	repo.cfg.SlotIntervalMin = 30

	out, err := NewGetAvailability(repo).Execute(context.Background(), monday())

	require.NoError(t, err)
	assert.True(t, out.Open)
	assert.Equal(t, "2024-06-03", out.Date)

	require.Len(t, out.Slots, 5)
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00"}
	for i, sa := range out.Slots {
		assert.Equal(t, want[i], sa.Slot)
		assert.False(t, sa.Occupied)
	}
}

func TestGetAvailability_MarksOccupiedSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.cfg.OpeningTime = "09:00"
	repo.cfg.ClosingTime = "11:00"
	repo.cfg.SlotIntervalMin = 30
	repo.bookings = append(repo.bookings, &models.Booking{
		ID: 1, Date: "2024-06-03", TimeSlot: "10:00",
		Status: string(domain.StatusActive),
	})

	out, err := NewGetAvailability(repo).Execute(context.Background(), monday())

	require.NoError(t, err)
	for _, sa := range out.Slots {
		assert.Equal(t, sa.Slot == "10:00", sa.Occupied, "slot %s", sa.Slot)
	}
}

func TestGetAvailability_ClosedDay(t *testing.T) {
	repo := newFakeRepo()
	sunday := monday().AddDate(0, 0, -1)

	out, err := NewGetAvailability(repo).Execute(context.Background(), sunday)

	require.NoError(t, err)
	assert.False(t, out.Open)
	assert.Empty(t, out.Slots)
}

func TestGetAvailability_MissingConfigUsesDefault(t *testing.T) {
	repo := newFakeRepo()
	repo.cfgErr = gorm.ErrRecordNotFound

	out, err := NewGetAvailability(repo).Execute(context.Background(), monday())

	require.NoError(t, err)
	assert.True(t, out.Open)
	// default 09:00–18:30 a cada 30 min = 20 slots
	assert.Len(t, out.Slots, 20)
	assert.Equal(t, "09:00", out.Slots[0].Slot)
	assert.Equal(t, "18:30", out.Slots[19].Slot)
}

func TestGetAvailability_NonPositiveIntervalUsesDefault(t *testing.T) {
	repo := newFakeRepo()
	repo.cfg.OpeningTime = "09:00"
	repo.cfg.ClosingTime = "10:00"
	repo.cfg.SlotIntervalMin = 0

	out, err := NewGetAvailability(repo).Execute(context.Background(), monday())

	require.NoError(t, err)
	require.Len(t, out.Slots, 3)
	assert.Equal(t, "09:30", out.Slots[1].Slot)
}

// ======================================================
// CREATE (check-and-reserve)
// ======================================================

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ClientName:  "João Silva",
		ClientPhone: "(11) 91234-5678",
		ServiceName: "Corte Tradicional",
		Date:        "2024-06-03",
		Time:        "10:30",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, testDispatcher())

	b, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.NotEmpty(t, b.Reference)
	assert.Equal(t, string(domain.StatusActive), b.Status)
	assert.Equal(t, 60.0, b.ServicePrice)
	assert.Equal(t, "10:30", b.TimeSlot)
}

func TestCreateBooking_ConflictOnOccupiedSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = append(repo.bookings, &models.Booking{
		ID: 1, Date: "2024-06-03", TimeSlot: "10:00",
		Status: string(domain.StatusActive),
	})
	uc := NewCreateBooking(repo, testDispatcher())

	in := validInput()
	in.Time = "10:00"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// 10:30 continua livre
	in.Time = "10:30"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateBooking_CancelledBookingFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = append(repo.bookings, &models.Booking{
		ID: 1, Date: "2024-06-03", TimeSlot: "10:30",
		Status: string(domain.StatusCancelled),
	})
	uc := NewCreateBooking(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
}

func TestCreateBooking_ClosedDay(t *testing.T) {
	uc := NewCreateBooking(newFakeRepo(), testDispatcher())

	in := validInput()
	in.Date = "2024-06-02" // domingo

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "closed_day"))
}

func TestCreateBooking_SlotNotProducible(t *testing.T) {
	uc := NewCreateBooking(newFakeRepo(), testDispatcher())

	in := validInput()
	in.Time = "10:15"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))
}

func TestCreateBooking_MissingFields(t *testing.T) {
	uc := NewCreateBooking(newFakeRepo(), testDispatcher())

	in := validInput()
	in.ClientName = ""

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))
}

func TestCreateBooking_InvalidPhone(t *testing.T) {
	uc := NewCreateBooking(newFakeRepo(), testDispatcher())

	in := validInput()
	in.ClientPhone = "1234"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_phone"))
}

func TestCreateBooking_UnknownService(t *testing.T) {
	uc := NewCreateBooking(newFakeRepo(), testDispatcher())

	in := validInput()
	in.ServiceName = "Luzes"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func TestCancelBooking_FreesSlotForNextComputation(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateBooking(repo, testDispatcher())
	cancelUC := NewCancelBooking(repo, testDispatcher())

	b, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)

	cancelled, err := cancelUC.Execute(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	out, err := NewGetAvailability(repo).Execute(context.Background(), monday())
	require.NoError(t, err)
	for _, sa := range out.Slots {
		assert.False(t, sa.Occupied, "slot %s", sa.Slot)
	}
}

func TestFinalizeBooking(t *testing.T) {
	repo := newFakeRepo()
	b, err := NewCreateBooking(repo, testDispatcher()).Execute(context.Background(), validInput())
	require.NoError(t, err)

	finalized, err := NewFinalizeBooking(repo, testDispatcher()).Execute(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusFinalized), finalized.Status)
	require.NotNil(t, finalized.FinalizedAt)
}

func TestFinalizeBooking_CancelledIsTerminal(t *testing.T) {
	repo := newFakeRepo()
	b, err := NewCreateBooking(repo, testDispatcher()).Execute(context.Background(), validInput())
	require.NoError(t, err)

	_, err = NewCancelBooking(repo, testDispatcher()).Execute(context.Background(), b.ID)
	require.NoError(t, err)

	_, err = NewFinalizeBooking(repo, testDispatcher()).Execute(context.Background(), b.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelBooking_NotFound(t *testing.T) {
	_, err := NewCancelBooking(newFakeRepo(), testDispatcher()).Execute(context.Background(), 99)

	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateBooking_MoveToOccupiedSlot(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateBooking(repo, testDispatcher())

	first, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Time = "11:00"
	second, err := createUC.Execute(context.Background(), in)
	require.NoError(t, err)

	_, err = NewUpdateBooking(repo, testDispatcher()).Execute(context.Background(), second.ID, UpdateBookingInput{
		ClientName:  second.ClientName,
		ClientPhone: second.ClientPhone,
		ServiceName: second.ServiceName,
		Date:        second.Date,
		Time:        first.TimeSlot,
	})

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
}

func TestUpdateBooking_MoveToFreeSlot(t *testing.T) {
	repo := newFakeRepo()
	b, err := NewCreateBooking(repo, testDispatcher()).Execute(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := NewUpdateBooking(repo, testDispatcher()).Execute(context.Background(), b.ID, UpdateBookingInput{
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		ServiceName: b.ServiceName,
		Date:        b.Date,
		Time:        "11:30",
	})

	require.NoError(t, err)
	assert.Equal(t, "11:30", updated.TimeSlot)
}

func TestUpdateBooking_KeepingSlotDoesNotConflictWithItself(t *testing.T) {
	repo := newFakeRepo()
	b, err := NewCreateBooking(repo, testDispatcher()).Execute(context.Background(), validInput())
	require.NoError(t, err)

	_, err = NewUpdateBooking(repo, testDispatcher()).Execute(context.Background(), b.ID, UpdateBookingInput{
		ClientName:  "Outro Nome",
		ClientPhone: b.ClientPhone,
		ServiceName: b.ServiceName,
		Date:        b.Date,
		Time:        b.TimeSlot,
	})

	assert.NoError(t, err)
}

func TestUpdateBooking_ChangingServiceUpdatesPrice(t *testing.T) {
	repo := newFakeRepo()
	b, err := NewCreateBooking(repo, testDispatcher()).Execute(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := NewUpdateBooking(repo, testDispatcher()).Execute(context.Background(), b.ID, UpdateBookingInput{
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		ServiceName: "Barba Completa",
		Date:        b.Date,
		Time:        b.TimeSlot,
	})

	require.NoError(t, err)
	assert.Equal(t, "Barba Completa", updated.ServiceName)
	assert.Equal(t, 45.0, updated.ServicePrice)
}

func TestUpdateBooking_TerminalStateRejected(t *testing.T) {
	repo := newFakeRepo()
	b, err := NewCreateBooking(repo, testDispatcher()).Execute(context.Background(), validInput())
	require.NoError(t, err)

	_, err = NewFinalizeBooking(repo, testDispatcher()).Execute(context.Background(), b.ID)
	require.NoError(t, err)

	_, err = NewUpdateBooking(repo, testDispatcher()).Execute(context.Background(), b.ID, UpdateBookingInput{
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		ServiceName: b.ServiceName,
		Date:        b.Date,
		Time:        "11:30",
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

// ======================================================
// DASHBOARD
// ======================================================

func TestMonthlySummary(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []*models.Booking{
		{ID: 1, Date: "2024-06-03", TimeSlot: "09:00", Status: string(domain.StatusActive)},
		{ID: 2, Date: "2024-06-03", TimeSlot: "09:30", Status: string(domain.StatusFinalized)},
		{ID: 3, Date: "2024-06-04", TimeSlot: "09:00", Status: string(domain.StatusCancelled)},
		{ID: 4, Date: "2024-07-01", TimeSlot: "09:00", Status: string(domain.StatusActive)},
	}

	out, err := NewMonthlySummary(repo).Execute(context.Background(), "2024-06")

	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.Active)
	assert.Equal(t, 1, out.Finalized)
	assert.Equal(t, 1, out.Cancelled)

	require.Len(t, out.PerDay, 2)
	assert.Equal(t, DayCount{Date: "2024-06-03", Total: 2}, out.PerDay[0])
	assert.Equal(t, DayCount{Date: "2024-06-04", Total: 1}, out.PerDay[1])

	require.NotEmpty(t, out.TopDays)
	assert.Equal(t, "2024-06-03", out.TopDays[0].Date)
}

func TestMonthlySummary_EmptyMonth(t *testing.T) {
	out, err := NewMonthlySummary(newFakeRepo()).Execute(context.Background(), "2024-06")

	require.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.Empty(t, out.PerDay)
	assert.Empty(t, out.TopDays)
}

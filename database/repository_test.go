package database

import (
	"context"
	"testing"
	"time"

	"partnerapi/config"
	"partnerapi/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:", MaxRetries: 1}, true)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedEvent(t *testing.T, db *gorm.DB, price float64) *models.Event {
	t.Helper()
	event := &models.Event{
		Name:  gofakeit.Company(),
		Date:  time.Now().Add(24 * time.Hour).UTC(),
		Price: price,
	}
	require.NoError(t, NewEventRepository(db).InsertEvent(context.Background(), event))
	return event
}

func seedSpot(t *testing.T, db *gorm.DB, eventID, name string) *models.Spot {
	t.Helper()
	spot := &models.Spot{EventID: eventID, Name: name, Status: models.SpotAvailable}
	require.NoError(t, NewSpotRepository(db).InsertSpot(context.Background(), spot))
	return spot
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"}, true)
	require.Error(t, err)
}

func TestSpotRepository_FindEventByID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSpotRepository(db)
	event := seedEvent(t, db, 10)

	got, err := repo.FindEventByID(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, event.Name, got.Name)

	got, err = repo.FindEventByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSpotRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSpotRepository(db)
	e1 := seedEvent(t, db, 10)
	e2 := seedEvent(t, db, 10)

	a1 := seedSpot(t, db, e1.ID, "A1")
	seedSpot(t, db, e1.ID, "A2")
	b1 := seedSpot(t, db, e2.ID, "B1")
	assert.Len(t, a1.ID, 36)

	spots, err := repo.FindSpotsByEvent(ctx, e1.ID)
	require.NoError(t, err)
	assert.Len(t, spots, 2)

	got, err := repo.FindSpotByEventAndID(ctx, e1.ID, a1.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A1", got.Name)

	// 車位屬於其他活動時視為不存在
	got, err = repo.FindSpotByEventAndID(ctx, e1.ID, b1.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	updated, err := repo.UpdateSpotByEventAndID(ctx, e1.ID, a1.ID, models.SpotPatch{"status": models.SpotOccupied})
	require.NoError(t, err)
	assert.Equal(t, models.SpotOccupied, updated.Status)
	assert.Equal(t, "A1", updated.Name)

	unchanged, err := repo.UpdateSpotByEventAndID(ctx, e1.ID, a1.ID, models.SpotPatch{})
	require.NoError(t, err)
	assert.Equal(t, models.SpotOccupied, unchanged.Status)

	removed, err := repo.DeleteSpotByEventAndID(ctx, e1.ID, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, a1.ID, removed.ID)
	assert.Equal(t, models.SpotOccupied, removed.Status)

	got, err = repo.FindSpotByEventAndID(ctx, e1.ID, a1.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSpotRepository_MutateMissingReturnsRecordNotFound(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSpotRepository(db)
	e1 := seedEvent(t, db, 10)
	e2 := seedEvent(t, db, 10)
	spot := seedSpot(t, db, e1.ID, "A1")

	_, err := repo.UpdateSpotByEventAndID(ctx, e2.ID, spot.ID, models.SpotPatch{"name": "X"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.DeleteSpotByEventAndID(ctx, e1.ID, "missing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 未被刪除
	got, err := repo.FindSpotByEventAndID(ctx, e1.ID, spot.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestSpotRepository_DuplicateName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSpotRepository(db)
	event := seedEvent(t, db, 10)
	seedSpot(t, db, event.ID, "A1")

	err := repo.InsertSpot(ctx, &models.Spot{EventID: event.ID, Name: "A1", Status: models.SpotAvailable})
	require.ErrorIs(t, err, models.ErrSpotAlreadyExists)

	// 不同活動可使用相同名稱
	other := seedEvent(t, db, 10)
	seedSpot(t, db, other.ID, "A1")
}

func TestSpotRepository_CountSpotsByStatus(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSpotRepository(db)
	event := seedEvent(t, db, 10)
	seedSpot(t, db, event.ID, "A1")
	a2 := seedSpot(t, db, event.ID, "A2")
	_, err := repo.UpdateSpotByEventAndID(ctx, event.ID, a2.ID, models.SpotPatch{"status": models.SpotReserved})
	require.NoError(t, err)

	counts, err := repo.CountSpotsByStatus(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.StatusCount{
		{EventID: event.ID, Status: models.SpotAvailable, Total: 1},
		{EventID: event.ID, Status: models.SpotReserved, Total: 1},
	}, counts)
}

func TestEventRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewEventRepository(db)
	event := seedEvent(t, db, 10)
	spot := seedSpot(t, db, event.ID, "A1")

	updated, err := repo.UpdateEvent(ctx, event.ID, map[string]interface{}{"price": 25.5})
	require.NoError(t, err)
	assert.Equal(t, 25.5, updated.Price)
	assert.Equal(t, event.Name, updated.Name)

	_, err = repo.ReserveSpots(ctx, updated, []string{"A1"}, models.TicketFull, gofakeit.Email())
	require.NoError(t, err)

	removed, err := repo.DeleteEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, removed.ID)

	var spotCount, ticketCount int64
	require.NoError(t, db.Model(&models.Spot{}).Where("id = ?", spot.ID).Count(&spotCount).Error)
	require.NoError(t, db.Model(&models.Ticket{}).Where("spot_id = ?", spot.ID).Count(&ticketCount).Error)
	assert.Zero(t, spotCount)
	assert.Zero(t, ticketCount)

	_, err = repo.DeleteEvent(ctx, event.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.UpdateEvent(ctx, event.ID, map[string]interface{}{"name": "x"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEventRepository_ReserveSpots(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewEventRepository(db)
	spotRepo := NewSpotRepository(db)
	event := seedEvent(t, db, 100)
	a1 := seedSpot(t, db, event.ID, "A1")
	a2 := seedSpot(t, db, event.ID, "A2")
	email := gofakeit.Email()

	tickets, err := repo.ReserveSpots(ctx, event, []string{"A1", "A2"}, models.TicketHalf, email)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	for _, ticket := range tickets {
		assert.Equal(t, 50.0, ticket.Price)
		assert.Equal(t, email, ticket.Email)
		assert.NotEmpty(t, ticket.ID)
	}

	for _, id := range []string{a1.ID, a2.ID} {
		got, err := spotRepo.FindSpotByEventAndID(ctx, event.ID, id)
		require.NoError(t, err)
		assert.Equal(t, models.SpotReserved, got.Status)
	}

	var history int64
	require.NoError(t, db.Model(&models.ReservationHistory{}).Count(&history).Error)
	assert.Equal(t, int64(2), history)
}

func TestEventRepository_ReserveSpotsRollsBack(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewEventRepository(db)
	spotRepo := NewSpotRepository(db)
	event := seedEvent(t, db, 100)
	a1 := seedSpot(t, db, event.ID, "A1")
	a2 := seedSpot(t, db, event.ID, "A2")

	_, err := spotRepo.UpdateSpotByEventAndID(ctx, event.ID, a2.ID, models.SpotPatch{"status": models.SpotOccupied})
	require.NoError(t, err)

	_, err = repo.ReserveSpots(ctx, event, []string{"A1", "A2"}, models.TicketFull, gofakeit.Email())
	require.ErrorIs(t, err, models.ErrSpotNotAvailable)

	got, err := spotRepo.FindSpotByEventAndID(ctx, event.ID, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SpotAvailable, got.Status)

	var tickets int64
	require.NoError(t, db.Model(&models.Ticket{}).Count(&tickets).Error)
	assert.Zero(t, tickets)

	_, err = repo.ReserveSpots(ctx, event, []string{"A1", "Z9"}, models.TicketFull, gofakeit.Email())
	require.ErrorIs(t, err, models.ErrSpotNotFound)
	assert.Contains(t, err.Error(), "Z9")
}

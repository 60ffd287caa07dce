package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/teenspace/models"
)

func TestEventRepo_DateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	user, club := seedUserAndClub(t, db)
	repo := NewSQLiteEventRepo(db.Conn)
	ctx := context.Background()

	date, err := models.ParseDate("2026-10-15")
	require.NoError(t, err)

	event := &models.Event{
		Name:   "Fall Tournament",
		Date:   date,
		ClubID: club.ID,
		UserID: user.ID,
	}
	require.NoError(t, repo.Create(ctx, event))
	require.NotEmpty(t, event.ID)

	// TEXT kolonundan okunan tarih aynı güne parse edilmeli
	events, err := repo.GetByClubID(ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "2026-10-15", events[0].Date.String())
	require.Equal(t, "Fall Tournament", events[0].Name)
}

func TestEventRepo_GetAllOrdersByDate(t *testing.T) {
	db := newTestDB(t)
	user, club := seedUserAndClub(t, db)
	repo := NewSQLiteEventRepo(db.Conn)
	ctx := context.Background()

	for _, day := range []string{"2026-12-01", "2026-09-05", "2026-11-20"} {
		date, err := models.ParseDate(day)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, &models.Event{
			Name:   "event " + day,
			Date:   date,
			ClubID: club.ID,
			UserID: user.ID,
		}))
	}

	events, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, "2026-09-05", events[0].Date.String())
	require.Equal(t, "2026-11-20", events[1].Date.String())
	require.Equal(t, "2026-12-01", events[2].Date.String())
}

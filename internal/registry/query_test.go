package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"room-review-backend/internal/models"
)

func roomNumbers(rooms []models.Room) []string {
	out := make([]string, len(rooms))
	for i, r := range rooms {
		out[i] = r.Number
	}
	return out
}

func TestListRoomsFiltersOfficeAndFloor(t *testing.T) {
	reg := New(testOffices(), nil)
	for i := 0; i < 3; i++ {
		_, err := reg.CreateRoom("MG", "9")
		require.NoError(t, err)
	}
	_, err := reg.CreateRoom("FL", "2")
	require.NoError(t, err)

	got := reg.ListRooms(Filter{Office: "MG", Floor: "9"})
	assert.Equal(t, []string{"9.1", "9.2", "9.3"}, roomNumbers(got))

	// Repeated calls over unchanged state return the same order.
	again := reg.ListRooms(Filter{Office: "MG", Floor: "9"})
	assert.Equal(t, roomNumbers(got), roomNumbers(again))
}

func TestListRoomsFloorOrdering(t *testing.T) {
	rooms := []models.Room{
		{ID: "fl-10.1", Office: "FL", Floor: "10", Number: "10.1"},
		{ID: "fl-2.1", Office: "FL", Floor: "2", Number: "2.1"},
		{ID: "fl-mezanino.1", Office: "FL", Floor: "Mezanino", Number: "Mezanino.1"},
		{ID: "fl-t.1", Office: "FL", Floor: "T", Number: "T.1"},
		{ID: "fl-1.2", Office: "FL", Floor: "1", Number: "1.2"},
		{ID: "fl-1.1", Office: "FL", Floor: "1", Number: "1.1"},
	}
	reg := New(testOffices(), rooms)

	got := reg.ListRooms(Filter{})

	// Ground floor first, numeric floors ascending (10 after 2, not
	// lexical), unparseable labels last. Sequences ascend within a floor.
	assert.Equal(t, []string{"T.1", "1.1", "1.2", "2.1", "10.1", "Mezanino.1"}, roomNumbers(got))
}

func TestListRoomsTextSearch(t *testing.T) {
	reg := New(testOffices(), nil)
	a, _ := reg.CreateRoom("MG", "9")
	b, _ := reg.CreateRoom("FL", "2")
	_, _ = reg.CreateRoom("FL", "1")

	_, err := reg.RecordReview(b.ID, ReviewInput{Note: "Cabo HDMI com defeito"})
	require.NoError(t, err)

	assert.Equal(t, []string{a.Number}, roomNumbers(reg.ListRooms(Filter{Text: "mg"})))
	assert.Equal(t, []string{b.Number}, roomNumbers(reg.ListRooms(Filter{Text: "hdmi"})))
	assert.Equal(t, []string{a.Number}, roomNumbers(reg.ListRooms(Filter{Text: "9.1"})))
	assert.Empty(t, reg.ListRooms(Filter{Text: "projetor"}))
}

func TestListHistoryNewestFirst(t *testing.T) {
	reg := New(testOffices(), nil)
	current := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	reg.SetClock(func() time.Time { return current })

	room, err := reg.CreateRoom("MG", "9")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := reg.RecordReview(room.ID, ReviewInput{Note: string(rune('a' + i))})
		require.NoError(t, err)
		current = current.AddDate(0, 0, 7)
	}

	got, err := reg.ListHistory(room.ID, DateRange{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Note)
	assert.Equal(t, "a", got[2].Note)
}

func TestListHistoryDateRange(t *testing.T) {
	reg := New(testOffices(), nil)
	current := time.Date(2026, 1, 5, 15, 30, 0, 0, time.UTC)
	reg.SetClock(func() time.Time { return current })

	room, err := reg.CreateRoom("MG", "9")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := reg.RecordReview(room.ID, ReviewInput{Note: string(rune('a' + i))})
		require.NoError(t, err)
		current = current.AddDate(0, 0, 7)
	}
	// Reviews landed on Jan 5, Jan 12 and Jan 19, all at 15:30.

	start := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	got, err := reg.ListHistory(room.ID, DateRange{Start: &start})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Note)

	// An end bound given as a calendar date covers that entire day.
	end := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	got, err = reg.ListHistory(room.ID, DateRange{End: &end})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Note)

	got, err = reg.ListHistory(room.ID, DateRange{Start: &start, End: &end})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Note)
}

func TestListHistoryUnknownRoom(t *testing.T) {
	reg := New(testOffices(), nil)

	_, err := reg.ListHistory("mg-9.1", DateRange{})
	assert.ErrorIs(t, err, ErrNotFound)
}

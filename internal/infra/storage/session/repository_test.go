package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PacificPool/internal/domain"
)

func TestListByDateQuery(t *testing.T) {
	query, args, err := listByDateQuery(domain.MustParseDate("2025-01-15"))
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT s.id, s.session_date, s.session_time, s.max_capacity, s.available_spots, "+
			"COALESCE(i.name, ''), COALESCE(i.specialization, '') "+
			"FROM sessions s LEFT JOIN instructors i ON s.instructor_id = i.id "+
			"WHERE s.session_date = $1 ORDER BY s.session_time, s.id",
		query)
	assert.Equal(t, []interface{}{"2025-01-15"}, args)
}

func TestLockSpotsQuery(t *testing.T) {
	query, args, err := lockSpotsQuery(7)
	require.NoError(t, err)

	assert.Equal(t, "SELECT available_spots FROM sessions WHERE id = $1 FOR UPDATE", query)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestReserveSpotQuery_NeverBelowZero(t *testing.T) {
	query, args, err := reserveSpotQuery(7)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE sessions SET available_spots = available_spots - 1 WHERE id = $1 AND available_spots > $2", query)
	assert.Equal(t, []interface{}{int64(7), 0}, args)
}

func TestReleaseSpotQuery_NeverAboveCapacity(t *testing.T) {
	query, args, err := releaseSpotQuery(7)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE sessions SET available_spots = available_spots + 1 WHERE id = $1 AND available_spots < max_capacity", query)
	assert.Equal(t, []interface{}{int64(7)}, args)
}

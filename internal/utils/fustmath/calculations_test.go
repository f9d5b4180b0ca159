package fustmath_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
	"github.com/fust64/fust_beheer_app/internal/utils/fustmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.EventDateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSortChronological_TieBreakOnCreatedAt(t *testing.T) {
	t0 := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Minute)

	a := domain.Mutation{ID: 1, EventDate: date("2024-02-01"), UnloadedCage: 5, CreatedAt: t0}
	b := domain.Mutation{ID: 2, EventDate: date("2024-02-01"), UnloadedCage: 3, CreatedAt: t1}

	// Regardless of input order, the earlier created_at sorts first.
	for _, input := range [][]domain.Mutation{{a, b}, {b, a}} {
		ms := make([]domain.Mutation, len(input))
		copy(ms, input)
		fustmath.SortChronological(ms)
		assert.Equal(t, int64(1), ms[0].ID)
		assert.Equal(t, int64(2), ms[1].ID)
	}
}

func TestRunningBalances_SameDayAccumulation(t *testing.T) {
	t0 := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	ms := []domain.Mutation{
		{ID: 2, EventDate: date("2024-02-01"), UnloadedCage: 3, CreatedAt: t0.Add(time.Minute)},
		{ID: 1, EventDate: date("2024-02-01"), UnloadedCage: 5, CreatedAt: t0},
	}

	entries := fustmath.RunningBalances(ms)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, 5, entries[0].RunningCage)
	assert.Equal(t, int64(2), entries[1].ID)
	assert.Equal(t, 8, entries[1].RunningCage)
}

func TestRunningBalances_DeltaVersusRunning(t *testing.T) {
	ms := []domain.Mutation{
		{ID: 1, EventDate: date("2024-01-15"), LoadedCage: 10, LoadedPlate: 5, UnloadedCage: 2, UnloadedPlate: 1, CreatedAt: time.Unix(100, 0)},
		{ID: 2, EventDate: date("2024-01-20"), LoadedCage: 1, UnloadedCage: 4, CreatedAt: time.Unix(200, 0)},
	}

	entries := fustmath.RunningBalances(ms)
	require.Len(t, entries, 2)

	assert.Equal(t, -8, entries[0].DeltaCage)
	assert.Equal(t, -4, entries[0].DeltaPlate)
	assert.Equal(t, -8, entries[0].RunningCage)
	assert.Equal(t, -4, entries[0].RunningPlate)

	// Delta is per-event, running is cumulative.
	assert.Equal(t, 3, entries[1].DeltaCage)
	assert.Equal(t, -5, entries[1].RunningCage)
	assert.Equal(t, -4, entries[1].RunningPlate)
}

func TestRunningBalances_DoesNotMutateInput(t *testing.T) {
	ms := []domain.Mutation{
		{ID: 2, EventDate: date("2024-03-02"), CreatedAt: time.Unix(2, 0)},
		{ID: 1, EventDate: date("2024-03-01"), CreatedAt: time.Unix(1, 0)},
	}
	fustmath.RunningBalances(ms)
	assert.Equal(t, int64(2), ms[0].ID)
}

func TestLifetimeTotals_MatchesFinalRunningBalance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ms := make([]domain.Mutation, 50)
	for i := range ms {
		ms[i] = domain.Mutation{
			ID:            int64(i + 1),
			EventDate:     date("2024-01-01").AddDate(0, 0, rng.Intn(30)),
			LoadedCage:    rng.Intn(20),
			LoadedPlate:   rng.Intn(20),
			UnloadedCage:  rng.Intn(20),
			UnloadedPlate: rng.Intn(20),
			CreatedAt:     time.Unix(int64(rng.Intn(1000)), 0),
		}
	}

	totals := fustmath.LifetimeTotals(ms)
	entries := fustmath.RunningBalances(ms)
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]

	assert.Equal(t, totals.CageBalance(), last.RunningCage)
	assert.Equal(t, totals.PlateBalance(), last.RunningPlate)
}

func TestLifetimeTotals_OrderIndependent(t *testing.T) {
	ms := []domain.Mutation{
		{EventDate: date("2024-01-01"), LoadedCage: 3, UnloadedPlate: 7, CreatedAt: time.Unix(1, 0)},
		{EventDate: date("2024-01-05"), UnloadedCage: 2, LoadedPlate: 1, CreatedAt: time.Unix(2, 0)},
		{EventDate: date("2024-01-03"), LoadedCage: 4, UnloadedCage: 9, CreatedAt: time.Unix(3, 0)},
	}
	want := fustmath.LifetimeTotals(ms)

	reversed := []domain.Mutation{ms[2], ms[1], ms[0]}
	assert.Equal(t, want, fustmath.LifetimeTotals(reversed))

	// Re-aggregation of the unchanged set is idempotent.
	assert.Equal(t, want, fustmath.LifetimeTotals(ms))
}

func TestLifetimeTotals_Empty(t *testing.T) {
	totals := fustmath.LifetimeTotals(nil)
	assert.Equal(t, 0, totals.CageBalance())
	assert.Equal(t, 0, totals.PlateBalance())
}

func TestGroupByPartner(t *testing.T) {
	ms := []domain.Mutation{
		{ID: 1, PartnerID: 10},
		{ID: 2, PartnerID: 20},
		{ID: 3, PartnerID: 10},
	}
	grouped := fustmath.GroupByPartner(ms)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped[10], 2)
	assert.Len(t, grouped[20], 1)
}

package repository

import (
	"context"
	"ctchen222/student-tracker/internal/api/models"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	rdb := redis.NewClient(opts)
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRedisGradeCache_GlobalGrades(t *testing.T) {
	ctx := context.Background()
	cache := NewGradeCache(newTestRedis(t), time.Minute)

	_, version, ok, err := cache.GlobalGrades(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, version)

	want := []models.GlobalGrade{
		{ID: 2, LetterGrade: "B", PercentValue: 85},
		{ID: 1, LetterGrade: "A", PercentValue: 95},
	}
	require.NoError(t, cache.SetGlobalGrades(ctx, version, want))

	got, version, ok, err := cache.GlobalGrades(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	require.NoError(t, cache.InvalidateGlobalGrades(ctx))
	_, next, ok, err := cache.GlobalGrades(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, version+1, next)
}

func TestRedisGradeCache_StudentGradesAreKeyedPerStudent(t *testing.T) {
	ctx := context.Background()
	cache := NewGradeCache(newTestRedis(t), time.Minute)

	alex := []models.StudentGrade{{StudentID: "alex", LetterGrade: "A", PercentValue: 97}}
	require.NoError(t, cache.SetStudentGrades(ctx, "alex", 0, alex))
	require.NoError(t, cache.SetStudentGrades(ctx, "sam", 0, []models.StudentGrade{}))

	got, _, ok, err := cache.StudentGrades(ctx, "alex")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, alex, got)

	empty, _, ok, err := cache.StudentGrades(ctx, "sam")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, empty)

	require.NoError(t, cache.InvalidateStudentGrades(ctx, "alex"))
	_, _, ok, err = cache.StudentGrades(ctx, "alex")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, ok, err = cache.StudentGrades(ctx, "sam")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisGradeCache_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	rdb := newTestRedis(t)
	cache := NewGradeCache(rdb, time.Minute)

	require.NoError(t, cache.SetGlobalGrades(ctx, 0, []models.GlobalGrade{{ID: 1, LetterGrade: "A", PercentValue: 90}}))

	ttl, err := rdb.TTL(ctx, globalGradesKey).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestRedisGradeCache_FillAfterInvalidationIsDropped(t *testing.T) {
	ctx := context.Background()
	cache := NewGradeCache(newTestRedis(t), time.Minute)

	_, version, ok, err := cache.GlobalGrades(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	// An insert lands between the read and the fill.
	require.NoError(t, cache.InvalidateGlobalGrades(ctx))
	require.NoError(t, cache.SetGlobalGrades(ctx, version, []models.GlobalGrade{}))

	_, _, ok, err = cache.GlobalGrades(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, version, ok, err = cache.StudentGrades(ctx, "alex")
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, cache.InvalidateStudentGrades(ctx, "alex"))
	require.NoError(t, cache.SetStudentGrades(ctx, "alex", version, []models.StudentGrade{}))

	_, _, ok, err = cache.StudentGrades(ctx, "alex")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisGradeCache_GenerationsArePerStudent(t *testing.T) {
	ctx := context.Background()
	cache := NewGradeCache(newTestRedis(t), time.Minute)

	_, samVersion, _, err := cache.StudentGrades(ctx, "sam")
	require.NoError(t, err)

	require.NoError(t, cache.InvalidateStudentGrades(ctx, "alex"))
	sam := []models.StudentGrade{{StudentID: "sam", LetterGrade: "B", PercentValue: 81}}
	require.NoError(t, cache.SetStudentGrades(ctx, "sam", samVersion, sam))

	got, _, ok, err := cache.StudentGrades(ctx, "sam")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sam, got)
}

func TestNopGradeCache(t *testing.T) {
	ctx := context.Background()
	cache := NewNopGradeCache()

	require.NoError(t, cache.SetGlobalGrades(ctx, 0, []models.GlobalGrade{{ID: 1}}))
	_, _, ok, err := cache.GlobalGrades(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.SetStudentGrades(ctx, "alex", 0, []models.StudentGrade{{StudentID: "alex"}}))
	_, _, ok, err = cache.StudentGrades(ctx, "alex")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, cache.InvalidateGlobalGrades(ctx))
	assert.NoError(t, cache.InvalidateStudentGrades(ctx, "alex"))
}

func TestStudentGradesKey(t *testing.T) {
	assert.Equal(t, "grades:student:alex", studentGradesKey("alex"))
	assert.Equal(t, "grades:version:student:alex", studentGradesVersionKey("alex"))
}

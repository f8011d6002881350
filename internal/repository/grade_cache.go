package repository

import (
	"context"
	"ctchen222/student-tracker/internal/api/models"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=grade_cache.go -destination=mocks/mock_grade_cache.go -package=mocks

var tracer = otel.Tracer("repository.grade_cache")

const (
	globalGradesKey        = "grades:global"
	globalGradesVersionKey = "grades:version:global"
)

func studentGradesKey(studentID string) string {
	return fmt.Sprintf("grades:student:%s", studentID)
}

func studentGradesVersionKey(studentID string) string {
	return fmt.Sprintf("grades:version:student:%s", studentID)
}

// GradeCache caches grade listings. A miss is reported with ok == false and
// a nil error.
//
// Every read also returns the generation of the entry it looked at. A fill
// must pass that generation back and is dropped when an invalidation has
// happened since the read, so a listing loaded before an insert never
// replaces the invalidated entry.
type GradeCache interface {
	GlobalGrades(ctx context.Context) (grades []models.GlobalGrade, version int64, ok bool, err error)
	SetGlobalGrades(ctx context.Context, version int64, grades []models.GlobalGrade) error
	InvalidateGlobalGrades(ctx context.Context) error
	StudentGrades(ctx context.Context, studentID string) (grades []models.StudentGrade, version int64, ok bool, err error)
	SetStudentGrades(ctx context.Context, studentID string, version int64, grades []models.StudentGrade) error
	InvalidateStudentGrades(ctx context.Context, studentID string) error
}

var errStaleFill = errors.New("grade cache generation changed")

type redisGradeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewGradeCache creates a new Redis-based GradeCache whose entries expire after ttl.
// Generation counters do not expire.
func NewGradeCache(rdb *redis.Client, ttl time.Duration) GradeCache {
	return &redisGradeCache{rdb: rdb, ttl: ttl}
}

func (c *redisGradeCache) GlobalGrades(ctx context.Context) ([]models.GlobalGrade, int64, bool, error) {
	ctx, span := tracer.Start(ctx, "GradeCache.GlobalGrades")
	defer span.End()

	var grades []models.GlobalGrade
	version, ok, err := c.get(ctx, globalGradesKey, globalGradesVersionKey, &grades)
	span.SetAttributes(attribute.Bool("cache.hit", ok), attribute.Int64("cache.version", version))
	return grades, version, ok, err
}

func (c *redisGradeCache) SetGlobalGrades(ctx context.Context, version int64, grades []models.GlobalGrade) error {
	ctx, span := tracer.Start(ctx, "GradeCache.SetGlobalGrades")
	defer span.End()

	stored, err := c.set(ctx, globalGradesKey, globalGradesVersionKey, version, grades)
	span.SetAttributes(attribute.Bool("cache.stored", stored))
	return err
}

func (c *redisGradeCache) InvalidateGlobalGrades(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "GradeCache.InvalidateGlobalGrades")
	defer span.End()

	return c.invalidate(ctx, globalGradesKey, globalGradesVersionKey)
}

func (c *redisGradeCache) StudentGrades(ctx context.Context, studentID string) ([]models.StudentGrade, int64, bool, error) {
	ctx, span := tracer.Start(ctx, "GradeCache.StudentGrades")
	defer span.End()
	span.SetAttributes(attribute.String("student.id", studentID))

	var grades []models.StudentGrade
	version, ok, err := c.get(ctx, studentGradesKey(studentID), studentGradesVersionKey(studentID), &grades)
	span.SetAttributes(attribute.Bool("cache.hit", ok), attribute.Int64("cache.version", version))
	return grades, version, ok, err
}

func (c *redisGradeCache) SetStudentGrades(ctx context.Context, studentID string, version int64, grades []models.StudentGrade) error {
	ctx, span := tracer.Start(ctx, "GradeCache.SetStudentGrades")
	defer span.End()
	span.SetAttributes(attribute.String("student.id", studentID))

	stored, err := c.set(ctx, studentGradesKey(studentID), studentGradesVersionKey(studentID), version, grades)
	span.SetAttributes(attribute.Bool("cache.stored", stored))
	return err
}

func (c *redisGradeCache) InvalidateStudentGrades(ctx context.Context, studentID string) error {
	ctx, span := tracer.Start(ctx, "GradeCache.InvalidateStudentGrades")
	defer span.End()
	span.SetAttributes(attribute.String("student.id", studentID))

	return c.invalidate(ctx, studentGradesKey(studentID), studentGradesVersionKey(studentID))
}

// get reads the entry and its generation in one MULTI block. A missing
// generation counter is generation 0.
func (c *redisGradeCache) get(ctx context.Context, key, versionKey string, dest any) (int64, bool, error) {
	var dataCmd, versionCmd *redis.StringCmd
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		dataCmd = pipe.Get(ctx, key)
		versionCmd = pipe.Get(ctx, versionKey)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}

	version, err := versionCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, false, fmt.Errorf("failed to read %s from redis: %w", versionKey, err)
	}

	data, err := dataCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return version, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return 0, false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return version, true, nil
}

// set stores value under key only while versionKey still holds version.
// It reports whether the entry was written.
func (c *redisGradeCache) set(ctx context.Context, key, versionKey string, version int64, value any) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.ttl)
			return nil
		})
		return err
	}, versionKey)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errStaleFill), errors.Is(err, redis.TxFailedErr):
		return false, nil
	default:
		return false, fmt.Errorf("failed to write %s to redis: %w", key, err)
	}
}

// invalidate bumps the generation and drops the entry atomically.
func (c *redisGradeCache) invalidate(ctx context.Context, key, versionKey string) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate %s: %w", key, err)
	}
	return nil
}

type nopGradeCache struct{}

// NewNopGradeCache returns a GradeCache that never hits and never stores.
// It is used when Redis is not configured.
func NewNopGradeCache() GradeCache {
	return nopGradeCache{}
}

func (nopGradeCache) GlobalGrades(context.Context) ([]models.GlobalGrade, int64, bool, error) {
	return nil, 0, false, nil
}

func (nopGradeCache) SetGlobalGrades(context.Context, int64, []models.GlobalGrade) error { return nil }

func (nopGradeCache) InvalidateGlobalGrades(context.Context) error { return nil }

func (nopGradeCache) StudentGrades(context.Context, string) ([]models.StudentGrade, int64, bool, error) {
	return nil, 0, false, nil
}

func (nopGradeCache) SetStudentGrades(context.Context, string, int64, []models.StudentGrade) error {
	return nil
}

func (nopGradeCache) InvalidateStudentGrades(context.Context, string) error { return nil }

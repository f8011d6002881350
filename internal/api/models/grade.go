package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Percent bounds, inclusive.
const (
	MinPercent = 0
	MaxPercent = 100
)

var (
	ErrPercentMissing = errors.New("percent is missing")
	ErrPercentInvalid = errors.New("percent must be a number between 0 and 100")
)

// GlobalGrade represents a row of the StudentGrades table.
type GlobalGrade struct {
	ID           int64  `db:"id" json:"Id"`
	LetterGrade  string `db:"letter_grade" json:"LetterGrade"`
	PercentValue int    `db:"percent_value" json:"PercentValue"`
}

// StudentGrade represents a row of the LocalStudentGrade table.
type StudentGrade struct {
	StudentID    string `db:"student_id" json:"StudentID"`
	LetterGrade  string `db:"letter_grade" json:"LetterGrade"`
	PercentValue int    `db:"percent_value" json:"PercentValue"`
}

// GradePayload is the raw body of a create-grade request. Percent is kept
// undecoded because clients send it either as a JSON number or a string.
type GradePayload struct {
	LetterGrade string          `json:"letterGrade"`
	Percent     json.RawMessage `json:"percent"`
}

// GradeInput is a create-grade request that passed validation. StudentID is
// empty for global grades.
type GradeInput struct {
	StudentID   string
	LetterGrade string `validate:"required,notblank"`
	Percent     int
}

// ParsePercent coerces a raw JSON value into an integral percent in
// [MinPercent, MaxPercent]. Numbers and numeric strings are accepted.
func ParsePercent(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, ErrPercentMissing
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, ErrPercentInvalid
		}
		text = strings.TrimSpace(text)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrPercentInvalid
	}
	if f < MinPercent || f > MaxPercent || f != math.Trunc(f) {
		return 0, ErrPercentInvalid
	}
	return int(f), nil
}

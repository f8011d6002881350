package db

import (
	"fmt"

	"ctchen222/student-tracker/internal/config"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS StudentInfo (
		Username TEXT NOT NULL PRIMARY KEY,
		UserPassword TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS StudentGrades (
		Id INTEGER PRIMARY KEY AUTOINCREMENT,
		LetterGrade TEXT NOT NULL,
		PercentValue INTEGER NOT NULL CHECK (PercentValue BETWEEN 0 AND 100)
	)`,
	`CREATE TABLE IF NOT EXISTS LocalStudentGrade (
		Id INTEGER PRIMARY KEY AUTOINCREMENT,
		StudentID TEXT NOT NULL,
		LetterGrade TEXT NOT NULL,
		PercentValue INTEGER NOT NULL CHECK (PercentValue BETWEEN 0 AND 100)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_local_student_grade_student ON LocalStudentGrade (StudentID)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS StudentInfo (
		Username VARCHAR(255) NOT NULL PRIMARY KEY,
		UserPassword VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS StudentGrades (
		Id BIGSERIAL PRIMARY KEY,
		LetterGrade VARCHAR(255) NOT NULL,
		PercentValue INTEGER NOT NULL CHECK (PercentValue BETWEEN 0 AND 100)
	)`,
	`CREATE TABLE IF NOT EXISTS LocalStudentGrade (
		Id BIGSERIAL PRIMARY KEY,
		StudentID VARCHAR(255) NOT NULL,
		LetterGrade VARCHAR(255) NOT NULL,
		PercentValue INTEGER NOT NULL CHECK (PercentValue BETWEEN 0 AND 100)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_local_student_grade_student ON LocalStudentGrade (StudentID)`,
}

// MySQL has no CREATE INDEX IF NOT EXISTS, so the index is declared inline.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS StudentInfo (
		Username VARCHAR(255) NOT NULL PRIMARY KEY,
		UserPassword VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS StudentGrades (
		Id BIGINT AUTO_INCREMENT PRIMARY KEY,
		LetterGrade VARCHAR(255) NOT NULL,
		PercentValue INT NOT NULL CHECK (PercentValue BETWEEN 0 AND 100)
	)`,
	`CREATE TABLE IF NOT EXISTS LocalStudentGrade (
		Id BIGINT AUTO_INCREMENT PRIMARY KEY,
		StudentID VARCHAR(255) NOT NULL,
		LetterGrade VARCHAR(255) NOT NULL,
		PercentValue INT NOT NULL CHECK (PercentValue BETWEEN 0 AND 100),
		INDEX idx_local_student_grade_student (StudentID)
	)`,
}

func schemaFor(driver string) ([]string, error) {
	switch driver {
	case config.DriverSQLite:
		return sqliteSchema, nil
	case config.DriverPostgres:
		return postgresSchema, nil
	case config.DriverMySQL:
		return mysqlSchema, nil
	default:
		return nil, fmt.Errorf("no schema for driver %q", driver)
	}
}

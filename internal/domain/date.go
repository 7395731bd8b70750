package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date representa uma data de calendário (sem hora), sempre em UTC.
// No JSON e no banco é trafegada como YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf descarta a hora e o fuso de t
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate interpreta strings no formato YYYY-MM-DD. Valores com hora
// (ex: "2024-04-23 00:00:00+00:00") são aceitos e a hora é ignorada.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(time.DateOnly) {
		return Date{}, fmt.Errorf("data inválida: %q", s)
	}

	t, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)])
	if err != nil {
		return Date{}, fmt.Errorf("data inválida: %q: %w", s, err)
	}

	return DateOf(t), nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan implementa sql.Scanner. O Postgres devolve time.Time para colunas DATE,
// enquanto o SQLite devolve texto (principalmente em agregações como MAX).
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("tipo não suportado para Date: %T", src)
	}
}

// Value implementa driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

package activity

import (
	"errors"
	"testing"
	"time"
)

type formatRecencyTestCase struct {
	elapsed  time.Duration
	expected string
}

func TestFormatRecency(t *testing.T) {
	cases := []formatRecencyTestCase{
		{0, "Just now"},
		{59 * time.Second, "Just now"},
		{time.Minute, "1m ago"},
		{30 * time.Minute, "30m ago"},
		{59*time.Minute + 59*time.Second, "59m ago"},
		{90 * time.Minute, "1h ago"},
		{5400 * time.Second, "1h ago"},
		{23*time.Hour + 59*time.Minute, "23h ago"},
		{90000 * time.Second, "1d ago"},
		{72 * time.Hour, "3d ago"},
	}
	for _, c := range cases {
		got, err := FormatRecency(c.elapsed)
		if err != nil {
			t.Fatalf("FormatRecency(%v) returned error: %s", c.elapsed, err)
		}
		if got != c.expected {
			t.Fatalf("FormatRecency(%v) = %q, expected %q", c.elapsed, got, c.expected)
		}
	}
}

func TestFormatRecencyNegative(t *testing.T) {
	if _, err := FormatRecency(-time.Second); !errors.Is(err, ErrInvalidInput) {
		t.Fatal("negative elapsed should fail with ErrInvalidInput")
	}
}

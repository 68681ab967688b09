package env

import "testing"

func TestGetString(t *testing.T) {
	t.Setenv("DLOG_TEST_STR", "value")

	if got := GetString("DLOG_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetString = %q, want %q", got, "value")
	}
	if got := GetString("DLOG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString = %q, want %q", got, "fallback")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("DLOG_TEST_INT", "42")
	t.Setenv("DLOG_TEST_BAD", "not a number")

	if got := GetInt("DLOG_TEST_INT", 7); got != 42 {
		t.Errorf("GetInt = %d, want 42", got)
	}
	if got := GetInt("DLOG_TEST_BAD", 7); got != 7 {
		t.Errorf("GetInt with bad value = %d, want 7", got)
	}
	if got := GetInt("DLOG_TEST_MISSING", 7); got != 7 {
		t.Errorf("GetInt with missing key = %d, want 7", got)
	}
}

func TestGetInt64(t *testing.T) {
	t.Setenv("DLOG_TEST_INT64", "4294967296")

	if got := GetInt64("DLOG_TEST_INT64", 1); got != 4294967296 {
		t.Errorf("GetInt64 = %d, want 4294967296", got)
	}
	if got := GetInt64("DLOG_TEST_MISSING", 9); got != 9 {
		t.Errorf("GetInt64 with missing key = %d, want 9", got)
	}
}

package core

import (
	"bytes"
	"testing"
)

func TestPool_NewRecord(t *testing.T) {
	pool := NewPool(0)

	rec, ok := pool.NewRecord(SeverityWarning, "motor", []byte("overcurrent"))
	if !ok {
		t.Fatal("NewRecord failed with unlimited pool")
	}
	if rec.Severity != SeverityWarning {
		t.Errorf("Severity = %v, want %v", rec.Severity, SeverityWarning)
	}
	if rec.Producer != "motor" {
		t.Errorf("Producer = %q, want %q", rec.Producer, "motor")
	}
	if !bytes.Equal(rec.Text, []byte("overcurrent")) {
		t.Errorf("Text = %q, want %q", rec.Text, "overcurrent")
	}
	if rec.Static() {
		t.Error("pooled record must not be static")
	}
}

func TestPool_NewRecordCopiesText(t *testing.T) {
	pool := NewPool(0)
	src := []byte("original")

	rec, ok := pool.NewRecord(SeverityInfo, "main", src)
	if !ok {
		t.Fatal("NewRecord failed")
	}

	src[0] = 'X'
	if !bytes.Equal(rec.Text, []byte("original")) {
		t.Errorf("record text aliases caller buffer: got %q", rec.Text)
	}
}

func TestPool_NewRecordTruncatesAtNUL(t *testing.T) {
	pool := NewPool(0)

	rec, ok := pool.NewRecord(SeverityInfo, "main", []byte("visible\x00hidden"))
	if !ok {
		t.Fatal("NewRecord failed")
	}
	if !bytes.Equal(rec.Text, []byte("visible")) {
		t.Errorf("Text = %q, want %q", rec.Text, "visible")
	}
	if pool.InUse() != int64(len("visible")) {
		t.Errorf("InUse() = %d, want %d", pool.InUse(), len("visible"))
	}
}

func TestPool_BudgetExhaustion(t *testing.T) {
	pool := NewPool(10)

	first, ok := pool.NewRecord(SeverityInfo, "main", []byte("eightbyt"))
	if !ok {
		t.Fatal("first allocation should fit the budget")
	}

	if _, ok := pool.NewRecord(SeverityInfo, "main", []byte("four")); ok {
		t.Fatal("second allocation should exceed the budget")
	}

	// A smaller message still fits in the remainder.
	second, ok := pool.NewRecord(SeverityInfo, "main", []byte("ab"))
	if !ok {
		t.Fatal("two bytes should still fit")
	}

	pool.Release(first)
	pool.Release(second)
	if got := pool.InUse(); got != 0 {
		t.Errorf("InUse() after release = %d, want 0", got)
	}

	if _, ok := pool.NewRecord(SeverityInfo, "main", []byte("eightbyt")); !ok {
		t.Error("budget should be available again after release")
	}
}

func TestPool_ReleaseClearsRecord(t *testing.T) {
	pool := NewPool(0)

	rec, _ := pool.NewRecord(SeverityError, "sensor", []byte("fault"))
	pool.Release(rec)

	if rec.Text != nil {
		t.Error("Release must drop the text buffer")
	}
	if rec.Producer != "" {
		t.Error("Release must clear the producer")
	}
	if pool.InUse() != 0 {
		t.Errorf("InUse() = %d, want 0", pool.InUse())
	}

	// Releasing nil is a no-op.
	pool.Release(nil)
}

func TestNewSentinel(t *testing.T) {
	sent := NewSentinel("debug")

	if !sent.Static() {
		t.Fatal("sentinel must be static")
	}
	if sent.Severity != SeverityError {
		t.Errorf("sentinel Severity = %v, want %v", sent.Severity, SeverityError)
	}
	if sent.Producer != "debug" {
		t.Errorf("sentinel Producer = %q, want %q", sent.Producer, "debug")
	}
	if string(sent.Text) != QueueFullText {
		t.Errorf("sentinel Text = %q, want %q", sent.Text, QueueFullText)
	}

	pool := NewPool(0)
	pool.Release(sent)
	if sent.Text == nil {
		t.Error("Release must not touch a static record")
	}
	if pool.InUse() != 0 {
		t.Errorf("InUse() = %d, want 0", pool.InUse())
	}
}

func BenchmarkPool_NewRecord(b *testing.B) {
	pool := NewPool(0)
	text := []byte("benchmark message")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec, _ := pool.NewRecord(SeverityInfo, "bench", text)
		pool.Release(rec)
	}
}

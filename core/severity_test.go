package core

import (
	"testing"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "INFO"},
		{SeverityWarning, "WARNING"},
		{SeverityError, "ERROR"},
		{Severity(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverity_Tag(t *testing.T) {
	tests := []struct {
		severity Severity
		want     byte
	}{
		{SeverityInfo, 'I'},
		{SeverityWarning, 'W'},
		{SeverityError, 'E'},
		{Severity(42), '?'},
	}

	for _, tt := range tests {
		if got := tt.severity.Tag(); got != tt.want {
			t.Errorf("Severity(%d).Tag() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestSeverity_Ordering(t *testing.T) {
	if !(SeverityInfo < SeverityWarning && SeverityWarning < SeverityError) {
		t.Fatal("severity ordering must be Info < Warning < Error")
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name      string
		severity  Severity
		threshold Severity
		want      bool
	}{
		{"info at info threshold", SeverityInfo, SeverityInfo, true},
		{"info at warning threshold", SeverityInfo, SeverityWarning, false},
		{"info at error threshold", SeverityInfo, SeverityError, false},
		{"warning at warning threshold", SeverityWarning, SeverityWarning, true},
		{"warning at error threshold", SeverityWarning, SeverityError, false},
		{"error at info threshold", SeverityError, SeverityInfo, true},
		{"error at error threshold", SeverityError, SeverityError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLog(tt.severity, tt.threshold); got != tt.want {
				t.Errorf("ShouldLog(%v, %v) = %v, want %v", tt.severity, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"info", SeverityInfo},
		{"INFO", SeverityInfo},
		{"warn", SeverityWarning},
		{"Warning", SeverityWarning},
		{"error", SeverityError},
		{"ERROR", SeverityError},
		{"nonsense", SeverityInfo},
	}

	for _, tt := range tests {
		if got := ParseSeverity(tt.in); got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

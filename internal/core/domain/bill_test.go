package domain

import "testing"

func TestValidExtension(t *testing.T) {
	cases := []struct {
		fileName string
		want     bool
	}{
		{"receipt.jpg", true},
		{"receipt.jpeg", true},
		{"receipt.png", true},
		{"receipt.txt", false},
		{"receipt.pdf", false},
		{"receipt", false},
		{"receipt.", false},
		// Matching is case-sensitive.
		{"receipt.PNG", false},
		{"receipt.Jpg", false},
		// Only the last extension counts.
		{"archive.png.txt", false},
		{"archive.txt.png", true},
	}
	for _, tc := range cases {
		if got := ValidExtension(tc.fileName); got != tc.want {
			t.Errorf("ValidExtension(%q) = %v, want %v", tc.fileName, got, tc.want)
		}
	}
}

func TestNormalizeFileName(t *testing.T) {
	cases := []struct {
		declared string
		want     string
	}{
		{`C:\fakepath\file.png`, "file.png"},
		{"/tmp/upload/file.jpg", "file.jpg"},
		{"file.jpeg", "file.jpeg"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeFileName(tc.declared); got != tc.want {
			t.Errorf("NormalizeFileName(%q) = %q, want %q", tc.declared, got, tc.want)
		}
	}
}

func TestSubmissionStateTransitions(t *testing.T) {
	cases := []struct {
		from SubmissionState
		to   SubmissionState
		want bool
	}{
		{StateIdle, StateUploading, true},
		{StateUploading, StateUploaded, true},
		{StateUploading, StateFailed, true},
		{StateUploaded, StateSubmitting, true},
		{StateUploaded, StateUploading, true}, // re-selecting a file
		{StateSubmitting, StateNavigated, true},
		{StateSubmitting, StateUploaded, true}, // failed update, retryable
		{StateFailed, StateUploading, true},
		// A duplicate call must not re-enter an in-flight phase.
		{StateUploading, StateUploading, false},
		{StateSubmitting, StateSubmitting, false},
		{StateIdle, StateSubmitting, false},
		{StateNavigated, StateSubmitting, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

package handlers

import "testing"

func TestPDFDownloadSharerAvailability(t *testing.T) {
	cases := map[string]bool{
		"":                          true,
		"application/pdf":           true,
		"*/*":                       true,
		"application/*":             true,
		"text/html,application/pdf": true,
		"text/plain":                false,
		"application/json":          false,
	}
	for accept, want := range cases {
		s := &pdfDownloadSharer{accept: accept}
		if got := s.Available(); got != want {
			t.Fatalf("Available(%q) = %v, want %v", accept, got, want)
		}
	}
}

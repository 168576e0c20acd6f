package version

import "testing"

func TestInfo_Defaults(t *testing.T) {
	got := Info()
	if got.Service != "spamjar-api" || got.Version != "0.1.0" {
		t.Fatalf("unexpected build info %+v", got)
	}
	if got.Commit == "" || got.Date == "" {
		t.Fatalf("commit/date should have placeholders, got %+v", got)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"testing"
)

func TestHandleExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()

	src := newTestSession(t, true)
	exportResp, err := NewTransferHandler(src).HandleExport(ctx, &struct{}{})
	if err != nil {
		t.Fatalf("HandleExport returned error: %v", err)
	}

	raw, err := json.Marshal(exportResp.Body)
	if err != nil {
		t.Fatalf("failed to marshal export document: %v", err)
	}

	dst := newTestSession(t, false)
	importResp, err := NewTransferHandler(dst).HandleImport(ctx, &ImportRequest{RawBody: raw})
	if err != nil {
		t.Fatalf("HandleImport returned error: %v", err)
	}
	if len(importResp.Body.Applied) != 9 {
		t.Errorf("expected 9 applied collections, got %v", importResp.Body.Applied)
	}

	if len(dst.Guests()) != len(src.Guests()) {
		t.Errorf("guest counts differ after import: %d vs %d", len(dst.Guests()), len(src.Guests()))
	}
	if dst.Setup().BrideName != src.Setup().BrideName {
		t.Error("setup differs after import")
	}
}

func TestHandleImportRejectsGarbage(t *testing.T) {
	session := newTestSession(t, true)
	handler := NewTransferHandler(session)
	guestsBefore := len(session.Guests())

	_, err := handler.HandleImport(context.Background(), &ImportRequest{RawBody: []byte("not json at all")})
	if err == nil {
		t.Fatal("expected error for malformed upload")
	}

	if len(session.Guests()) != guestsBefore {
		t.Error("rejected import modified state")
	}
}

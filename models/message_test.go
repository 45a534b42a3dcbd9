package models

import "testing"

func TestConversationIDIsOrderIndependent(t *testing.T) {
	a := ConversationID("user-a", "user-b")
	b := ConversationID("user-b", "user-a")
	if a != b {
		t.Fatalf("expected identical keys, got %q and %q", a, b)
	}
	if a != "user-a#user-b" {
		t.Fatalf("unexpected key %q", a)
	}
}

func TestExchangeParticipantHelpers(t *testing.T) {
	e := Exchange{RequesterID: "user-a", ProviderID: "user-b"}

	if !e.IsParticipant("user-a") || !e.IsParticipant("user-b") {
		t.Fatal("participants not recognized")
	}
	if e.IsParticipant("user-c") {
		t.Fatal("outsider recognized as participant")
	}
	if e.OtherParticipant("user-a") != "user-b" || e.OtherParticipant("user-b") != "user-a" {
		t.Fatal("OtherParticipant returned wrong user")
	}
}

func TestValidExchangeStatus(t *testing.T) {
	for _, s := range []string{ExchangeProposed, ExchangeAccepted, ExchangeDeclined, ExchangeCancelled, ExchangeCompleted} {
		if !ValidExchangeStatus(s) {
			t.Errorf("status %q rejected", s)
		}
	}
	if ValidExchangeStatus("archived") {
		t.Error("unknown status accepted")
	}
}

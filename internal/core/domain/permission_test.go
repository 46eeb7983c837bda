package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPermissionsFor_AdminIsWildcard(t *testing.T) {
	perms := PermissionsFor(RoleAdmin)
	if !perms.IsWildcard() || len(perms) != 1 {
		t.Fatalf("expected admin to hold only the wildcard, got %v", perms.Slice())
	}
	if !perms.Grants(PermBillingRead) {
		t.Fatalf("wildcard should grant billing.read")
	}
}

func TestPermissionsFor_OnlyAdminHoldsWildcard(t *testing.T) {
	for _, r := range Roles {
		if r == RoleAdmin {
			continue
		}
		if PermissionsFor(r).IsWildcard() {
			t.Fatalf("role %s must not hold the wildcard", r)
		}
	}
	if len(PermissionsFor(RoleUnknown)) != 0 {
		t.Fatalf("unknown role should have no permissions")
	}
}

func TestPermissionsFor_ReturnsCopy(t *testing.T) {
	a := PermissionsFor(RoleRecruiter)
	delete(a, PermJobsWrite)
	if !PermissionsFor(RoleRecruiter).Has(PermJobsWrite) {
		t.Fatalf("mutating a returned set must not change the table")
	}
}

func TestPermissionSet_GrantsAnyUsesOR(t *testing.T) {
	set := NewPermissionSet(PermCandidatesRead)

	if set.GrantsAny(PermJobsWrite) {
		t.Fatalf("expected jobs.write to be denied")
	}
	if !set.GrantsAny(PermJobsWrite, PermCandidatesRead) {
		t.Fatalf("expected any-of check to pass when one permission is held")
	}
	if set.GrantsAny() {
		t.Fatalf("expected empty requirement list to grant nothing")
	}
	if !NewPermissionSet(PermissionWildcard).GrantsAny(PermJobsWrite) {
		t.Fatalf("wildcard should satisfy any requirement")
	}
}

func TestPermissionSet_JSONIsSortedArray(t *testing.T) {
	set := NewPermissionSet(PermJobsRead, PermBillingRead, PermCandidatesRead)
	b, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `["billing.read","candidates.read","jobs.read"]` {
		t.Fatalf("unexpected json: %s", b)
	}

	var back PermissionSet
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(set) {
		t.Fatalf("expected %v, got %v", set.Slice(), back.Slice())
	}
}

func TestSessionSnapshot_WireFormat(t *testing.T) {
	snap := SessionSnapshot{
		Identity:    NewIdentity("usr_1", "client@prorecruit.com", "Client", RoleClient),
		IssuedToken: "tok",
		ExpiresAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	b, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	for _, key := range []string{"identity", "issuedToken", "expiresAt"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("missing key %q in %s", key, b)
		}
	}
	if len(raw) != 3 {
		t.Fatalf("unexpected extra keys in %s", b)
	}
}

func TestSessionSnapshot_Validate(t *testing.T) {
	ok := SessionSnapshot{Identity: NewIdentity("usr_1", "a@b.c", "A", RoleVendor)}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected valid snapshot, got %v", err)
	}

	missingID := ok
	missingID.Identity.ID = ""
	if err := missingID.Validate(); err == nil {
		t.Fatalf("expected error for empty id")
	}

	badRole := ok
	badRole.Identity.Role = RoleUnknown
	if err := badRole.Validate(); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

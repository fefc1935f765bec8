//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"household-app-go/internal/config"
	householddomain "household-app-go/internal/domain/household"
	shoppingdomain "household-app-go/internal/domain/shopping"
	tripdomain "household-app-go/internal/domain/trip"
	wishlistdomain "household-app-go/internal/domain/wishlist"
	"household-app-go/internal/kvstore"
	"household-app-go/internal/repository"
	"household-app-go/internal/transport/httpserver"
	"household-app-go/internal/transport/httpserver/handler"
	"household-app-go/pkg/logger"
)

const (
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUserEmail = "parent@example.com"
)

type testEnv struct {
	server *httptest.Server
}

// setupE2E wires the full application in offline mode: the router runs
// against the in-memory store, no postgres needed.
func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Config{
		HTTPPort:    "0",
		OfflineMode: true,
	}

	log := logger.NewFromEnv()
	store := kvstore.NewMemory()

	households := householddomain.NewService(repository.NewHouseholdRepository(cfg, nil, store), log)
	wishlists := wishlistdomain.NewService(repository.NewWishlistRepository(cfg, nil, store), log)
	shopping := shoppingdomain.NewService(repository.NewShoppingRepository(cfg, nil, store), log)
	trips := tripdomain.NewService(repository.NewTripRepository(cfg, nil, store), log)

	handlers := handler.New(households, wishlists, shopping, trips, log)
	router := httpserver.NewRouter(cfg, handlers)
	server := httptest.NewServer(router)

	t.Cleanup(server.Close)
	return &testEnv{server: server}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, authenticated bool) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("X-User-ID", testUserID)
		req.Header.Set("X-User-Email", testUserEmail)
		req.Header.Set("X-User-Name", "Parent")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func decodeInto(t *testing.T, data []byte, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, dst); err != nil {
		t.Fatalf("unmarshal %s: %v", string(data), err)
	}
}

func TestOfflineRoundTrip(t *testing.T) {
	env := setupE2E(t)

	resp, _ := env.do(t, http.MethodGet, "/api/health", nil, false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: got %d", resp.StatusCode)
	}

	resp, _ = env.do(t, http.MethodGet, "/api/households", nil, false)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated list: got %d, want 401", resp.StatusCode)
	}

	var household struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	resp, data := env.do(t, http.MethodPost, "/api/households/ensure-default", nil, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ensure-default: got %d: %s", resp.StatusCode, data)
	}
	decodeInto(t, data, &household)
	if household.ID == "" || household.Name != "My Household" {
		t.Fatalf("unexpected default household: %+v", household)
	}

	// Idempotent: a second call resolves to the same household.
	resp, data = env.do(t, http.MethodPost, "/api/households/ensure-default", nil, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ensure-default again: got %d", resp.StatusCode)
	}
	var again struct {
		ID string `json:"id"`
	}
	decodeInto(t, data, &again)
	if again.ID != household.ID {
		t.Fatalf("ensure-default created a second household: %s vs %s", again.ID, household.ID)
	}

	var members []struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	resp, data = env.do(t, http.MethodGet, "/api/households/"+household.ID+"/members", nil, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list members: got %d", resp.StatusCode)
	}
	decodeInto(t, data, &members)
	if len(members) != 1 || members[0].Role != "owner" {
		t.Fatalf("expected a single owner member, got %+v", members)
	}

	var wishlist struct {
		ID        string `json:"id"`
		ShareSlug string `json:"share_slug"`
		IsPublic  bool   `json:"is_public"`
	}
	resp, data = env.do(t, http.MethodPost, "/api/wishlists", map[string]interface{}{
		"household_id": household.ID,
		"title":        "Birthday",
		"visibility":   "public",
	}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create wishlist: got %d: %s", resp.StatusCode, data)
	}
	decodeInto(t, data, &wishlist)
	if wishlist.ShareSlug == "" || !wishlist.IsPublic {
		t.Fatalf("public wishlist missing slug or flag: %+v", wishlist)
	}

	var item struct {
		ID         string `json:"id"`
		IsReserved bool   `json:"is_reserved"`
	}
	resp, data = env.do(t, http.MethodPost, "/api/wishlists/"+wishlist.ID+"/items", map[string]interface{}{
		"name": "Lego set",
	}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add item: got %d: %s", resp.StatusCode, data)
	}
	decodeInto(t, data, &item)

	// Share link works without identity.
	var shared struct {
		Wishlist struct {
			ID string `json:"id"`
		} `json:"wishlist"`
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	resp, data = env.do(t, http.MethodGet, "/api/shared/"+wishlist.ShareSlug, nil, false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("shared wishlist: got %d: %s", resp.StatusCode, data)
	}
	decodeInto(t, data, &shared)
	if shared.Wishlist.ID != wishlist.ID || len(shared.Items) != 1 {
		t.Fatalf("unexpected shared payload: %+v", shared)
	}

	// Reserve anonymously, then try to release with the wrong email.
	resp, data = env.do(t, http.MethodPost, "/api/wishlist-items/"+item.ID+"/reservation", map[string]string{
		"email": "aunt@example.com",
		"name":  "Aunt",
	}, false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reserve: got %d: %s", resp.StatusCode, data)
	}
	decodeInto(t, data, &item)
	if !item.IsReserved {
		t.Fatalf("item not reserved after toggle")
	}

	resp, _ = env.do(t, http.MethodPost, "/api/wishlist-items/"+item.ID+"/reservation", map[string]string{
		"email": "stranger@example.com",
	}, false)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("release with wrong email: got %d, want 403", resp.StatusCode)
	}

	resp, data = env.do(t, http.MethodPost, "/api/wishlist-items/"+item.ID+"/reservation", map[string]string{
		"email": "aunt@example.com",
	}, false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("release: got %d: %s", resp.StatusCode, data)
	}
	decodeInto(t, data, &item)
	if item.IsReserved {
		t.Fatalf("item still reserved after release")
	}

	var list struct {
		ID string `json:"id"`
	}
	resp, data = env.do(t, http.MethodPost, "/api/households/"+household.ID+"/shopping-lists", map[string]string{
		"name": "Groceries",
	}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create shopping list: got %d: %s", resp.StatusCode, data)
	}
	decodeInto(t, data, &list)

	var shoppingItem struct {
		ID        string `json:"id"`
		IsChecked bool   `json:"is_checked"`
	}
	resp, data = env.do(t, http.MethodPost, "/api/shopping-lists/"+list.ID+"/items", map[string]string{
		"name": "Milk",
	}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add shopping item: got %d: %s", resp.StatusCode, data)
	}
	decodeInto(t, data, &shoppingItem)

	resp, data = env.do(t, http.MethodPost, "/api/shopping-items/"+shoppingItem.ID+"/toggle", map[string]bool{
		"is_checked": true,
	}, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("toggle shopping item: got %d", resp.StatusCode)
	}
	decodeInto(t, data, &shoppingItem)
	if !shoppingItem.IsChecked {
		t.Fatalf("shopping item not checked after toggle")
	}

	var trip struct {
		ID string `json:"id"`
	}
	resp, data = env.do(t, http.MethodPost, "/api/households/"+household.ID+"/trips", map[string]string{
		"name":        "Summer holiday",
		"destination": "Lisbon",
		"starts_on":   "2026-07-01",
		"ends_on":     "2026-07-14",
	}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create trip: got %d: %s", resp.StatusCode, data)
	}
	decodeInto(t, data, &trip)

	resp, data = env.do(t, http.MethodPost, "/api/trips/"+trip.ID+"/packing-items", map[string]interface{}{
		"name":     "Sunscreen",
		"quantity": 2,
	}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add packing item: got %d: %s", resp.StatusCode, data)
	}

	// Deleting the trip cascades to its children.
	resp, _ = env.do(t, http.MethodDelete, "/api/trips/"+trip.ID, nil, true)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete trip: got %d", resp.StatusCode)
	}
	resp, _ = env.do(t, http.MethodGet, "/api/trips/"+trip.ID, nil, true)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("trip after delete: got %d, want 404", resp.StatusCode)
	}
}

func TestSharedSlugPrivacy(t *testing.T) {
	env := setupE2E(t)

	resp, data := env.do(t, http.MethodPost, "/api/households/ensure-default", nil, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ensure-default: got %d", resp.StatusCode)
	}
	var household struct {
		ID string `json:"id"`
	}
	decodeInto(t, data, &household)

	var wishlist struct {
		ID        string `json:"id"`
		ShareSlug string `json:"share_slug"`
	}
	resp, data = env.do(t, http.MethodPost, "/api/wishlists", map[string]interface{}{
		"household_id": household.ID,
		"title":        "Secret list",
		"visibility":   "private",
	}, true)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create wishlist: got %d: %s", resp.StatusCode, data)
	}
	decodeInto(t, data, &wishlist)

	// A private wishlist's slug resolves exactly like a missing one.
	resp, _ = env.do(t, http.MethodGet, "/api/shared/"+wishlist.ShareSlug, nil, false)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("private slug: got %d, want 404", resp.StatusCode)
	}
	resp, _ = env.do(t, http.MethodGet, "/api/shared/no-such-slug", nil, false)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing slug: got %d, want 404", resp.StatusCode)
	}
}

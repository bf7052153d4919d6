package loyalty

import "testing"

func TestAccountStartsEmpty(t *testing.T) {
	if got := NewAccount().Points(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestAddAccumulates(t *testing.T) {
	account := NewAccount()
	account.Add(10)
	account.Add(5)
	if got := account.Points(); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
}

func TestAddIgnoresNonPositive(t *testing.T) {
	account := NewAccount()
	account.Add(-5)
	account.Add(0)
	if got := account.Points(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestDeductReturnsActualAmount(t *testing.T) {
	cases := []struct {
		balance, ask, removed, left float64
	}{
		{10, 3, 3, 7},
		{5, 10, 5, 0},
		{0, 4, 0, 0},
		{7, 0, 0, 7},
		{7, -2, 0, 7},
	}
	for _, tc := range cases {
		account := NewAccount()
		account.Add(tc.balance)
		if got := account.Deduct(tc.ask); got != tc.removed {
			t.Fatalf("balance %v, deduct %v: removed %v, want %v", tc.balance, tc.ask, got, tc.removed)
		}
		if got := account.Points(); got != tc.left {
			t.Fatalf("balance %v, deduct %v: left %v, want %v", tc.balance, tc.ask, got, tc.left)
		}
	}
}

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore()
	id := store.Create()
	if id == "" {
		t.Fatal("expected a card id")
	}
	account, ok := store.Get(id)
	if !ok || account == nil {
		t.Fatal("expected the created account")
	}
	if _, ok := store.Get("missing"); ok {
		t.Fatal("unknown card must not resolve")
	}
}

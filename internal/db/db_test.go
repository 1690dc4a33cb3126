package db

import (
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Verify tables exist by querying each one.
	tables := []string{
		"products", "product_platforms", "queries",
		"wishlist_items", "clicks", "profile_links", "posts",
	}

	for _, table := range tables {
		var count int
		err := d.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestWishlistUniqueConstraint(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO products (id, title) VALUES ('p1', 'Shirt')`); err != nil {
		t.Fatalf("insert product: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO wishlist_items (id, user_id, product_id) VALUES ('w1', 'u1', 'p1')`); err != nil {
		t.Fatalf("insert wishlist item: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO wishlist_items (id, user_id, product_id) VALUES ('w2', 'u1', 'p1')`); err == nil {
		t.Error("duplicate wishlist item should violate the unique constraint")
	}
}

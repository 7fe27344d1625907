package domain

import "testing"

func TestNormalizeResolvesAliases(t *testing.T) {
	req := BlogRequest{
		Topic:          " Grand Opening ",
		RestaurantName: "Joe's Diner",
		RestaurantType: "restaurant",
		Cuisine:        "american",
	}
	req.Normalize()

	if req.Topic != "Grand Opening" {
		t.Fatalf("topic = %q", req.Topic)
	}
	if req.MainName != "Joe's Diner" {
		t.Fatalf("mainName = %q", req.MainName)
	}
	if req.Type != "restaurant" {
		t.Fatalf("type = %q", req.Type)
	}
	if req.Industry != "american" {
		t.Fatalf("industry = %q", req.Industry)
	}
	if req.RestaurantName != "" || req.RestaurantType != "" || req.Cuisine != "" {
		t.Fatal("alias fields must be cleared after normalization")
	}
}

func TestNormalizePrefersCanonicalFields(t *testing.T) {
	req := BlogRequest{
		Topic:          "Menu Update",
		MainName:       "Modern Name",
		RestaurantName: "Legacy Name",
		Industry:       "hospitality",
		Cuisine:        "thai",
	}
	req.Normalize()

	if req.MainName != "Modern Name" {
		t.Fatalf("mainName = %q, canonical field must win", req.MainName)
	}
	if req.Industry != "hospitality" {
		t.Fatalf("industry = %q, canonical field must win", req.Industry)
	}
}

package bloggen

import (
	"testing"

	"server/internal/domain"
)

func TestAnalyzeImagesEmpty(t *testing.T) {
	if got := AnalyzeImages(nil); got != nil {
		t.Fatalf("expected nil analysis for no images, got %#v", got)
	}
	if got := AnalyzeImages([]domain.ImageDescriptor{}); got != nil {
		t.Fatalf("expected nil analysis for empty slice, got %#v", got)
	}
}

func TestAnalyzeImagesSingleImageIsHero(t *testing.T) {
	analysis := AnalyzeImages([]domain.ImageDescriptor{
		{Name: "dish_1.jpg", Type: "image/jpeg", Size: 1024},
	})
	if analysis == nil {
		t.Fatal("expected analysis")
	}
	if analysis.TotalImages != 1 {
		t.Fatalf("totalImages = %d, want 1", analysis.TotalImages)
	}
	detail := analysis.ImageDetails[0]
	if detail.ID != 1 {
		t.Fatalf("id = %d, want 1", detail.ID)
	}
	if detail.SuggestedPlacement != "hero-image" {
		t.Fatalf("placement = %q, want hero-image", detail.SuggestedPlacement)
	}
	if detail.SuggestedCaption != "Featured image: Dish 1" {
		t.Fatalf("caption = %q", detail.SuggestedCaption)
	}
	if detail.Description != "Image 1: dish_1.jpg" {
		t.Fatalf("description = %q", detail.Description)
	}
	if len(analysis.IntegrationSuggestions) != 1 {
		t.Fatalf("suggestions = %#v, want exactly one", analysis.IntegrationSuggestions)
	}
}

func TestAnalyzeImagesPlacementOrder(t *testing.T) {
	images := make([]domain.ImageDescriptor, 5)
	for i := range images {
		images[i] = domain.ImageDescriptor{Name: "img.png", Type: "image/png", Size: 10}
	}
	analysis := AnalyzeImages(images)
	want := []string{"hero-image", "after-introduction", "mid-content", "gallery-section", "gallery-section"}
	for i, placement := range want {
		if got := analysis.ImageDetails[i].SuggestedPlacement; got != placement {
			t.Fatalf("placement[%d] = %q, want %q", i, got, placement)
		}
	}
}

func TestSuggestedCaptionCycles(t *testing.T) {
	for i := 0; i < len(captionTemplates); i++ {
		a := suggestedCaption("team-photo.png", i)
		b := suggestedCaption("team-photo.png", i+len(captionTemplates))
		if a != b {
			t.Fatalf("caption at index %d differs from index %d: %q vs %q", i, i+len(captionTemplates), a, b)
		}
		if a != suggestedCaption("team-photo.png", i) {
			t.Fatalf("caption at index %d is not deterministic", i)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"dish_1.jpg", "Dish 1"},
		{"team-photo.png", "Team Photo"},
		{"front_of-house.JPEG", "Front Of House"},
		{"noextension", "Noextension"},
	}
	for _, tc := range cases {
		if got := displayName(tc.in); got != tc.want {
			t.Fatalf("displayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIntegrationSuggestionsByCount(t *testing.T) {
	if got := integrationSuggestions(1); len(got) != 1 {
		t.Fatalf("one image should yield one suggestion, got %#v", got)
	}
	two := integrationSuggestions(2)
	three := integrationSuggestions(3)
	if len(two) != 2 || len(three) != 2 {
		t.Fatalf("2-3 images should yield two suggestions, got %d and %d", len(two), len(three))
	}
	if two[0] != three[0] || two[1] != three[1] {
		t.Fatal("2 and 3 images should share the same suggestions")
	}
	four := integrationSuggestions(4)
	if len(four) != 2 {
		t.Fatalf("4+ images should yield two suggestions, got %#v", four)
	}
	if four[0] == two[0] {
		t.Fatal("4+ images should switch to the gallery suggestions")
	}
}

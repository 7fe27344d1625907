package bloggen

import (
	"strings"
	"testing"

	"server/internal/domain"
)

func TestTargetWordCount(t *testing.T) {
	cases := []struct {
		length string
		want   string
	}{
		{"short", "300-500"},
		{"long", "900-1200"},
		{"extra_long", "1500-3000"},
		{"medium", "600-800"},
		{"", "600-800"},
		{"bogus", "600-800"},
	}
	for _, tc := range cases {
		if got := TargetWordCount(tc.length); got != tc.want {
			t.Fatalf("TargetWordCount(%q) = %q, want %q", tc.length, got, tc.want)
		}
	}
}

func TestBuildPromptWithoutImages(t *testing.T) {
	req := domain.BlogRequest{
		Topic:          "Grand Opening",
		MainName:       "Joe's Diner",
		Location:       "Austin",
		TargetAudience: "locals",
		Tone:           "friendly",
		Length:         "short",
	}

	system, prompt := BuildPrompt(req, nil)

	if strings.Contains(system, "integrating images") {
		t.Fatal("system instruction should not mention images without an analysis")
	}
	checks := []string{
		"- Name: Joe's Diner",
		"- Type/Category: Not specified",
		"- Industry/Field: Not specified",
		"- Location: Austin",
		"- Topic: Grand Opening",
		"- Target Audience: locals",
		"- Writing Tone: friendly",
		"- Target Length: 300-500 words",
		"CONTENT REQUIREMENTS:",
	}
	for _, expect := range checks {
		if !strings.Contains(prompt, expect) {
			t.Fatalf("prompt missing %q:\n%s", expect, prompt)
		}
	}
	if strings.Contains(prompt, "IMAGE INTEGRATION") {
		t.Fatal("prompt should not contain the image block without an analysis")
	}
	if strings.Contains(prompt, "Key Points to Include") {
		t.Fatal("key points line should be absent when not provided")
	}
}

func TestBuildPromptOptionalLines(t *testing.T) {
	req := domain.BlogRequest{
		Topic:           "Seasonal Menu",
		MainName:        "Joe's Diner",
		KeyPoints:       "fresh produce, local farms",
		SpecialFeatures: "rooftop seating",
	}

	_, prompt := BuildPrompt(req, nil)

	if !strings.Contains(prompt, "- Key Points to Include: fresh produce, local farms") {
		t.Fatalf("missing key points line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- Special Features: rooftop seating") {
		t.Fatalf("missing special features line:\n%s", prompt)
	}
}

func TestBuildPromptWithImages(t *testing.T) {
	req := domain.BlogRequest{Topic: "Grand Opening", MainName: "Joe's Diner"}
	analysis := AnalyzeImages([]domain.ImageDescriptor{
		{Name: "dish_1.jpg", Type: "image/jpeg", Size: 1024},
		{Name: "patio.png", Type: "image/png", Size: 2048},
	})

	system, prompt := BuildPrompt(req, analysis)

	if !strings.Contains(system, "integrating images") {
		t.Fatal("system instruction should mention images when an analysis is present")
	}
	checks := []string{
		"IMAGE INTEGRATION:",
		"- Total Images: 2",
		"dish_1.jpg (hero-image)",
		"patio.png (after-introduction)",
		"Distribute images throughout the content to maintain reader engagement; Use the first image as a hero image and others to illustrate key points",
	}
	for _, expect := range checks {
		if !strings.Contains(prompt, expect) {
			t.Fatalf("prompt missing %q:\n%s", expect, prompt)
		}
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	req := domain.BlogRequest{Topic: "Grand Opening", MainName: "Joe's Diner", Length: "long"}
	analysis := AnalyzeImages([]domain.ImageDescriptor{{Name: "a.jpg"}})

	s1, p1 := BuildPrompt(req, analysis)
	s2, p2 := BuildPrompt(req, analysis)
	if s1 != s2 || p1 != p2 {
		t.Fatal("prompt construction must be deterministic")
	}
}

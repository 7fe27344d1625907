package bloggen

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"server/internal/domain"
)

// ImageDetail is the per-image analysis record. IDs are 1-based to match
// the numbering used inside the generated prompt.
type ImageDetail struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Type               string `json:"type"`
	Size               int64  `json:"size"`
	Description        string `json:"description"`
	SuggestedPlacement string `json:"suggestedPlacement"`
	SuggestedCaption   string `json:"suggestedCaption"`
}

// ImageAnalysis aggregates placement and caption hints for a request's
// uploaded images.
type ImageAnalysis struct {
	TotalImages            int           `json:"totalImages"`
	ImageDetails           []ImageDetail `json:"imageDetails"`
	IntegrationSuggestions []string      `json:"integrationSuggestions"`
}

// Ordered placement hints for the first images of an article; anything
// past them lands in the gallery section.
var placements = []string{"hero-image", "after-introduction", "mid-content"}

// Caption templates cycle by image index.
var captionTemplates = []string{
	"Featured image: %s",
	"Behind the scenes: %s",
	"Our signature dish: %s",
	"Experience the atmosphere: %s",
	"Discover our %s",
	"A taste of excellence: %s",
}

// AnalyzeImages derives placement, caption and integration hints for the
// given images. Returns nil when there is nothing to analyze. Pure and
// deterministic given input order.
func AnalyzeImages(images []domain.ImageDescriptor) *ImageAnalysis {
	if len(images) == 0 {
		return nil
	}
	details := make([]ImageDetail, 0, len(images))
	for idx, img := range images {
		details = append(details, ImageDetail{
			ID:                 idx + 1,
			Name:               img.Name,
			Type:               img.Type,
			Size:               img.Size,
			Description:        fmt.Sprintf("Image %d: %s", idx+1, img.Name),
			SuggestedPlacement: suggestedPlacement(idx, len(images)),
			SuggestedCaption:   suggestedCaption(img.Name, idx),
		})
	}
	return &ImageAnalysis{
		TotalImages:            len(images),
		ImageDetails:           details,
		IntegrationSuggestions: integrationSuggestions(len(images)),
	}
}

func suggestedPlacement(index, total int) string {
	if total == 1 || index == 0 {
		return placements[0]
	}
	if index < len(placements) {
		return placements[index]
	}
	return "gallery-section"
}

func suggestedCaption(name string, index int) string {
	return fmt.Sprintf(captionTemplates[index%len(captionTemplates)], displayName(name))
}

// displayName turns a filename into a human-readable title: extension
// stripped, separators spaced out, words title-cased.
func displayName(name string) string {
	base := name
	if dot := strings.LastIndex(base, "."); dot >= 0 {
		base = base[:dot]
	}
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	c := cases.Title(language.Und)
	return c.String(base)
}

func integrationSuggestions(total int) []string {
	switch {
	case total == 1:
		return []string{"Use this image as the main hero image for your blog post"}
	case total <= 3:
		return []string{
			"Distribute images throughout the content to maintain reader engagement",
			"Use the first image as a hero image and others to illustrate key points",
		}
	default:
		return []string{
			"Create a dedicated gallery section for multiple images",
			"Use images strategically to break up text and maintain visual interest",
		}
	}
}

package domain

import "strings"

// ImageDescriptor references an image uploaded alongside a generation
// request. The payload is passed through untouched; the pipeline only
// reads the name, MIME type and size.
type ImageDescriptor struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Size    int64  `json:"size"`
	DataURL string `json:"dataUrl,omitempty"`
}

// BlogRequest is the inbound payload for blog generation.
type BlogRequest struct {
	Topic           string            `json:"topic"`
	MainName        string            `json:"mainName"`
	Type            string            `json:"type"`
	Industry        string            `json:"industry"`
	Location        string            `json:"location"`
	TargetAudience  string            `json:"targetAudience"`
	Tone            string            `json:"tone"`
	Length          string            `json:"length"`
	KeyPoints       string            `json:"keyPoints"`
	SpecialFeatures string            `json:"specialFeatures"`
	Images          []ImageDescriptor `json:"images,omitempty"`

	// Restaurant-era aliases still sent by older clients. Folded into
	// the canonical fields by Normalize.
	RestaurantName string `json:"restaurantName,omitempty"`
	RestaurantType string `json:"restaurantType,omitempty"`
	Cuisine        string `json:"cuisine,omitempty"`
}

// Normalize trims the request and resolves legacy alias fields so that
// downstream components only ever see the canonical ones.
func (r *BlogRequest) Normalize() {
	if r == nil {
		return
	}
	r.Topic = strings.TrimSpace(r.Topic)
	r.MainName = strings.TrimSpace(r.MainName)
	if r.MainName == "" {
		r.MainName = strings.TrimSpace(r.RestaurantName)
	}
	r.Type = strings.TrimSpace(r.Type)
	if r.Type == "" {
		r.Type = strings.TrimSpace(r.RestaurantType)
	}
	r.Industry = strings.TrimSpace(r.Industry)
	if r.Industry == "" {
		r.Industry = strings.TrimSpace(r.Cuisine)
	}
	r.RestaurantName = ""
	r.RestaurantType = ""
	r.Cuisine = ""
}

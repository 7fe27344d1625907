package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"server/internal/bloggen"
	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// BlogGenerate runs the full generation pipeline. Success returns the
// result envelope flattened into the response body; every pipeline
// failure (validation, missing credential, upstream) maps to HTTP 400
// with the failure envelope.
func (a *App) BlogGenerate(w http.ResponseWriter, r *http.Request) {
	var req domain.BlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "", "invalid payload")
		return
	}
	res := a.Generator.Generate(r.Context(), req)
	if !res.Success {
		a.json(w, http.StatusBadRequest, res)
		return
	}
	a.json(w, http.StatusOK, res)
}

// BlogSave persists a generated post document verbatim, adding a
// createdAt stamp when the client did not supply one.
func (a *App) BlogSave(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		a.error(w, http.StatusBadRequest, "", "invalid payload")
		return
	}
	post, _ := doc["blogPost"].(string)
	if post == "" {
		a.error(w, http.StatusBadRequest, "", "blogPost is required")
		return
	}
	if _, ok := doc["createdAt"]; !ok {
		doc["createdAt"] = time.Now().UTC().Format(time.RFC3339)
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		a.error(w, http.StatusBadRequest, "", "invalid payload")
		return
	}
	var id uuid.UUID
	var createdAt time.Time
	if err := a.SQL.QueryRow(r.Context(), sqlinline.QInsertBlog, payload).Scan(&id, &createdAt); err != nil {
		a.Logger.Error().Err(err).Msg("blog save failed")
		a.error(w, http.StatusInternalServerError, "", "failed to save blog")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "blogId": id.String()})
}

// BlogList returns the most recent documents, newest first, capped at 100.
func (a *App) BlogList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListBlogs)
	if err != nil {
		a.Logger.Error().Err(err).Msg("blog list failed")
		a.error(w, http.StatusInternalServerError, "", "failed to list blogs")
		return
	}
	defer rows.Close()
	blogs := []map[string]any{}
	for rows.Next() {
		var id uuid.UUID
		var document []byte
		var createdAt time.Time
		if err := rows.Scan(&id, &document, &createdAt); err != nil {
			continue
		}
		blogs = append(blogs, blogObject(id, document, createdAt))
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "blogs": blogs})
}

// BlogGet fetches one document. A malformed identifier is a 400, a
// missing row a 404.
func (a *App) BlogGet(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "", "Invalid blog ID")
		return
	}
	var document []byte
	var createdAt time.Time
	if err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectBlog, id).Scan(&id, &document, &createdAt); err != nil {
		if infra.IsNoRows(err) {
			a.error(w, http.StatusNotFound, "", "Blog not found")
			return
		}
		a.Logger.Error().Err(err).Msg("blog get failed")
		a.error(w, http.StatusInternalServerError, "", "failed to load blog")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "blog": blogObject(id, document, createdAt)})
}

// BlogUpdate merges a partial document into the stored one.
func (a *App) BlogUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "", "Invalid blog ID")
		return
	}
	var partial map[string]any
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil || len(partial) == 0 {
		a.error(w, http.StatusBadRequest, "", "invalid payload")
		return
	}
	payload, err := json.Marshal(partial)
	if err != nil {
		a.error(w, http.StatusBadRequest, "", "invalid payload")
		return
	}
	tag, err := a.SQL.Exec(r.Context(), sqlinline.QUpdateBlog, id, payload)
	if err != nil {
		a.Logger.Error().Err(err).Msg("blog update failed")
		a.error(w, http.StatusInternalServerError, "", "failed to update blog")
		return
	}
	if tag.RowsAffected() == 0 {
		a.error(w, http.StatusNotFound, "", "Blog not found")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true})
}

// BlogDelete removes a document.
func (a *App) BlogDelete(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "", "Invalid blog ID")
		return
	}
	tag, err := a.SQL.Exec(r.Context(), sqlinline.QDeleteBlog, id)
	if err != nil {
		a.Logger.Error().Err(err).Msg("blog delete failed")
		a.error(w, http.StatusInternalServerError, "", "failed to delete blog")
		return
	}
	if tag.RowsAffected() == 0 {
		a.error(w, http.StatusNotFound, "", "Blog not found")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true})
}

// BlogProcessImages runs image analysis on its own, without generation.
func (a *App) BlogProcessImages(w http.ResponseWriter, r *http.Request) {
	var images []domain.ImageDescriptor
	if err := json.NewDecoder(r.Body).Decode(&images); err != nil {
		a.error(w, http.StatusBadRequest, "", "invalid payload")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":       true,
		"imageAnalysis": bloggen.AnalyzeImages(images),
	})
}

// BlogModel reports the active model configuration and its public
// capability metadata.
func (a *App) BlogModel(w http.ResponseWriter, r *http.Request) {
	model := bloggen.SelectModel(bloggen.DefaultUseCase)
	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"model": map[string]any{
			"name":             model.Name,
			"description":      model.Description,
			"useCase":          bloggen.DefaultUseCase,
			"strengths":        model.Strengths,
			"imageSupport":     true,
			"maxImages":        10,
			"supportedFormats": []string{"JPEG", "PNG", "GIF", "WebP"},
			"parameters": map[string]any{
				"temperature":      model.Temperature,
				"maxTokens":        model.MaxTokens,
				"topP":             model.TopP,
				"frequencyPenalty": model.FrequencyPenalty,
				"presencePenalty":  model.PresencePenalty,
			},
			"modelInfo": map[string]any{
				"provider":         "NVIDIA",
				"modelType":        model.Name,
				"parameters":       "49B",
				"maxContextLength": "4096 tokens",
				"capabilities": []string{
					"Long-form content generation",
					"Detailed reasoning and analysis",
					"SEO-optimized writing",
					"Image integration and captioning",
					"Multi-section blog structuring",
					"Brand voice adaptation",
				},
			},
		},
	})
}

func blogID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidID
	}
	return id, nil
}

func blogObject(id uuid.UUID, document []byte, createdAt time.Time) map[string]any {
	obj := map[string]any{}
	_ = json.Unmarshal(document, &obj)
	obj["_id"] = id.String()
	if _, ok := obj["createdAt"]; !ok {
		obj["createdAt"] = createdAt.UTC().Format(time.RFC3339)
	}
	return obj
}

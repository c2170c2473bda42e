package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/vezoprint/vezo-backend/internal/model"
)

type contentEnvelope struct {
	Message string            `json:"message"`
	Content model.ContentItem `json:"content"`
}

func createItem(t *testing.T, env *testEnv, token string, payload map[string]any) model.ContentItem {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/api/content", token, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d; want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var resp contentEnvelope
	decodeBody(t, rec, &resp)
	return resp.Content
}

func TestContentCreateRequiresAuth(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/content", "", map[string]any{
		"type":  "product",
		"title": "Corrugated Mailer",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401", rec.Code)
	}
	if code := responseErrCode(t, rec); code != "TOKEN_REQUIRED" {
		t.Errorf("error code = %q; want TOKEN_REQUIRED", code)
	}
}

func TestContentCreate(t *testing.T) {
	env := newTestEnv()
	admin, token := env.seedAdmin(t, "owner", model.RoleAdmin)

	item := createItem(t, env, token, map[string]any{
		"type":  "product",
		"title": "Corrugated Mailer",
	})

	if _, err := uuid.Parse(item.ID); err != nil {
		t.Errorf("id %q is not a uuid", item.ID)
	}
	if item.Title != "Corrugated Mailer" {
		t.Errorf("title = %q", item.Title)
	}
	if item.Order != 0 {
		t.Errorf("order = %d; want default 0", item.Order)
	}
	if !item.IsActive {
		t.Error("isActive should default to true")
	}
	if item.CreatedBy == nil || *item.CreatedBy != admin.ID {
		t.Errorf("createdBy = %v; want %d", item.CreatedBy, admin.ID)
	}
}

func TestContentCreateRejectsBadPayload(t *testing.T) {
	env := newTestEnv()
	_, token := env.seedAdmin(t, "owner", model.RoleAdmin)

	tests := []struct {
		name     string
		payload  map[string]any
		wantCode string
	}{
		{"missing title", map[string]any{"type": "product"}, "VALIDATION_ERROR"},
		{"missing type", map[string]any{"title": "x"}, "VALIDATION_ERROR"},
		{"unknown type", map[string]any{"type": "banner", "title": "x"}, "INVALID_CONTENT_TYPE"},
		{"markup-only title", map[string]any{"type": "product", "title": "<b></b>"}, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/content", token, tt.payload)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d; want 400 (body %s)", rec.Code, rec.Body.String())
			}
			if code := responseErrCode(t, rec); code != tt.wantCode {
				t.Errorf("error code = %q; want %q", code, tt.wantCode)
			}
		})
	}
}

func TestContentListPublicAndSorted(t *testing.T) {
	env := newTestEnv()
	_, token := env.seedAdmin(t, "owner", model.RoleAdmin)

	createItem(t, env, token, map[string]any{"type": "industry", "title": "Food", "order": 2})
	createItem(t, env, token, map[string]any{"type": "industry", "title": "Retail", "order": 0})
	createItem(t, env, token, map[string]any{"type": "industry", "title": "Pharma", "order": 1})
	createItem(t, env, token, map[string]any{"type": "product", "title": "Mailer"})

	// No token: the listing is public.
	rec := env.do(t, http.MethodGet, "/api/content?type=industry", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d; want 200", rec.Code)
	}

	var items []model.ContentItem
	decodeBody(t, rec, &items)
	if len(items) != 3 {
		t.Fatalf("got %d items; want 3", len(items))
	}
	want := []string{"Retail", "Pharma", "Food"}
	for i, title := range want {
		if items[i].Title != title {
			t.Fatalf("item %d title = %q; want %q", i, items[i].Title, title)
		}
	}
}

func TestContentListFiltersActive(t *testing.T) {
	env := newTestEnv()
	_, token := env.seedAdmin(t, "owner", model.RoleAdmin)

	createItem(t, env, token, map[string]any{"type": "feature", "title": "Visible"})
	createItem(t, env, token, map[string]any{"type": "feature", "title": "Hidden", "isActive": false})

	rec := env.do(t, http.MethodGet, "/api/content?type=feature&isActive=true", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d; want 200", rec.Code)
	}
	var items []model.ContentItem
	decodeBody(t, rec, &items)
	if len(items) != 1 || items[0].Title != "Visible" {
		t.Fatalf("filtered listing = %+v; want only the active item", items)
	}
}

func TestContentGet(t *testing.T) {
	env := newTestEnv()
	_, token := env.seedAdmin(t, "owner", model.RoleAdmin)

	item := createItem(t, env, token, map[string]any{"type": "section", "title": "Hero"})

	rec := env.do(t, http.MethodGet, "/api/content/"+item.ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d; want 200", rec.Code)
	}

	tests := []struct {
		name string
		id   string
	}{
		{"unknown uuid", uuid.New().String()},
		{"malformed id", "not-a-uuid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/content/"+tt.id, "", nil)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d; want 404", rec.Code)
			}
		})
	}
}

func TestContentUpdate(t *testing.T) {
	env := newTestEnv()
	_, token := env.seedAdmin(t, "owner", model.RoleAdmin)

	item := createItem(t, env, token, map[string]any{"type": "material", "title": "Kraft"})

	rec := env.do(t, http.MethodPut, "/api/content/"+item.ID, token, map[string]any{
		"type":  "material",
		"title": "Recycled Kraft",
		"order": 4,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d; want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var resp contentEnvelope
	decodeBody(t, rec, &resp)
	if resp.Content.Title != "Recycled Kraft" {
		t.Errorf("updated title = %q", resp.Content.Title)
	}
	if resp.Content.Order != 4 {
		t.Errorf("updated order = %d; want 4", resp.Content.Order)
	}

	rec = env.do(t, http.MethodPut, "/api/content/"+uuid.New().String(), token, map[string]any{
		"type":  "material",
		"title": "Ghost",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update unknown id status = %d; want 404", rec.Code)
	}
}

func TestContentDeleteRequiresAdminRole(t *testing.T) {
	env := newTestEnv()
	_, adminToken := env.seedAdmin(t, "owner", model.RoleAdmin)
	_, editorToken := env.seedAdmin(t, "writer", model.RoleEditor)

	item := createItem(t, env, editorToken, map[string]any{"type": "product", "title": "Tube"})

	// Editors create and update but never delete.
	rec := env.do(t, http.MethodDelete, "/api/content/"+item.ID, editorToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("editor delete status = %d; want 403", rec.Code)
	}
	if code := responseErrCode(t, rec); code != "ADMIN_ROLE_REQUIRED" {
		t.Errorf("error code = %q; want ADMIN_ROLE_REQUIRED", code)
	}

	rec = env.do(t, http.MethodDelete, "/api/content/"+item.ID, adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin delete status = %d; want 200 (body %s)", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/api/content/"+item.ID, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d; want 404", rec.Code)
	}
}

func TestContentReorder(t *testing.T) {
	env := newTestEnv()
	_, token := env.seedAdmin(t, "owner", model.RoleAdmin)

	a := createItem(t, env, token, map[string]any{"type": "testimonial", "title": "First"})
	b := createItem(t, env, token, map[string]any{"type": "testimonial", "title": "Second"})

	rec := env.do(t, http.MethodPost, "/api/content/reorder", token, map[string]any{
		"items": []map[string]any{
			{"id": b.ID, "order": 0},
			{"id": a.ID, "order": 1},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("reorder status = %d; want 200 (body %s)", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/api/content?type=testimonial", "", nil)
	var items []model.ContentItem
	decodeBody(t, rec, &items)
	if len(items) != 2 || items[0].Title != "Second" || items[1].Title != "First" {
		t.Fatalf("listing after reorder = %+v", items)
	}
}

func TestContentReorderValidation(t *testing.T) {
	env := newTestEnv()
	_, token := env.seedAdmin(t, "owner", model.RoleAdmin)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"empty items", map[string]any{"items": []map[string]any{}}},
		{"missing items", map[string]any{}},
		{"non-uuid id", map[string]any{"items": []map[string]any{{"id": "abc", "order": 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/content/reorder", token, tt.payload)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d; want 400 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}
}

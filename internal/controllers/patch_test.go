package controllers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func newPatchContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

// Zero values sent by the client must land in the update map; a partial
// update of {"published": false} has to actually unpublish.
func TestPatchColumnsKeepsZeroValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		allowed map[string]string
		want    map[string]interface{}
	}{
		{
			name:    "false boolean is kept",
			body:    `{"published": false}`,
			allowed: blogPostColumns,
			want:    map[string]interface{}{"published": false},
		},
		{
			name:    "unfeature with zero sort order",
			body:    `{"featured": false, "sortOrder": 0}`,
			allowed: projectColumns,
			want:    map[string]interface{}{"featured": false, "sort_order": float64(0)},
		},
		{
			name:    "progress reset to zero",
			body:    `{"progress": 0}`,
			allowed: activeProjectColumns,
			want:    map[string]interface{}{"progress": float64(0)},
		},
		{
			name:    "revoke approval",
			body:    `{"approved": false}`,
			allowed: testimonialColumns,
			want:    map[string]interface{}{"approved": false},
		},
		{
			name:    "omitted fields stay out",
			body:    `{"title": "Hello"}`,
			allowed: blogPostColumns,
			want:    map[string]interface{}{"title": "Hello"},
		},
		{
			name:    "unknown keys are dropped",
			body:    `{"id": 99, "bogus": true, "slug": "hello"}`,
			allowed: blogPostColumns,
			want:    map[string]interface{}{"slug": "hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newPatchContext(t, tt.body)
			got, err := patchColumns(c, tt.allowed)
			if err != nil {
				t.Fatalf("patchColumns returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("patchColumns = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestPatchColumnsCamelCaseMapsToColumns(t *testing.T) {
	c := newPatchContext(t, `{"sortOrder": 3, "coverImage": "x.png"}`)
	got, err := patchColumns(c, map[string]string{
		"sortOrder":  "sort_order",
		"coverImage": "cover_image",
	})
	if err != nil {
		t.Fatalf("patchColumns returned error: %v", err)
	}

	if _, ok := got["sort_order"]; !ok {
		t.Error("expected sortOrder to map to sort_order column")
	}
	if _, ok := got["cover_image"]; !ok {
		t.Error("expected coverImage to map to cover_image column")
	}
	if _, ok := got["sortOrder"]; ok {
		t.Error("JSON key must not leak through as a column name")
	}
}

func TestPatchColumnsStringArrays(t *testing.T) {
	c := newPatchContext(t, `{"tags": ["go", "gin"]}`)
	got, err := patchColumns(c, blogPostColumns)
	if err != nil {
		t.Fatalf("patchColumns returned error: %v", err)
	}

	want := pq.StringArray{"go", "gin"}
	if !reflect.DeepEqual(got["tags"], want) {
		t.Errorf("tags = %#v, want %#v", got["tags"], want)
	}

	c = newPatchContext(t, `{"tags": ["go", 42]}`)
	if _, err := patchColumns(c, blogPostColumns); err == nil {
		t.Error("expected error for non-string array element")
	}
}

func TestPatchColumnsTimestamps(t *testing.T) {
	c := newPatchContext(t, `{"publishedAt": "2026-01-02T15:04:05Z"}`)
	got, err := patchColumns(c, blogPostColumns)
	if err != nil {
		t.Fatalf("patchColumns returned error: %v", err)
	}

	want := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	parsed, ok := got["published_at"].(time.Time)
	if !ok || !parsed.Equal(want) {
		t.Errorf("published_at = %#v, want %v", got["published_at"], want)
	}

	c = newPatchContext(t, `{"publishedAt": null}`)
	got, err = patchColumns(c, blogPostColumns)
	if err != nil {
		t.Fatalf("patchColumns returned error: %v", err)
	}
	if value, has := got["published_at"]; !has || value != nil {
		t.Errorf("null timestamp should clear the column, got %#v", got)
	}

	c = newPatchContext(t, `{"publishedAt": "not-a-time"}`)
	if _, err := patchColumns(c, blogPostColumns); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}

func TestPatchColumnsRejectsBadJSON(t *testing.T) {
	c := newPatchContext(t, `{"published":`)
	if _, err := patchColumns(c, blogPostColumns); err == nil {
		t.Error("expected error for malformed body")
	}
}

package geoweb

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStoreUploadLifecycle(t *testing.T) {
	s := setupTestStore(t)

	uploads := []Upload{
		{Filename: "diagram.jpg", OriginalName: "Diagram.png", Width: 1200, Height: 800, Size: 4096, UploadedAt: "2026-05-01T10:00:00Z"},
		{Filename: "photo.jpg", OriginalName: "photo.heic", Width: 600, Height: 400, Size: 2048, UploadedAt: "2026-05-02T10:00:00Z"},
	}
	for _, up := range uploads {
		if err := s.SaveUpload(up); err != nil {
			t.Fatalf("SaveUpload failed: %v", err)
		}
	}

	got, err := s.ListUploads()
	if err != nil {
		t.Fatalf("ListUploads failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Filename != "photo.jpg" || got[1].Filename != "diagram.jpg" {
		t.Errorf("want newest first, got %s, %s", got[0].Filename, got[1].Filename)
	}
	if got[1].Width != 1200 || got[1].OriginalName != "Diagram.png" {
		t.Errorf("metadata not preserved: %+v", got[1])
	}

	if err := s.DeleteUpload("photo.jpg"); err != nil {
		t.Fatalf("DeleteUpload failed: %v", err)
	}
	got, err = s.ListUploads()
	if err != nil {
		t.Fatalf("ListUploads failed: %v", err)
	}
	if len(got) != 1 || got[0].Filename != "diagram.jpg" {
		t.Errorf("delete left %+v", got)
	}
}

func TestImageDeleteRequiresAdmin(t *testing.T) {
	a := newTestApp(t)
	if err := a.Store.SaveUpload(Upload{Filename: "keep.jpg", OriginalName: "keep.png", UploadedAt: "2026-05-01T10:00:00Z"}); err != nil {
		t.Fatalf("SaveUpload failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/images/keep.jpg/delete/", nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	c.SetParamNames("filename")
	c.SetParamValues("keep.jpg")

	if err := a.handleImageDelete(c); err != nil {
		t.Fatalf("handleImageDelete failed: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want redirect for unauthenticated caller", rec.Code)
	}

	got, err := a.Store.ListUploads()
	if err != nil {
		t.Fatalf("ListUploads failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("unauthenticated delete must not remove records, got %v", got)
	}
}

func TestSlugifyFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Photo.PNG", "my-photo"},
		{"pipeline_diagram.v2.jpg", "pipeline-diagram-v2"},
		{"---.gif", "image"},
		{"都市圖.png", "image"},
	}
	for _, tt := range tests {
		if got := slugifyFilename(tt.in); got != tt.want {
			t.Errorf("slugifyFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package views

import (
	"strings"
	"testing"
)

func TestAdminImagesControls(t *testing.T) {
	images := []AdminImage{
		{URL: "/public/uploads/diagram.jpg", Filename: "diagram.jpg", Name: "Diagram.png"},
	}
	html := render(t, AdminImages(testSite(), images, "tok123"))

	for _, want := range []string{
		`<form method="post" action="/admin/images/upload/" enctype="multipart/form-data">`,
		`<form method="post" action="/admin/images/diagram.jpg/delete/">`,
		`<img src="/public/uploads/diagram.jpg" alt="Diagram.png"`,
		`name="_csrf" value="tok123"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestAdminImagesEmpty(t *testing.T) {
	html := render(t, AdminImages(testSite(), nil, "tok123"))
	if !strings.Contains(html, "No images uploaded.") {
		t.Error("missing empty state")
	}
	if strings.Contains(html, "/delete/") {
		t.Error("no delete controls expected without images")
	}
}

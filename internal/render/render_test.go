package render

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte(
			`{{if has . "prediction"}}<p>{{printf "%.2f" .prediction}}</p>{{else}}<p>none</p>{{end}}<i>{{.name}}</i>`,
		)},
		"broken.html": &fstest.MapFile{Data: []byte(`{{template "missing" .}}`)},
	}
}

func TestTemplateRenderer_Render(t *testing.T) {
	r, err := NewTemplateRenderer(testFS())
	if err != nil {
		t.Fatalf("NewTemplateRenderer() error = %v", err)
	}

	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{name: "no prediction", data: map[string]any{"name": "x"}, want: "<p>none</p><i>x</i>"},
		{name: "prediction", data: map[string]any{"prediction": 231.5}, want: "<p>231.50</p><i></i>"},
		{name: "zero prediction is shown", data: map[string]any{"prediction": 0.0}, want: "<p>0.00</p><i></i>"},
		{name: "escapes html", data: map[string]any{"name": "<b>"}, want: "<p>none</p><i>&lt;b&gt;</i>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render("index.html", tt.data)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateRenderer_Errors(t *testing.T) {
	r, err := NewTemplateRenderer(testFS())
	if err != nil {
		t.Fatalf("NewTemplateRenderer() error = %v", err)
	}

	if _, err := r.Render("missing.html", nil); err == nil {
		t.Error("expected error for unknown template")
	}
	if _, err := r.Render("broken.html", nil); err == nil || !strings.Contains(err.Error(), "broken.html") {
		t.Errorf("expected wrapped execution error, got %v", err)
	}

	if _, err := NewTemplateRenderer(fstest.MapFS{}); err == nil {
		t.Error("expected error when no templates match")
	}
}

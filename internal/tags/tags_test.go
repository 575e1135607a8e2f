package tags

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "tags.yaml")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, Defaults) {
		t.Fatalf("Load() = %v, want %v", got, Defaults)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default file not written: %v", err)
	}
	if !strings.Contains(string(data), "salary") {
		t.Fatalf("unexpected file contents:\n%s", data)
	}

	again, err := Load(path)
	if err != nil || !reflect.DeepEqual(again, Defaults) {
		t.Fatalf("second Load() = %v, %v", again, err)
	}
}

func TestLoadReadsFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "custom tags in order",
			content: "tags:\n  - rent\n  - groceries\n  - fun\n",
			want:    []string{"rent", "groceries", "fun"},
		},
		{
			name:    "trims and dedupes",
			content: "tags: [' pets ', pets, '', gifts]\n",
			want:    []string{"pets", "gifts"},
		},
		{
			name:    "empty list uses defaults",
			content: "tags: []\n",
			want:    Defaults,
		},
		{
			name:    "missing key uses defaults",
			content: "currency: EUR\n",
			want:    Defaults,
		},
		{
			name:    "malformed yaml",
			content: "tags: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tags.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadDoesNotAliasDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "tags.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got[0] = "changed"
	if Defaults[0] != "food" {
		t.Fatalf("Defaults was modified through the returned slice")
	}
}

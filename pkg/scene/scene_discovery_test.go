package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"pink-sphere", "Pink Sphere"},
		{"sheared_trio", "Sheared Trio"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name                string
		content             string
		expectedDisplayName string
		expectedDescription string
	}{
		{
			name:                "complete-metadata.json",
			content:             `{"name": "glowing orb", "description": "A bright sphere", "spheres": []}`,
			expectedDisplayName: "Glowing Orb",
			expectedDescription: "A bright sphere",
		},
		{
			name:                "no-metadata.json",
			content:             `{"spheres": [{}]}`,
			expectedDisplayName: "No Metadata", // From filename
			expectedDescription: "",
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("Failed to write temp file: %v", err)
			}

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}

			if result.ID != path || result.FilePath != path {
				t.Errorf("ID/FilePath = %q/%q, want %q", result.ID, result.FilePath, path)
			}
			if result.DisplayName != tc.expectedDisplayName {
				t.Errorf("DisplayName = %q, want %q", result.DisplayName, tc.expectedDisplayName)
			}
			if result.Description != tc.expectedDescription {
				t.Errorf("Description = %q, want %q", result.Description, tc.expectedDescription)
			}
			if result.Type != "file" {
				t.Errorf("Type = %q, want %q", result.Type, "file")
			}
		})
	}
}

func TestListSceneFilesIn(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"zeta.json":   `{"name": "zeta"}`,
		"alpha.json":  `{"name": "alpha"}`,
		"broken.json": `{not json`,
		"notes.txt":   `ignored`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListSceneFilesIn(dir)
	if err != nil {
		t.Fatalf("ListSceneFilesIn() error: %v", err)
	}

	// Broken files are skipped, other extensions ignored
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d: %+v", len(scenes), scenes)
	}
	if scenes[0].DisplayName != "Alpha" || scenes[1].DisplayName != "Zeta" {
		t.Errorf("Expected scenes sorted by display name, got %q, %q", scenes[0].DisplayName, scenes[1].DisplayName)
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	// Tests run from the package directory, which has no scenes directory nearby
	scenes, err := ListSceneFiles()
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil {
		t.Error("ListSceneFiles() returned nil, expected empty slice")
	}
}

func TestListAllScenes(t *testing.T) {
	response, err := ListAllScenes()
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	sceneIDs := make(map[string]bool)
	for _, s := range response.Scenes {
		sceneIDs[s.ID] = true
		if s.Type == "builtin" && s.Description == "" {
			t.Errorf("Built-in scene %s has no description", s.ID)
		}
	}

	for _, expectedID := range Names() {
		if !sceneIDs[expectedID] {
			t.Errorf("Missing expected built-in scene: %s", expectedID)
		}
	}
}

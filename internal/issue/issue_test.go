// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	// Verify all IDs are unique and sequential
	ids := []Id{
		DartSdkNotFoundId,
		FlutterSdkNotFoundId,
		SdkValidationFailedId,
		SnapInitFailedId,
		WorkspaceScanFailedId,
		ConfigLoadFailedId,
		LaunchFileNotFoundId,
		LaunchParseErrorId,
		ProgramNotFoundId,
		LogFileUnavailableId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if DartSdkNotFoundId != 1 {
		t.Errorf("DartSdkNotFoundId = %d, want 1", DartSdkNotFoundId)
	}
}

func TestIssue_Id(t *testing.T) {
	issue := Get(DartSdkNotFoundId)
	if issue == nil {
		t.Fatal("Get(DartSdkNotFoundId) returned nil")
	}

	if issue.Id() != DartSdkNotFoundId {
		t.Errorf("issue.Id() = %d, want %d", issue.Id(), DartSdkNotFoundId)
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	issue := Get(DartSdkNotFoundId)
	if issue == nil {
		t.Fatal("Get(DartSdkNotFoundId) returned nil")
	}

	msg := issue.MarkdownMsg()
	if msg == "" {
		t.Error("MarkdownMsg() returned empty string")
	}

	// Verify it contains expected content
	if !strings.Contains(string(msg), "No Dart SDK found") {
		t.Error("MarkdownMsg() should contain 'No Dart SDK found'")
	}
}

func TestIssue_ExtLinks(t *testing.T) {
	issue := Get(FlutterSdkNotFoundId)
	if issue == nil {
		t.Fatal("Get(FlutterSdkNotFoundId) returned nil")
	}

	// ExtLinks returns a clone of the links
	links := issue.ExtLinks()
	if len(links) == 0 {
		t.Fatal("FlutterSdkNotFoundId should carry the install link")
	}

	// Modifying the returned slice should not affect the original
	original := links[0]
	links[0] = "modified"
	newLinks := issue.ExtLinks()
	if newLinks[0] != original {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestIssue_Render(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		// Simple mock that just returns the input
		return in, nil
	}

	issue := Get(SdkValidationFailedId)
	if issue == nil {
		t.Fatal("Get(SdkValidationFailedId) returned nil")
	}

	rendered, err := issue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if !strings.Contains(rendered, "analysis_server.dart.snapshot") {
		t.Error("Render() output should name the analysis-server snapshot")
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{DartSdkNotFoundId, false, "No Dart SDK found"},
		{FlutterSdkNotFoundId, false, "No Flutter SDK found"},
		{SdkValidationFailedId, false, "not a complete SDK"},
		{SnapInitFailedId, false, "snap initialization failed"},
		{WorkspaceScanFailedId, false, "Workspace scan failed"},
		{ConfigLoadFailedId, false, "Failed to load configuration"},
		{LaunchFileNotFoundId, false, "Launch definition not found"},
		{LaunchParseErrorId, false, "Failed to parse launch definition"},
		{ProgramNotFoundId, false, "Program not found"},
		{LogFileUnavailableId, false, "No log file available"},
		{Id(9999), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}

			if tt.contains != "" && !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain '%s'", tt.id, tt.contains)
			}
		})
	}
}

func TestValues(t *testing.T) {
	issues := Values()

	if len(issues) == 0 {
		t.Fatal("Values() returned empty slice")
	}

	expectedCount := 10 // Based on the number of predefined issues

	if len(issues) != expectedCount {
		t.Errorf("Values() returned %d issues, want %d", len(issues), expectedCount)
	}

	// Verify all issues have valid IDs
	for _, issue := range issues {
		if issue.Id() == 0 {
			t.Error("found issue with ID 0")
		}
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	// Create a test issue with links to verify the rendering logic
	testIssue := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue\n\nThis is a test.",
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	// The rendered output should include the "See also" section
	if !strings.Contains(rendered, "See also") {
		t.Error("Render() with links should contain 'See also'")
	}
}

func TestIssue_Render_NoLinks(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	// Create a test issue without links
	testIssue := &Issue{
		id:    Id(9998),
		mdMsg: "# Test Issue\n\nNo links here.",
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	// Should render without the "See also" section
	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not contain 'See also'")
	}
}

func TestAllIssuesHaveContent(t *testing.T) {
	issues := Values()

	for _, issue := range issues {
		if issue.MarkdownMsg() == "" {
			t.Errorf("Issue %d has empty MarkdownMsg", issue.Id())
		}
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	issues := Values()

	for _, issue := range issues {
		rendered, err := issue.Render("")
		if err != nil {
			t.Errorf("Issue %d failed to render: %v", issue.Id(), err)
		}
		if rendered == "" {
			t.Errorf("Issue %d rendered to empty string", issue.Id())
		}
	}
}

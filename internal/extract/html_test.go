package extract

import (
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "simple paragraph",
			html: "<html><body><p>You can read this.</p></body></html>",
			want: "You can read this.",
		},
		{
			name: "headings and paragraphs stay on separate lines",
			html: "<h1>Getting Started</h1><p>First, open the app.</p><p>Then, sign in.</p>",
			want: "Getting Started\nFirst, open the app.\nThen, sign in.",
		},
		{
			name: "script and style content is dropped",
			html: "<style>p { color: red; }</style><p>Visible text.</p><script>alert('hidden');</script>",
			want: "Visible text.",
		},
		{
			name: "list items stay separate",
			html: "<ul><li>Open the menu.</li><li>Pick a file.</li></ul>",
			want: "Open the menu.\nPick a file.",
		},
		{
			name: "inline markup does not split sentences",
			html: "<p>You can <strong>always</strong> ask for <em>help</em>.</p>",
			want: "You can always ask for help .",
		},
		{
			name: "source whitespace is collapsed",
			html: "<p>Spread\n   across\n   lines.</p>",
			want: "Spread across lines.",
		},
		{
			name: "empty document",
			html: "<html><head></head><body></body></html>",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := TextFromString(tt.html)
			if err != nil {
				t.Fatalf("TextFromString() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TextFromString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextMalformedHTML(t *testing.T) {
	t.Parallel()

	// The parser repairs malformed markup rather than failing, which is the
	// common case for real web pages.
	got, err := TextFromString("<p>Unclosed paragraph<div>Next block</p>")
	if err != nil {
		t.Fatalf("TextFromString() returned error: %v", err)
	}
	if !strings.Contains(got, "Unclosed paragraph") || !strings.Contains(got, "Next block") {
		t.Errorf("TextFromString() dropped content: %q", got)
	}
}

func TestIsHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"doctype", "<!DOCTYPE html><html></html>", true},
		{"html tag", "<html><body>hi</body></html>", true},
		{"paragraph fragment", "Intro text <p>more</p> outro", true},
		{"plain prose", "You can read this sentence.", false},
		{"prose with angle brackets", "Scores fall in the range 0 < x < 100.", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsHTML(tt.input); got != tt.want {
				t.Errorf("IsHTML(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

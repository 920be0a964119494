package pipeline

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestTidy - README normalization
// ---------------------------------------------------------------------------

func TestTidy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty document becomes single newline",
			input:    "",
			expected: "\n",
		},
		{
			name:     "adds final newline",
			input:    "# Title",
			expected: "# Title\n",
		},
		{
			name:     "collapses trailing newlines",
			input:    "# Title\n\n\n",
			expected: "# Title\n",
		},
		{
			name:     "collapses blank runs",
			input:    "a\n\n\n\nb",
			expected: "a\n\nb\n",
		},
		{
			name:     "drops leading blank lines",
			input:    "\n\n# Title",
			expected: "# Title\n",
		},
		{
			name:     "strips trailing spaces and tabs",
			input:    "line one \nline two\t",
			expected: "line one\nline two\n",
		},
		{
			name:     "hard break kept as backslash",
			input:    "a  \nb",
			expected: "a\\\nb\n",
		},
		{
			name:     "hard break before blank line stripped",
			input:    "a  \n\nb",
			expected: "a\n\nb\n",
		},
		{
			name:     "hard break at end of document stripped",
			input:    "a  ",
			expected: "a\n",
		},
		{
			name:     "hard break before fence stripped",
			input:    "a  \n```\nx\n```",
			expected: "a\n```\nx\n```\n",
		},
		{
			name:     "heading trailing spaces stripped",
			input:    "# Title  \nb",
			expected: "# Title\nb\n",
		},
		{
			name:     "tab is not a hard break",
			input:    "a\t\nb",
			expected: "a\nb\n",
		},
		{
			name:     "whitespace-only lines count as blank",
			input:    "a\n   \n\t\nb",
			expected: "a\n\nb\n",
		},
		{
			name:     "no-break space lines count as blank",
			input:    "a\n\n\u00a0\n\nb",
			expected: "a\n\nb\n",
		},
		{
			name:     "no-break space inside text kept",
			input:    "1\u00a0<=\u00a0n",
			expected: "1\u00a0<=\u00a0n\n",
		},
		{
			name:     "normalizes CRLF and CR",
			input:    "a\r\nb\rc",
			expected: "a\nb\nc\n",
		},
		{
			name:     "code block lines untouched",
			input:    "text\n```\nx = 1   \n\n\n\ny = 2\n```\n",
			expected: "text\n```\nx = 1   \n\n\n\ny = 2\n```\n",
		},
		{
			name:     "tilde fences recognized",
			input:    "~~~\nkeep  \n~~~\nstrip  ",
			expected: "~~~\nkeep  \n~~~\nstrip\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Tidy(tt.input)
			if got != tt.expected {
				t.Errorf("Tidy() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTidy_Idempotent(t *testing.T) {
	t.Parallel()

	input := "# Two Sum\n\n\nGiven nums.  \nThen more.  \n\n\u00a0\n\n## Example 1:\n```\nInput: nums = [2,7]\n\n```\n\n\n"
	once := Tidy(input)
	if twice := Tidy(once); twice != once {
		t.Errorf("Tidy not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

// ---------------------------------------------------------------------------
// TestTokenizeLines - Fence-aware line classification
// ---------------------------------------------------------------------------

func TestTokenizeLines(t *testing.T) {
	t.Parallel()

	tokens := tokenizeLines("intro\n```cpp\nint x;\n```\noutro")
	want := []lineKind{lineText, lineFence, lineCode, lineFence, lineText}

	if len(tokens) != len(want) {
		t.Fatalf("tokenizeLines() returned %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.kind != want[i] {
			t.Errorf("token %d (%q) kind = %d, want %d", i, tok.text, tok.kind, want[i])
		}
	}
}

func TestTokenizeLines_UnclosedFence(t *testing.T) {
	t.Parallel()

	tokens := tokenizeLines("```\na\nb")
	for _, tok := range tokens[1:] {
		if tok.kind != lineCode {
			t.Errorf("line %q after unclosed fence should be code, got kind %d", tok.text, tok.kind)
		}
	}
}

func TestTokenizeLines_IndentedFence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want lineKind
	}{
		{line: "   ```", want: lineFence},
		{line: "    ```", want: lineText},
	}

	for _, tt := range tests {
		tokens := tokenizeLines(tt.line)
		if tokens[0].kind != tt.want {
			t.Errorf("tokenizeLines(%q) kind = %d, want %d", tt.line, tokens[0].kind, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestConvertScriptPlaceholders - Marker substitution
// ---------------------------------------------------------------------------

func TestConvertScriptPlaceholders(t *testing.T) {
	t.Parallel()

	input := "10" + SupPlaceholder + "4" + SupPlaceholder + " and x" + SubPlaceholder + "i" + SubPlaceholder
	got := convertScriptPlaceholders(input)
	if got != "10^4^ and x_i_" {
		t.Errorf("convertScriptPlaceholders() = %q, want %q", got, "10^4^ and x_i_")
	}
	if strings.ContainsAny(got, SupPlaceholder+SubPlaceholder) {
		t.Error("placeholders should not survive conversion")
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	if got := normalizeLineEndings("a\r\n\r\nb\r"); got != "a\n\nb\n" {
		t.Errorf("normalizeLineEndings() = %q, want %q", got, "a\n\nb\n")
	}
}

package tokenize

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokens_Offsets(t *testing.T) {
	inputs := []string{
		"bugün like attım",
		"like'lamak çok kolay",
		"3 video izledim!!",
		"merhaba 👋 dünya",
		"İnstagram'da story paylaştım",
	}

	for _, input := range inputs {
		tokens := Tokens(input)

		var rebuilt strings.Builder
		for _, tok := range tokens {
			if input[tok.Start:tok.End] != tok.Text {
				t.Errorf("%q: token %v does not match its offsets", input, tok)
			}
			rebuilt.WriteString(tok.Text)
		}
		if rebuilt.String() != input {
			t.Errorf("%q: concatenated tokens = %q", input, rebuilt.String())
		}
	}
}

func TestTokens_Types(t *testing.T) {
	tokens := Tokens("2 video izledim!")

	wantTypes := []TokenType{Number, Space, Word, Space, Word, Punctuation}
	if len(tokens) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(wantTypes), tokens)
	}
	for i, want := range wantTypes {
		if tokens[i].Type != want {
			t.Errorf("token %d (%q): type = %v, want %v", i, tokens[i].Text, tokens[i].Type, want)
		}
	}
}

func TestTokens_Empty(t *testing.T) {
	if got := Tokens(""); got != nil {
		t.Errorf("Tokens(\"\") = %v, want nil", got)
	}
	if got := Words(""); got != nil {
		t.Errorf("Words(\"\") = %v, want nil", got)
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain mixed sentence",
			input: "bugün like attım yorum yaptım",
			want:  []string{"bugün", "like", "attım", "yorum", "yaptım"},
		},
		{
			name:  "hybrid stays one token",
			input: "like'lamak lazım",
			want:  []string{"like'lamak", "lazım"},
		},
		{
			name:  "curly apostrophe",
			input: "story’ler güzel",
			want:  []string{"story’ler", "güzel"},
		},
		{
			name:  "digits are separators",
			input: "3 video 100 beğeni",
			want:  []string{"video", "beğeni"},
		},
		{
			name:  "digits split words",
			input: "abc123def",
			want:  []string{"abc", "def"},
		},
		{
			name:  "punctuation and emoji dropped",
			input: "harika!! 😍 süper...",
			want:  []string{"harika", "süper"},
		},
		{
			name:  "trailing apostrophe not joined",
			input: "video' izledim",
			want:  []string{"video", "izledim"},
		},
		{
			name:  "only symbols",
			input: "!!! 123 😀",
			want:  nil,
		},
		{
			name:  "turkish dotted capital",
			input: "İstanbul çok güzel",
			want:  []string{"İstanbul", "çok", "güzel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenType_String(t *testing.T) {
	if Word.String() != "Word" {
		t.Errorf("Word.String() = %q", Word.String())
	}
	if TokenType(99).String() != "TokenType(99)" {
		t.Errorf("unknown type string = %q", TokenType(99).String())
	}
}

package classify

import "testing"

func TestDecompose(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		kind   ParseKind
		root   string
		suffix string
	}{
		{
			name:   "ascii apostrophe",
			token:  "like'lamak",
			kind:   Hybrid,
			root:   "like",
			suffix: "lamak",
		},
		{
			name:   "curly apostrophe",
			token:  "story’ler",
			kind:   Hybrid,
			root:   "story",
			suffix: "ler",
		},
		{
			name:   "modifier apostrophe",
			token:  "saveʼledim",
			kind:   Hybrid,
			root:   "save",
			suffix: "ledim",
		},
		{
			name:  "no delimiter",
			token: "video",
			kind:  Plain,
			root:  "video",
		},
		{
			name:  "trailing delimiter",
			token: "like'",
			kind:  Plain,
			root:  "like",
		},
		{
			name:  "leading delimiter",
			token: "'lamak",
			kind:  Plain,
			root:  "lamak",
		},
		{
			name:   "splits at first delimiter only",
			token:  "like'la'dım",
			kind:   Hybrid,
			root:   "like",
			suffix: "la'dım",
		},
		{
			name:  "empty token",
			token: "",
			kind:  Plain,
			root:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Decompose(tt.token)
			if p.Kind != tt.kind {
				t.Errorf("Decompose(%q).Kind = %v, want %v", tt.token, p.Kind, tt.kind)
			}
			if p.Root != tt.root {
				t.Errorf("Decompose(%q).Root = %q, want %q", tt.token, p.Root, tt.root)
			}
			if p.Suffix != tt.suffix {
				t.Errorf("Decompose(%q).Suffix = %q, want %q", tt.token, p.Suffix, tt.suffix)
			}
		})
	}
}

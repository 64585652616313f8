package analyze

import "testing"

func TestCountMistypes(t *testing.T) {
	tests := []struct {
		name     string
		commands []string
		want     int
	}{
		{
			name:     "empty history",
			commands: nil,
			want:     0,
		},
		{
			name:     "typo near a frequent command is not a mistype",
			commands: []string{"git status", "git status", "gti status"},
			want:     0,
		},
		{
			name:     "lone command with no similar sibling is a mistype",
			commands: []string{"git status", "git status", "qqqqwwwweeee"},
			want:     1,
		},
		{
			name:     "repeated commands are never flagged",
			commands: []string{"qqqqwwwweeee", "qqqqwwwweeee"},
			want:     0,
		},
		{
			name: "length gap rejects the sibling check",
			commands: []string{
				"git status", "git status",
				"deploy-prod-cluster",
			},
			want: 1,
		},
		{
			name:     "every command unique but mutually similar",
			commands: []string{"git status", "gti status", "git statu"},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			freq := Frequencies(tt.commands)
			if got := CountMistypes(tt.commands, freq); got != tt.want {
				t.Errorf("CountMistypes(%q) = %d, want %d", tt.commands, got, tt.want)
			}
		})
	}
}

func TestHasSimilarSibling(t *testing.T) {
	freq := Frequencies([]string{"git status", "ls -la", "docker ps"})

	tests := []struct {
		cmd  string
		want bool
	}{
		{"gti status", true},   // 2 edits away from "git status"
		{"git status", false},  // only compares against other commands
		{"qqqqwwwweeee", false},
		{"ls -l", true}, // 1 edit away from "ls -la"
	}

	for _, tt := range tests {
		if got := hasSimilarSibling(tt.cmd, freq); got != tt.want {
			t.Errorf("hasSimilarSibling(%q) = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

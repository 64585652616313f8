package search

import (
	"reflect"
	"testing"

	"github.com/chazuruo/past/internal/category"
)

func TestCommands(t *testing.T) {
	history := []string{"git status", "ls -la", "git push", "GIT log", "git status"}

	tests := []struct {
		name          string
		pattern       string
		caseSensitive bool
		want          []string
	}{
		{
			name:    "case-insensitive by default",
			pattern: "git",
			want:    []string{"git status", "git push", "GIT log", "git status"},
		},
		{
			name:          "case-sensitive on request",
			pattern:       "git",
			caseSensitive: true,
			want:          []string{"git status", "git push", "git status"},
		},
		{
			name:    "regex syntax works",
			pattern: "^git (status|push)$",
			want:    []string{"git status", "git push", "git status"},
		},
		{
			name:    "malformed pattern matches nothing",
			pattern: "[unclosed",
			want:    nil,
		},
		{
			name:    "no matches",
			pattern: "docker",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Commands(history, tt.pattern, tt.caseSensitive)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Commands(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestWordsDeduplicates(t *testing.T) {
	words := []string{"git", "status", "git", "push", "github"}

	got := Words(words, "git", false)
	want := []string{"git", "github"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %q, want %q", got, want)
	}
}

func TestByCategory(t *testing.T) {
	tables := category.DefaultTables()
	commands := []string{"git status", "cargo build", "htop", "git log"}

	matchedCmds, matchedCats := ByCategory(commands, tables, "Version", false)

	if want := []string{"git status", "git log"}; !reflect.DeepEqual(matchedCmds, want) {
		t.Errorf("ByCategory() commands = %q, want %q", matchedCmds, want)
	}
	if want := []string{"Version Ctrl"}; !reflect.DeepEqual(matchedCats, want) {
		t.Errorf("ByCategory() categories = %q, want %q", matchedCats, want)
	}
}

func TestByCategoryLanguageLabels(t *testing.T) {
	tables := category.DefaultTables()
	commands := []string{"cargo build", "htop"}

	matchedCmds, matchedCats := ByCategory(commands, tables, "Lang: Rust", false)

	if want := []string{"cargo build"}; !reflect.DeepEqual(matchedCmds, want) {
		t.Errorf("ByCategory() commands = %q, want %q", matchedCmds, want)
	}
	if want := []string{"Lang: Rust"}; !reflect.DeepEqual(matchedCats, want) {
		t.Errorf("ByCategory() categories = %q, want %q", matchedCats, want)
	}
}

func TestByCategoryMalformedPattern(t *testing.T) {
	tables := category.DefaultTables()
	cmds, cats := ByCategory([]string{"git status"}, tables, "(", false)
	if cmds != nil || cats != nil {
		t.Errorf("ByCategory() = %q, %q, want nil, nil", cmds, cats)
	}
}

func TestFilter(t *testing.T) {
	candidates := []string{"git status", "ls -la", "Git Push"}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "substring match is case-insensitive",
			query: "git",
			want:  []string{"git status", "Git Push"},
		},
		{
			name:  "no matches",
			query: "docker",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(candidates, tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterEmptyQueryReturnsCandidates(t *testing.T) {
	candidates := []string{"git status", "ls"}
	got := Filter(candidates, "")
	if !reflect.DeepEqual(got, candidates) {
		t.Errorf("Filter(\"\") = %q, want the candidate list unchanged", got)
	}
}

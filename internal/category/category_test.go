package category

import (
	"reflect"
	"testing"

	"github.com/chazuruo/past/internal/testutil"
)

func TestCategorize(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name string
		cmd  string
		want []string
	}{
		{
			name: "single category",
			cmd:  "git status",
			want: []string{"Version Ctrl"},
		},
		{
			name: "category plus language",
			cmd:  "cargo build",
			// "go " matching inside "cargo " is inherited keyword-overlap
			// behavior, see the package doc.
			want: []string{"Pkg Mgmt", "Lang: Rust", "Lang: Go"},
		},
		{
			name: "language only",
			cmd:  "python3 script.py",
			want: []string{"Lang: Python"},
		},
		{
			name: "case-insensitive matching",
			cmd:  "GIT Status",
			want: []string{"Version Ctrl"},
		},
		{
			name: "overlapping keywords label once",
			cmd:  "htop",
			want: []string{"Sys Monitor"},
		},
		{
			name: "no match falls back to Other",
			cmd:  "foobar",
			want: []string{OtherLabel},
		},
		{
			name: "empty command falls back to Other",
			cmd:  "",
			want: []string{OtherLabel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tables.Categorize(tt.cmd)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Categorize(%q) = %v, want %v", tt.cmd, got, tt.want)
			}
		})
	}
}

func TestCategorizeDeterministicOrder(t *testing.T) {
	tables := DefaultTables()

	first := tables.Categorize("cargo build")
	for i := 0; i < 10; i++ {
		if got := tables.Categorize("cargo build"); !reflect.DeepEqual(got, first) {
			t.Fatalf("Categorize() order changed between calls: %v vs %v", got, first)
		}
	}
}

func TestLabels(t *testing.T) {
	tables := DefaultTables()
	labels := tables.Labels()

	if len(labels) != len(tables.Categories)+len(tables.Languages)+1 {
		t.Fatalf("Labels() returned %d labels, want %d",
			len(labels), len(tables.Categories)+len(tables.Languages)+1)
	}
	if labels[0] != "Navigation" {
		t.Errorf("Labels()[0] = %q, want %q", labels[0], "Navigation")
	}
	if last := labels[len(labels)-1]; last != OtherLabel {
		t.Errorf("Labels() last = %q, want %q", last, OtherLabel)
	}
}

func TestCounts(t *testing.T) {
	tables := DefaultTables()
	commands := []string{"git status", "git log", "htop", "mystery"}

	counts := tables.Counts(commands)
	if counts["Version Ctrl"] != 2 {
		t.Errorf("Counts()[Version Ctrl] = %d, want 2", counts["Version Ctrl"])
	}
	if counts["Sys Monitor"] != 1 {
		t.Errorf("Counts()[Sys Monitor] = %d, want 1", counts["Sys Monitor"])
	}
	if counts[OtherLabel] != 1 {
		t.Errorf("Counts()[Other] = %d, want 1", counts[OtherLabel])
	}
}

func TestLoadTables(t *testing.T) {
	path := testutil.WriteFile(t, "categories.yaml", `
categories:
  - label: Deploys
    keywords: ["kubectl", "helm"]
`)

	tables, err := LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables() error = %v", err)
	}

	if len(tables.Categories) != 1 || tables.Categories[0].Label != "Deploys" {
		t.Errorf("LoadTables() categories = %+v, want single Deploys entry", tables.Categories)
	}
	// Languages were not overridden, the built-in table stays.
	if len(tables.Languages) != len(DefaultTables().Languages) {
		t.Errorf("LoadTables() replaced languages, want built-in table kept")
	}

	got := tables.Categorize("helm upgrade")
	if !reflect.DeepEqual(got, []string{"Deploys"}) {
		t.Errorf("Categorize(helm upgrade) = %v, want [Deploys]", got)
	}
}

func TestLoadTablesMissingFile(t *testing.T) {
	if _, err := LoadTables("/nonexistent/categories.yaml"); err == nil {
		t.Fatal("LoadTables() expected error for missing file")
	}
}

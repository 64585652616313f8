package history

import (
	"reflect"
	"testing"
)

func TestTokenizeCommands(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantCmds []string
	}{
		{
			name:     "numbered history output",
			raw:      "  1  ls -la\n  2  git commit -m \"fix bug\"\n",
			wantCmds: []string{"ls -la", `git commit -m "fix bug"`},
		},
		{
			name:     "bash timestamp markers are discarded",
			raw:      "#1616420000\ngit status\n#1616420100\ngit log\n",
			wantCmds: []string{"git status", "git log"},
		},
		{
			name:     "zsh extended history",
			raw:      ": 1700000000:0;npm install\n",
			wantCmds: []string{"npm install"},
		},
		{
			name:     "extended history with semicolon in command keeps the tail",
			raw:      ": 1700000000:0;git status; echo done\n",
			wantCmds: []string{"echo done"},
		},
		{
			name:     "plain lines are used verbatim",
			raw:      "make test\ncargo build\n",
			wantCmds: []string{"make test", "cargo build"},
		},
		{
			name:     "blank lines are dropped",
			raw:      "\n   \nls\n\n",
			wantCmds: []string{"ls"},
		},
		{
			name:     "bare index yields an empty command entry",
			raw:      "  42  \n",
			wantCmds: []string{""},
		},
		{
			name:     "empty input",
			raw:      "",
			wantCmds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, _ := Tokenize(tt.raw)
			if !reflect.DeepEqual(cmds, tt.wantCmds) {
				t.Errorf("Tokenize() commands = %q, want %q", cmds, tt.wantCmds)
			}
		})
	}
}

func TestTokenizeWords(t *testing.T) {
	raw := "  1  ls -la\n  2  git commit -m \"fix bug\"\n"
	_, words := Tokenize(raw)

	want := []string{"ls", "git", "commit", "fix bug"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("Tokenize() words = %q, want %q", words, want)
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want []string
	}{
		{
			name: "flags are dropped",
			cmd:  "ls -la --color",
			want: []string{"ls"},
		},
		{
			name: "quoted phrase is one token with quotes stripped",
			cmd:  `git commit -m "fix the bug"`,
			want: []string{"git", "commit", "fix the bug"},
		},
		{
			name: "tokens are lowercased",
			cmd:  "ECHO Hello",
			want: []string{"echo", "hello"},
		},
		{
			name: "purely numeric tokens are dropped",
			cmd:  "kill 1234",
			want: []string{"kill"},
		},
		{
			name: "commas split tokens",
			cmd:  "echo a,b",
			want: []string{"echo", "a", "b"},
		},
		{
			name: "single quotes are stripped",
			cmd:  "grep 'pattern' file.txt",
			want: []string{"grep", "pattern", "file.txt"},
		},
		{
			name: "empty command yields no words",
			cmd:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.cmd)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %q, want %q", tt.cmd, got, tt.want)
			}
		})
	}
}

func TestTokenizeWordOrder(t *testing.T) {
	// Word order follows command order, then scan order within a command.
	raw := "tar xzf dist.tgz\nssh host uptime\n"
	_, words := Tokenize(raw)

	want := []string{"tar", "xzf", "dist.tgz", "ssh", "host", "uptime"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("Tokenize() words = %q, want %q", words, want)
	}
}

package category

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chazuruo/past/internal/errors"
)

// DefaultTables returns the built-in keyword tables. Keywords with a
// trailing space ("cd ", "go ") intentionally require a following argument
// to avoid some — not all — substring false positives.
func DefaultTables() *Tables {
	return &Tables{
		Categories: []Category{
			{Label: "Navigation", Keywords: []string{
				"cd ", "ls", "pwd", "dir", "pushd", "popd", "ll", "tree",
				"exa", "fd", "ranger", "nnn", "lf",
			}},
			{Label: "File Ops", Keywords: []string{
				"cp ", "mv ", "rm ", "mkdir", "touch", "chmod", "chown",
				"ln ", "rsync", "tar ", "gzip", "gunzip", "zip", "unzip",
				"7z", "rename", "trash", "shred",
			}},
			{Label: "Editors", Keywords: []string{
				"vim ", "nano ", "emacs", "code ", "subl ", "gedit", "pico",
				"vi", "micro", "kate", "atom", "neovim", "ed", "sed ", "awk ",
			}},
			{Label: "Version Ctrl", Keywords: []string{
				"git ", "hg ", "svn ", "fossil", "bzr", "cvs", "darcs",
				"git-lfs", "git-flow",
			}},
			{Label: "Pkg Mgmt", Keywords: []string{
				"apt", "yum", "dnf", "pacman", "brew", "pip ", "npm ",
				"snap", "flatpak", "zypper", "port", "apk", "dpkg", "rpm",
				"gem", "cargo", "go ", "dotnet",
			}},
			{Label: "Sys Monitor", Keywords: []string{
				"top", "htop", "ps ", "kill", "df ", "du ", "free", "btop",
				"glances", "nmon", "iotop", "iftop", "nethogs", "vmstat",
				"iostat", "dstat", "sar", "mpstat", "pidstat",
			}},
			{Label: "Network", Keywords: []string{
				"ssh ", "scp ", "ping", "curl", "wget", "ifconfig", "ip ",
				"sftp", "ftp", "telnet", "netstat", "ss", "traceroute",
				"tracepath", "mtr", "dig", "nslookup", "nmcli", "iwconfig",
			}},
			{Label: "Databases", Keywords: []string{
				"mysql", "psql", "sqlite3", "mongo", "redis-cli", "sqlcmd",
				"clickhouse-client", "influx", "cqlsh", "neo4j", "arangosh",
				"cockroach sql",
			}},
			{Label: "Containers", Keywords: []string{
				"docker ", "podman", "kubectl", "oc ", "ctr", "nerdctl",
				"lxc", "lxd", "vagrant", "virsh", "qemu", "lima", "colima",
			}},
			{Label: "Shell Builtins", Keywords: []string{
				"export", "source", "alias", "echo", "printf", "read",
				"set", "unset", "type", "hash", "history", "fc", "jobs",
				"bg", "fg", "wait", "times", "trap",
			}},
		},
		Languages: []Language{
			{Name: "Python", Keywords: []string{"python", "pip", "py ", "python3", "python2", "pylint", "pyflakes", "mypy", "black"}},
			{Name: "Java", Keywords: []string{"java ", "javac", "mvn ", "gradle", "ant ", "jbang", "groovy"}},
			{Name: "Rust", Keywords: []string{"rustc", "cargo", "rustup", "rustfmt", "clippy"}},
			{Name: "C/C++", Keywords: []string{"gcc", "g++", "clang", "make ", "cmake", "ninja", "gdb", "lldb", "valgrind", "cpp"}},
			{Name: "C#", Keywords: []string{"dotnet", "mono", "msbuild", "csc"}},
			{Name: "JavaScript", Keywords: []string{"node ", "npm ", "yarn", "deno", "tsc", "bun"}},
			{Name: "Go", Keywords: []string{"go ", "gofmt", "golangci-lint"}},
			{Name: "Ruby", Keywords: []string{"ruby ", "gem ", "rake", "bundle"}},
			{Name: "PHP", Keywords: []string{"php ", "composer", "phpunit"}},
			{Name: "Shell", Keywords: []string{"bash ", "sh ", "zsh ", "fish ", "dash", "ksh"}},
			{Name: "Assembly", Keywords: []string{"as ", "nasm", "yasm", "objdump", "gdb"}},
			{Name: "R", Keywords: []string{"r ", "rscript", "radian"}},
			{Name: "Perl", Keywords: []string{"perl ", "cpan"}},
			{Name: "Haskell", Keywords: []string{"ghc", "ghci", "stack", "cabal"}},
			{Name: "Lua", Keywords: []string{"lua ", "luac"}},
			{Name: "Dart", Keywords: []string{"dart ", "flutter"}},
			{Name: "Scala", Keywords: []string{"scala ", "scalac"}},
			{Name: "Kotlin", Keywords: []string{"kotlin", "kotlinc"}},
			{Name: "Swift", Keywords: []string{"swift ", "swiftc"}},
		},
	}
}

// LoadTables reads keyword tables from a YAML file. Either section may be
// omitted, in which case the built-in tables for that section are kept.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	var loaded Tables
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, &errors.ConfigError{Path: path, Err: err}
	}

	tables := DefaultTables()
	if len(loaded.Categories) > 0 {
		tables.Categories = loaded.Categories
	}
	if len(loaded.Languages) > 0 {
		tables.Languages = loaded.Languages
	}
	return tables, nil
}

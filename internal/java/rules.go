package java

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/thoreinstein/javafind/internal/logging"
	"github.com/thoreinstein/javafind/internal/paths"
)

// Rule is one search step of a platform table. Each rule turns a base
// location into candidate launcher paths.
type Rule interface {
	// String describes the searched location, e.g. "/usr/lib/jvm/*/bin".
	String() string

	collect(w *walker) []string
}

type joinFunc func(elem ...string) string

// joinerFor returns the path joiner for goos. The host joiner is used when
// goos is the running platform so the results are usable on disk.
func joinerFor(goos string) joinFunc {
	switch {
	case goos == runtime.GOOS:
		return filepath.Join
	case goos == paths.PlatformWindows:
		return windowsJoin
	default:
		return path.Join
	}
}

func windowsJoin(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		if e == "" {
			continue
		}
		if len(parts) > 0 {
			e = strings.TrimLeft(e, `\/`)
		}
		parts = append(parts, strings.TrimRight(e, `\/`))
	}
	return strings.Join(parts, `\`)
}

// walker carries the per-scan state rules need.
type walker struct {
	ctx       context.Context
	fsys      Filesystem
	join      joinFunc
	launchers []string
	logger    *slog.Logger
}

func (w *walker) launchersFor(all bool) []string {
	if all || len(w.launchers) < 2 {
		return w.launchers
	}
	return w.launchers[:1]
}

// childDirs lists the directories directly under base. A missing or
// unreadable base yields nothing.
func (w *walker) childDirs(base string, match func(name string) bool) []string {
	entries, err := w.fsys.ReadDir(base)
	if err != nil {
		w.logger.Log(w.ctx, logging.LevelTrace, "search directory unavailable", "dir", base, "error", err)
		return nil
	}

	var dirs []string
	for _, entry := range entries {
		if match != nil && !match(strings.ToLower(entry.Name())) {
			continue
		}
		full := w.join(base, entry.Name())
		if isDir(w.fsys, entry, full) {
			dirs = append(dirs, full)
		}
	}
	return dirs
}

// fileRule yields fixed paths.
type fileRule struct {
	label string
	paths []string
}

func (r fileRule) String() string { return r.label }

func (r fileRule) collect(_ *walker) []string {
	return append([]string(nil), r.paths...)
}

// childrenRule treats every directory under base as an installation and
// yields <child>/<layout...>/<launcher>.
type childrenRule struct {
	base   string
	layout []string

	// all searches every launcher; otherwise only the primary one.
	all bool
}

func (r childrenRule) String() string {
	return strings.Join(append([]string{r.base, "*"}, r.layout...), "/")
}

func (r childrenRule) collect(w *walker) []string {
	var out []string
	for _, launcher := range w.launchersFor(r.all) {
		for _, child := range w.childDirs(r.base, nil) {
			elems := append([]string{child}, r.layout...)
			out = append(out, w.join(append(elems, launcher)...))
		}
	}
	return out
}

// nestedRule searches package directories whose lower-cased name matches,
// then every version directory inside them, yielding one candidate per
// layout. Homebrew's Cellar and Scoop's apps folder both look like this.
type nestedRule struct {
	base    string
	desc    string
	match   func(name string) bool
	layouts [][]string
}

func (r nestedRule) String() string {
	return r.base + "/" + r.desc + "/*"
}

func (r nestedRule) collect(w *walker) []string {
	launcher := w.launchersFor(false)[0]

	var out []string
	for _, pkg := range w.childDirs(r.base, r.match) {
		for _, version := range w.childDirs(pkg, nil) {
			for _, layout := range r.layouts {
				elems := append([]string{version}, layout...)
				out = append(out, w.join(append(elems, launcher)...))
			}
		}
	}
	return out
}

// jetbrainsRule searches JetBrains Toolbox apps for a bundled runtime,
// both directly in each app and one channel directory deeper.
type jetbrainsRule struct {
	base string
}

func (r jetbrainsRule) String() string {
	return r.base + "/*/[*/]jbr/bin"
}

func (r jetbrainsRule) collect(w *walker) []string {
	launcher := w.launchersFor(false)[0]

	var out []string
	for _, app := range w.childDirs(r.base, nil) {
		out = append(out, w.join(app, "jbr", "bin", launcher))
		for _, channel := range w.childDirs(app, nil) {
			out = append(out, w.join(channel, "jbr", "bin", launcher))
		}
	}
	return out
}

// platformRules returns the well-known directory table for goos. Platforms
// without a table get none.
func platformRules(env Environment, goos string, join joinFunc) []Rule {
	switch goos {
	case paths.PlatformLinux:
		return linuxRules(env, join)
	case paths.PlatformDarwin:
		return darwinRules(env, join)
	case paths.PlatformWindows:
		return windowsRules(env, join)
	default:
		return nil
	}
}

func binRule(base string) childrenRule {
	return childrenRule{base: base, layout: []string{"bin"}}
}

// userRules are the version managers shared by linux and darwin.
func userRules(env Environment, join joinFunc, home string) []Rule {
	sdkman, ok := nonEmpty(env, "SDKMAN_DIR")
	if !ok {
		sdkman = join(home, ".sdkman")
	}
	return []Rule{
		binRule(join(sdkman, "candidates", "java")),
		binRule(join(home, ".jabba", "jdk")),
	}
}

func linuxRules(env Environment, join joinFunc) []Rule {
	rules := []Rule{
		binRule("/usr/lib/jvm"),
		binRule("/usr/lib64/jvm"),
		binRule("/usr/lib32/jvm"),
		binRule("/usr/local/lib/jvm"),
		binRule("/usr/java"),
		binRule("/snap"),
		binRule("/var/lib/flatpak/runtime"),
	}

	home, ok := nonEmpty(env, "HOME")
	if !ok {
		return rules
	}
	rules = append(rules, userRules(env, join, home)...)
	return append(rules,
		jetbrainsRule{base: join(home, ".local", "share", "JetBrains", "Toolbox", "apps")},
		binRule(join(home, ".asdf", "installs", "java")),
	)
}

var (
	bundleLayout = []string{"Contents", "Home", "bin"}
	cellarLayout = []string{"libexec", "openjdk.jdk", "Contents", "Home", "bin"}
)

func darwinRules(env Environment, join joinFunc) []Rule {
	cellar := func(base string) nestedRule {
		return nestedRule{
			base:    base,
			desc:    "openjdk*",
			match:   func(name string) bool { return strings.HasPrefix(name, "openjdk") },
			layouts: [][]string{{"bin"}, cellarLayout},
		}
	}

	rules := []Rule{
		fileRule{label: "/usr/bin/java", paths: []string{"/usr/bin/java"}},
		binRule("/usr/local/opt"),
		binRule("/opt/homebrew/opt"),
		cellar("/usr/local/Cellar"),
		cellar("/opt/homebrew/Cellar"),
		childrenRule{base: "/Library/Java/JavaVirtualMachines", layout: bundleLayout},
	}

	home, ok := nonEmpty(env, "HOME")
	if !ok {
		return rules
	}
	rules = append(rules, childrenRule{base: join(home, "Library", "Java", "JavaVirtualMachines"), layout: bundleLayout})
	rules = append(rules, userRules(env, join, home)...)
	return append(rules,
		jetbrainsRule{base: join(home, "Library", "Application Support", "JetBrains", "Toolbox", "apps")},
	)
}

// windowsVendorFolders are the folder names vendors install under in
// Program Files.
var windowsVendorFolders = []string{
	"Java",
	"Eclipse Adoptium",
	"AdoptOpenJDK",
	"Microsoft",
	"Zulu",
	"BellSoft",
	"Semeru",
	"Amazon Corretto",
	"Liberica",
	"sapmachine",
}

func windowsProgramRoots(env Environment) []string {
	var roots []string
	for _, key := range []string{"ProgramFiles", "ProgramFiles(x86)", "ProgramW6432"} {
		if v, ok := nonEmpty(env, key); ok {
			roots = append(roots, v)
		}
	}
	roots = append(roots, `C:\Program Files`, `C:\Program Files (x86)`)

	// Windows paths are case-insensitive.
	unique := roots[:0]
	for _, root := range roots {
		dup := false
		for _, seen := range unique {
			if strings.EqualFold(seen, root) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, root)
		}
	}
	return unique
}

func windowsRules(env Environment, join joinFunc) []Rule {
	var rules []Rule
	for _, root := range windowsProgramRoots(env) {
		for _, folder := range windowsVendorFolders {
			rules = append(rules, childrenRule{base: join(root, folder), layout: []string{"bin"}, all: true})
		}
	}

	profile, hasProfile := nonEmpty(env, "USERPROFILE")
	if hasProfile {
		scoop, ok := nonEmpty(env, "SCOOP")
		if !ok {
			scoop = join(profile, "scoop")
		}
		rules = append(rules,
			childrenRule{base: join(scoop, "apps", "java"), layout: []string{"bin"}, all: true},
			nestedRule{
				base: join(scoop, "apps"),
				desc: "*{jdk,jre,java}*",
				match: func(name string) bool {
					return strings.Contains(name, "jdk") || strings.Contains(name, "jre") || strings.Contains(name, "java")
				},
				layouts: [][]string{{"bin"}},
			},
		)
	}

	choco, ok := nonEmpty(env, "ChocolateyInstall")
	if !ok {
		choco = `C:\ProgramData\chocolatey`
	}
	rules = append(rules, binRule(join(choco, "lib")))

	if hasProfile {
		rules = append(rules, binRule(join(profile, ".sdkman", "candidates", "java")))
	}
	if local, ok := nonEmpty(env, "LOCALAPPDATA"); ok {
		rules = append(rules, jetbrainsRule{base: join(local, "JetBrains", "Toolbox", "apps")})
	}
	return rules
}

package java

import (
	"context"
	"strings"

	"github.com/thoreinstein/javafind/internal/logging"
	"github.com/thoreinstein/javafind/internal/platform"
)

// Locator enumerates paths that might be Java launchers. It only lists
// directories; whether a candidate exists is decided by Filter.
type Locator struct {
	env       Environment
	fsys      Filesystem
	host      platform.Host
	join      joinFunc
	extraDirs []string
}

// NewLocator returns a Locator for the platform reported by env. Each
// extra directory is searched like a JVM directory after the platform
// table.
func NewLocator(env Environment, fsys Filesystem, extraDirs ...string) *Locator {
	goos := env.GOOS()
	return &Locator{
		env:       env,
		fsys:      fsys,
		host:      platform.For(goos),
		join:      joinerFor(goos),
		extraDirs: extraDirs,
	}
}

// Host returns the platform identity the locator searches for.
func (l *Locator) Host() platform.Host {
	return l.host
}

// Rules returns the search steps in order: PATH, JAVA_HOME, the platform
// table, then extra directories.
func (l *Locator) Rules() []Rule {
	var rules []Rule

	if pathVar, ok := nonEmpty(l.env, "PATH"); ok {
		var found []string
		for _, dir := range strings.Split(pathVar, l.host.ListSeparator) {
			if dir == "" {
				continue
			}
			for _, launcher := range l.host.Launchers {
				found = append(found, l.join(dir, launcher))
			}
		}
		rules = append(rules, fileRule{label: "PATH", paths: found})
	}

	if home, ok := nonEmpty(l.env, "JAVA_HOME"); ok {
		found := make([]string, 0, len(l.host.Launchers))
		for _, launcher := range l.host.Launchers {
			found = append(found, l.join(home, "bin", launcher))
		}
		rules = append(rules, fileRule{label: "JAVA_HOME", paths: found})
	}

	rules = append(rules, platformRules(l.env, l.host.Name, l.join)...)

	for _, dir := range l.extraDirs {
		rules = append(rules, childrenRule{base: dir, layout: []string{"bin"}, all: true})
	}
	return rules
}

// RuleCandidates is the output of one search step.
type RuleCandidates struct {
	Rule       string
	Candidates []string
}

// Trace runs every rule and reports what each one produced.
func (l *Locator) Trace(ctx context.Context) []RuleCandidates {
	w := &walker{
		ctx:       ctx,
		fsys:      l.fsys,
		join:      l.join,
		launchers: l.host.Launchers,
		logger:    logging.FromContext(ctx),
	}

	rules := l.Rules()
	out := make([]RuleCandidates, 0, len(rules))
	for _, rule := range rules {
		found := rule.collect(w)
		w.logger.Log(ctx, logging.LevelTrace, "search rule", "rule", rule.String(), "candidates", len(found))
		out = append(out, RuleCandidates{Rule: rule.String(), Candidates: found})
	}
	return out
}

// Candidates returns every candidate path in search order. It never fails;
// missing directories and variables contribute nothing.
func (l *Locator) Candidates(ctx context.Context) []string {
	var all []string
	for _, rc := range l.Trace(ctx) {
		all = append(all, rc.Candidates...)
	}
	return all
}

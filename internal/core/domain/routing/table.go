// Package routing decides where a user should land given their role, profile
// state and the path they asked for. The decision is a priority-ordered table
// of rules evaluated as a pure function, independent of any UI framework.
package routing

import (
	"path"
	"strings"
)

// Role is the account role attached to a session.
type Role string

const (
	RoleNone     Role = ""
	RoleCustomer Role = "customer"
	RoleRunner   Role = "runner"
	RoleAdmin    Role = "admin"
)

const (
	PathRoot    = "/"
	PathLogin   = "/login"
	PathSignup  = "/signup"
	PathWelcome = "/welcome"

	onboardingPrefix = "/onboarding"
)

// Input is one routing question.
type Input struct {
	Role            Role
	ProfileComplete bool
	CurrentPath     string
}

// Decision is the answer. Redirect is false when Target equals the cleaned
// current path.
type Decision struct {
	Target   string
	Redirect bool
	Rule     string
}

type rule struct {
	name   string
	when   func(in Input) bool
	target func(in Input) string
}

// table is evaluated top to bottom; the first matching rule wins. The last
// rule always matches.
var table = []rule{
	{
		name:   "anonymous-public",
		when:   func(in Input) bool { return in.Role == RoleNone && isPublic(in.CurrentPath) },
		target: func(in Input) string { return in.CurrentPath },
	},
	{
		name:   "anonymous",
		when:   func(in Input) bool { return in.Role == RoleNone },
		target: func(Input) string { return PathLogin },
	},
	{
		name:   "unknown-role",
		when:   func(in Input) bool { return !in.Role.IsKnown() },
		target: func(Input) string { return PathLogin },
	},
	{
		name:   "onboarding-required",
		when:   func(in Input) bool { return !in.ProfileComplete && in.Role.NeedsOnboarding() },
		target: func(in Input) string { return in.Role.OnboardingPath() },
	},
	{
		name:   "leave-entry-pages",
		when:   func(in Input) bool { return isPublic(in.CurrentPath) || isOnboarding(in.CurrentPath) },
		target: func(in Input) string { return in.Role.HomePath() },
	},
	{
		name:   "foreign-area",
		when:   func(in Input) bool { return inForeignArea(in.Role, in.CurrentPath) },
		target: func(in Input) string { return in.Role.HomePath() },
	},
	{
		name:   "stay",
		when:   func(Input) bool { return true },
		target: func(in Input) string { return in.CurrentPath },
	},
}

// Resolve evaluates the routing table.
//
// Example:
//
//	d := routing.Resolve(routing.Input{Role: routing.RoleRunner, CurrentPath: "/customer/home"})
//	// d.Target == "/onboarding/runner", d.Rule == "onboarding-required"
func Resolve(in Input) Decision {
	in.CurrentPath = cleanPath(in.CurrentPath)

	for _, r := range table {
		if !r.when(in) {
			continue
		}
		target := r.target(in)
		return Decision{
			Target:   target,
			Redirect: target != in.CurrentPath,
			Rule:     r.name,
		}
	}

	return Decision{Target: in.CurrentPath, Rule: "stay"}
}

func (r Role) IsKnown() bool {
	return r == RoleCustomer || r == RoleRunner || r == RoleAdmin
}

// NeedsOnboarding is false for admins, whose accounts are provisioned complete.
func (r Role) NeedsOnboarding() bool {
	return r == RoleCustomer || r == RoleRunner
}

func (r Role) HomePath() string {
	switch r {
	case RoleCustomer:
		return "/customer/home"
	case RoleRunner:
		return "/runner/home"
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleNone:
		return PathLogin
	default:
		return PathLogin
	}
}

func (r Role) OnboardingPath() string {
	return onboardingPrefix + "/" + string(r)
}

func (r Role) areaPrefix() string {
	return "/" + string(r)
}

func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return PathRoot
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func isPublic(p string) bool {
	switch p {
	case PathRoot, PathLogin, PathSignup, PathWelcome:
		return true
	default:
		return false
	}
}

func isOnboarding(p string) bool {
	return hasPathPrefix(p, onboardingPrefix)
}

func inForeignArea(r Role, p string) bool {
	for _, other := range []Role{RoleCustomer, RoleRunner, RoleAdmin} {
		if other != r && hasPathPrefix(p, other.areaPrefix()) {
			return true
		}
	}
	return false
}

func hasPathPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

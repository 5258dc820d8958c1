package routing_test

import (
	"testing"

	"cashrun/internal/core/domain/routing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		in       routing.Input
		target   string
		redirect bool
		rule     string
	}{
		{"anonymous on login stays", routing.Input{CurrentPath: "/login"}, "/login", false, "anonymous-public"},
		{"anonymous on root stays", routing.Input{CurrentPath: ""}, "/", false, "anonymous-public"},
		{"anonymous on private page goes to login", routing.Input{CurrentPath: "/customer/orders"}, "/login", true, "anonymous"},
		{"unknown role goes to login", routing.Input{Role: "dispatcher", ProfileComplete: true, CurrentPath: "/x"}, "/login", true, "unknown-role"},
		{"customer without profile is onboarded", routing.Input{Role: routing.RoleCustomer, CurrentPath: "/customer/home"}, "/onboarding/customer", true, "onboarding-required"},
		{"runner already onboarding stays", routing.Input{Role: routing.RoleRunner, CurrentPath: "/onboarding/runner"}, "/onboarding/runner", false, "onboarding-required"},
		{"runner on customer onboarding is moved", routing.Input{Role: routing.RoleRunner, CurrentPath: "/onboarding/customer"}, "/onboarding/runner", true, "onboarding-required"},
		{"admin skips onboarding", routing.Input{Role: routing.RoleAdmin, CurrentPath: "/admin/atms"}, "/admin/atms", false, "stay"},
		{"complete customer leaves login", routing.Input{Role: routing.RoleCustomer, ProfileComplete: true, CurrentPath: "/login"}, "/customer/home", true, "leave-entry-pages"},
		{"complete runner leaves onboarding", routing.Input{Role: routing.RoleRunner, ProfileComplete: true, CurrentPath: "/onboarding/runner/step-2"}, "/runner/home", true, "leave-entry-pages"},
		{"admin on root goes to dashboard", routing.Input{Role: routing.RoleAdmin, CurrentPath: "/"}, "/admin/dashboard", true, "leave-entry-pages"},
		{"customer in runner area goes home", routing.Input{Role: routing.RoleCustomer, ProfileComplete: true, CurrentPath: "/runner/jobs"}, "/customer/home", true, "foreign-area"},
		{"runner in admin area goes home", routing.Input{Role: routing.RoleRunner, ProfileComplete: true, CurrentPath: "/admin"}, "/runner/home", true, "foreign-area"},
		{"prefix lookalike is not a foreign area", routing.Input{Role: routing.RoleCustomer, ProfileComplete: true, CurrentPath: "/runners-faq"}, "/runners-faq", false, "stay"},
		{"customer in own area stays", routing.Input{Role: routing.RoleCustomer, ProfileComplete: true, CurrentPath: "/customer/orders/42?tab=chat"}, "/customer/orders/42", false, "stay"},
		{"paths are cleaned", routing.Input{Role: routing.RoleRunner, ProfileComplete: true, CurrentPath: "runner//home/"}, "/runner/home", false, "stay"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := routing.Resolve(tc.in)

			assert.Equal(t, tc.target, d.Target)
			assert.Equal(t, tc.redirect, d.Redirect)
			assert.Equal(t, tc.rule, d.Rule)
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	in := routing.Input{Role: routing.RoleCustomer, CurrentPath: "/runner/jobs"}
	assert.Equal(t, routing.Resolve(in), routing.Resolve(in))
}

func TestRole_Paths(t *testing.T) {
	assert.Equal(t, "/customer/home", routing.RoleCustomer.HomePath())
	assert.Equal(t, "/runner/home", routing.RoleRunner.HomePath())
	assert.Equal(t, "/admin/dashboard", routing.RoleAdmin.HomePath())
	assert.Equal(t, "/login", routing.Role("x").HomePath())
	assert.Equal(t, "/onboarding/runner", routing.RoleRunner.OnboardingPath())
	assert.False(t, routing.RoleAdmin.NeedsOnboarding())
}

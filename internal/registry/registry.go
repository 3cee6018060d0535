// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package registry holds the static, build-time capability table. It is the
// schema-of-record for flag keys that were never toggled at runtime;
// changing it requires a deploy.
package registry

// Capability describes one platform capability that can be toggled per
// tenant.
type Capability struct {
	Name           string
	Description    string
	DefaultEnabled bool
}

var capabilities = map[string]Capability{
	"client_portal": {
		Name:           "Client portal",
		Description:    "End-customer login area for a tenant's clients.",
		DefaultEnabled: true,
	},
	"deals_pipeline": {
		Name:           "Deals pipeline",
		Description:    "Kanban-style deal tracking.",
		DefaultEnabled: true,
	},
	"support_tickets": {
		Name:           "Support tickets",
		Description:    "Ticketing between customers and tenant staff.",
		DefaultEnabled: true,
	},
	"white_label": {
		Name:           "White labelling",
		Description:    "Custom branding on tenant-facing surfaces.",
		DefaultEnabled: false,
	},
	"api_access": {
		Name:           "API access",
		Description:    "Programmatic access tokens for tenant admins.",
		DefaultEnabled: false,
	},
	"bulk_export": {
		Name:           "Bulk export",
		Description:    "CSV export of customer records and deals.",
		DefaultEnabled: true,
	},
}

// Get returns the capability for key, if registered.
func Get(key string) (Capability, bool) {
	c, ok := capabilities[key]
	return c, ok
}

// Keys returns all registered capability keys.
func Keys() []string {
	keys := make([]string, 0, len(capabilities))
	for k := range capabilities {
		keys = append(keys, k)
	}
	return keys
}

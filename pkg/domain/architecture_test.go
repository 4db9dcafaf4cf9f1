package domain

import (
	"testing"

	"farmtwin/testutil"
)

// TestDomainDoesNotImportInternal keeps the domain layer free of the core and
// infrastructure packages.
func TestDomainDoesNotImportInternal(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.InternalImportForbidden, "domain must not depend on internal packages")
}

// TestDomainHasNoDriverDependencies checks the whole import graph so a helper
// package cannot pull a storage or cloud SDK into the domain layer.
func TestDomainHasNoDriverDependencies(t *testing.T) {
	testutil.AssertNoTransitiveDependency(t, "farmtwin/pkg/domain", func(p string) bool {
		return testutil.DriverImportForbidden(p) || testutil.InternalImportForbidden(p)
	}, "domain must stay free of drivers")
}

package cache

import "fmt"

// key names definition
const (
	PackagesActiveKey = "packages:active" // the public catalog, unfiltered
	DashboardStatsKey = "dashboard:stats" // admin aggregate counters

	PackageKey = "package:%d" // a single package, '%d' is package id
)

func MakePackageKey(packageID uint) string {
	return fmt.Sprintf(PackageKey, packageID)
}

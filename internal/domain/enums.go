package domain

// Framework names the package an artifact was generated by.
type Framework string

const (
	FrameworkSprint        Framework = "sprint"
	FrameworkStoryBrand    Framework = "storybrand"
	FrameworkLeanCanvas    Framework = "leancanvas"
	FrameworkLandingPage   Framework = "landingpage"
	FrameworkStartupSchool Framework = "startupschool"
	FrameworkNaming        Framework = "naming"
	FrameworkLaunchKit     Framework = "launchkit"
)

// ValidFrameworks is the canonical set of accepted framework strings.
var ValidFrameworks = map[string]bool{
	"sprint": true, "storybrand": true, "leancanvas": true, "landingpage": true,
	"startupschool": true, "naming": true, "launchkit": true,
}

// ParseFramework validates s as a Framework.
func ParseFramework(s string) (Framework, bool) {
	if !ValidFrameworks[s] {
		return "", false
	}
	return Framework(s), true
}

package tendon

import (
	"fmt"
	"strings"
)

// NamingRule derives a new node name from a source name by substring
// replacement, e.g. {Search: "skin", Replace: "fk"} turns
// "L_arm_01_skin_jnt" into "L_arm_01_fk_jnt".
type NamingRule struct {
	Search  string `yaml:"search"`
	Replace string `yaml:"replace"`
}

// Apply returns the name with every occurrence of Search replaced.
// An empty rule leaves the name unchanged.
func (r NamingRule) Apply(name string) string {
	if r.Search == "" {
		return name
	}
	return strings.ReplaceAll(name, r.Search, r.Replace)
}

// SideTag marks which side of the character a limb belongs to.
type SideTag int

const (
	SideCenter SideTag = iota
	SideLeft
	SideRight
)

var sideNames = map[SideTag]string{
	SideCenter: "center",
	SideLeft:   "left",
	SideRight:  "right",
}

func (s SideTag) String() string {
	if name, ok := sideNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SideTag(%d)", int(s))
}

// ParseSideTag parses "left", "right" or "center".
func ParseSideTag(s string) (SideTag, error) {
	for tag, name := range sideNames {
		if name == s {
			return tag, nil
		}
	}
	return SideCenter, fmt.Errorf("unknown side tag %q", s)
}

// SideFromName infers the side from the L_/R_ prefix convention used by the
// skin joints. Names without either marker are treated as center.
func SideFromName(name string) SideTag {
	side := SideCenter
	if strings.Contains(name, "L_") {
		side = SideLeft
	}
	if strings.Contains(name, "R_") {
		side = SideRight
	}
	return side
}

// prefix is the single-letter form used in control names.
func (s SideTag) prefix() string {
	switch s {
	case SideLeft:
		return "L"
	case SideRight:
		return "R"
	default:
		return "C"
	}
}

func ikControlName(side SideTag) string {
	return side.prefix() + "_ik_ctrl"
}

func pvControlName(side SideTag) string {
	return side.prefix() + "_pv_ctrl"
}

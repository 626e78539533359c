package types

import "strings"

// Shell labels an atomic electron shell.
type Shell string

// Known shells, innermost first.
const (
	ShellK Shell = "K"
	ShellL Shell = "L"
	ShellM Shell = "M"
	ShellN Shell = "N"
)

// String returns the string form of the shell label.
func (s Shell) String() string { return string(s) }

// Shells returns the known shell labels, innermost first.
func Shells() []Shell { return []Shell{ShellK, ShellL, ShellM, ShellN} }

// ParseShell normalises label case-insensitively; ok is false for labels
// outside the known set.
func ParseShell(label string) (Shell, bool) {
	s := Shell(strings.ToUpper(label))
	switch s {
	case ShellK, ShellL, ShellM, ShellN:
		return s, true
	}
	return s, false
}

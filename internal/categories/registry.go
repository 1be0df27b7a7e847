// Package categories implements the registry of valid transaction categories.
package categories

import (
	"os"
	"strings"

	"github.com/ryanuber/go-glob"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind partitions categories by the direction of the money movement.
type Kind string

const (
	KindIncome  Kind = "INCOME"
	KindExpense Kind = "EXPENSE"
)

// Valid reports whether the kind is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// DefaultIncome and DefaultExpense are the allow-lists used when no
// custom configuration is provided.
var (
	DefaultIncome  = []string{"Salary", "Freelance", "Investment", "Business", "Gift", "Other"}
	DefaultExpense = []string{"Food", "Rent", "Transportation", "Entertainment", "Healthcare", "Shopping", "Utilities", "Education", "Travel", "Other"}
)

var titleCaser = cases.Title(language.English)

// Registry validates category labels per transaction kind.
//
// In fixed mode a label is valid when it matches an allow-list entry for
// its kind. Matching is case-insensitive and entries may contain glob
// patterns. In open mode any non-empty label is accepted.
type Registry struct {
	open    bool
	allowed map[Kind][]string
}

// Fixed returns a Registry that only accepts the passed labels.
func Fixed(income, expense []string) *Registry {
	return &Registry{
		allowed: map[Kind][]string{
			KindIncome:  income,
			KindExpense: expense,
		},
	}
}

// Open returns a Registry that accepts any non-empty label.
func Open() *Registry {
	return &Registry{open: true}
}

// FromEnv returns the Registry configured by the CATEGORY_MODE
// environment variable. Every value except "open" means fixed mode
// with the default allow-lists.
func FromEnv() *Registry {
	if strings.EqualFold(os.Getenv("CATEGORY_MODE"), "open") {
		return Open()
	}

	return Fixed(DefaultIncome, DefaultExpense)
}

// Default is the registry used by the stores. It is replaced on startup
// with the configuration from the environment.
var Default = Fixed(DefaultIncome, DefaultExpense)

// Validate reports whether the label is a valid category for the kind.
func (r *Registry) Validate(kind Kind, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || !kind.Valid() {
		return false
	}

	if r.open {
		return true
	}

	for _, entry := range r.allowed[kind] {
		if glob.Glob(strings.ToLower(entry), strings.ToLower(name)) {
			return true
		}
	}

	return false
}

// Canonical returns the canonical spelling for a label of the given kind.
//
// When the label matches a literal allow-list entry, the entry's spelling
// wins. Otherwise (open mode or a glob match) the label is title-cased.
// The second return value mirrors Validate.
func (r *Registry) Canonical(kind Kind, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if !r.Validate(kind, name) {
		return "", false
	}

	for _, entry := range r.allowed[kind] {
		if !strings.Contains(entry, glob.GLOB) && strings.EqualFold(entry, name) {
			return entry, true
		}
	}

	return titleCaser.String(name), true
}

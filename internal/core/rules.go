package core

// rules.go is the type-rule table: a closed set of built-in rules plus a
// registry for deployment-specific additions.
//
// Every rule is a predicate over a non-null cell value; the null cell is
// accepted by all rules before dispatch (there is no required-field
// enforcement at this layer). Rule names the table does not know fall back
// to the permissive "string" rule -- that branch is explicit so the
// compiler can log it rather than hide it.

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Built-in rule names.
const (
	RuleString        = "string"
	RuleEmail         = "email"
	RuleSHA256        = "sha256"
	RuleEmailOrSHA256 = "email_or_sha256"
)

// RuleFunc checks one non-null cell value. A nil return accepts the value.
type RuleFunc func(value string) error

var sha256Re = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)

// validate is the shared validator instance backing the email rule.
var validate = validator.New()

var (
	rulesMu sync.RWMutex
	rules   = map[string]RuleFunc{
		RuleString:        ruleString,
		RuleEmail:         ruleEmail,
		RuleSHA256:        ruleSHA256,
		RuleEmailOrSHA256: ruleEmailOrSHA256,
	}
)

// RegisterRule adds a rule to the table under the given name.
// Panics if the name is already taken, matching the fail-at-startup
// behavior expected of init-time registration.
func RegisterRule(name string, fn RuleFunc) {
	rulesMu.Lock()
	defer rulesMu.Unlock()

	name = strings.ToLower(name)
	if _, exists := rules[name]; exists {
		panic(fmt.Sprintf("rule already registered: %s", name))
	}
	rules[name] = fn
}

// lookupRule resolves a rule name (case-insensitive) against the table.
// ok is false when the name is unknown and the caller should fall back.
func lookupRule(name string) (fn RuleFunc, ok bool) {
	rulesMu.RLock()
	defer rulesMu.RUnlock()

	fn, ok = rules[strings.ToLower(name)]
	return fn, ok
}

func ruleString(string) error {
	return nil
}

func ruleEmail(value string) error {
	if err := validate.Var(value, "email"); err != nil {
		return errors.New("must be a valid email address")
	}
	return nil
}

func ruleSHA256(value string) error {
	if !sha256Re.MatchString(value) {
		return errors.New("must be a hexadecimal SHA-256 (64 characters)")
	}
	return nil
}

// ruleEmailOrSHA256 accepts any value containing '@' without further email
// grammar checking. Downstream matching depends on this leniency; tighten
// only in lockstep with consumers.
func ruleEmailOrSHA256(value string) error {
	if strings.Contains(value, "@") {
		return nil
	}
	if !sha256Re.MatchString(value) {
		return errors.New("must be an email (clear) or a SHA-256 (64 hex)")
	}
	return nil
}

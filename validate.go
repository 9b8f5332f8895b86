package chatauth

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Canonical identifiers are lowercase: values pass through
// NormalizeIdentifier before the character rule applies, so the
// pattern only needs the lowercase ranges.
var usernameRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*[a-z0-9]$`)

var validate = validator.New()

// Fields maps an input field name to an error code. An empty map
// means the input passed validation.
type Fields map[string]string

const (
	passwordMinLen = 6
	passwordMaxLen = 99
	usernameMaxLen = 40
)

// NormalizeIdentifier trims surrounding whitespace and lowercases.
// Idempotent.
func NormalizeIdentifier(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeEmail returns the canonical form of an email address:
// trimmed, lowercased, with the provider-insignificant dots of gmail
// local parts removed and googlemail.com folded into gmail.com.
// Returns "" if the input does not look like an email address.
// Idempotent for any address it accepts.
func NormalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if !isEmail(email) {
		return ""
	}

	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]

	if domain == "googlemail.com" {
		domain = "gmail.com"
	}
	if domain == "gmail.com" {
		local = strings.ReplaceAll(local, ".", "")
		if local == "" {
			return ""
		}
	}

	return local + "@" + domain
}

func isEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

func isUsername(value string) bool {
	return usernameRegexp.MatchString(value)
}

type LoginValidation struct {
	Errors     Fields
	IsUsername bool
	IsValid    bool
}

// ValidateLogin checks the login fields and classifies the identifier
// as a username or an email. Each field records at most one error code,
// first failing rule wins.
func ValidateLogin(nameOrEmail, password string) LoginValidation {
	errs := Fields{}
	id := NormalizeIdentifier(nameOrEmail)
	isName := true

	switch {
	case id == "":
		errs["nameOrEmail"] = "nameOrEmail.required"
	case isEmail(id):
		isName = false
	case !isUsername(id):
		errs["nameOrEmail"] = "nameOrEmail.incorrect"
	}

	switch {
	case password == "":
		errs["password"] = "password.required"
	case len(password) < passwordMinLen || len(password) > passwordMaxLen:
		// a length failure reads the same as a malformed identifier,
		// so a probe cannot tell which check it tripped
		if _, ok := errs["nameOrEmail"]; !ok {
			errs["nameOrEmail"] = "nameOrEmail.incorrect"
		}
		errs["password"] = "password.incorrect"
	}

	return LoginValidation{
		Errors:     errs,
		IsUsername: isName,
		IsValid:    len(errs) == 0,
	}
}

type RegisterValidation struct {
	Errors  Fields
	IsValid bool
}

// ValidateRegister checks the four registration fields independently:
// a failure in one never short-circuits the others.
func ValidateRegister(name, email, password, password2 string) RegisterValidation {
	errs := Fields{}
	name = NormalizeIdentifier(name)
	email = NormalizeIdentifier(email)

	switch {
	case name == "":
		errs["name"] = "name.required"
	case len(name) > usernameMaxLen:
		errs["name"] = "name.length"
	case !isUsername(name):
		errs["name"] = "name.validChars"
	}

	switch {
	case email == "":
		errs["email"] = "email.required"
	case !isEmail(email):
		errs["email"] = "email.isEmail"
	}

	switch {
	case password == "":
		errs["password"] = "password.required"
	case len(password) < passwordMinLen || len(password) > passwordMaxLen:
		errs["password"] = "password.length"
	}

	switch {
	case password2 == "":
		errs["password2"] = "password2.required"
	case password2 != password:
		errs["password2"] = "password2.isMatch"
	}

	return RegisterValidation{Errors: errs, IsValid: len(errs) == 0}
}

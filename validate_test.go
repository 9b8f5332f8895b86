package chatauth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Alice ", "alice"},
		{"ALICE", "alice"},
		{"alice", "alice"},
		{"", ""},
	}

	for _, tt := range tests {
		got := NormalizeIdentifier(tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, NormalizeIdentifier(got))
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"A@X.COM", "a@x.com"},
		{"  a@x.com ", "a@x.com"},
		{"First.Last@Gmail.com", "firstlast@gmail.com"},
		{"first.last@googlemail.com", "firstlast@gmail.com"},
		{"first.last@x.com", "first.last@x.com"},
		{"not-an-email", ""},
		{"@x.com", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got := NormalizeEmail(tt.in)
		assert.Equal(t, tt.want, got)
		if got != "" {
			assert.Equal(t, got, NormalizeEmail(got))
		}
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name                  string
		nameOrEmail, password string
		wantErrs              Fields
		wantUsername          bool
	}{
		{
			name:        "valid username",
			nameOrEmail: "alice", password: "secret1",
			wantErrs: Fields{}, wantUsername: true,
		},
		{
			name:        "valid email",
			nameOrEmail: "a@x.com", password: "secret1",
			wantErrs: Fields{},
		},
		{
			name:        "uppercase identifier is folded before the rule",
			nameOrEmail: "ALICE", password: "secret1",
			wantErrs: Fields{}, wantUsername: true,
		},
		{
			name:     "empty identifier",
			password: "secret1",
			wantErrs: Fields{"nameOrEmail": "nameOrEmail.required"}, wantUsername: true,
		},
		{
			name:        "malformed identifier",
			nameOrEmail: "-alice!", password: "secret1",
			wantErrs: Fields{"nameOrEmail": "nameOrEmail.incorrect"}, wantUsername: true,
		},
		{
			name:        "empty password",
			nameOrEmail: "alice",
			wantErrs:    Fields{"password": "password.required"}, wantUsername: true,
		},
		{
			name:        "short password blamed on both fields",
			nameOrEmail: "alice", password: "abc",
			wantErrs: Fields{
				"nameOrEmail": "nameOrEmail.incorrect",
				"password":    "password.incorrect",
			},
			wantUsername: true,
		},
		{
			name:        "long password blamed on both fields",
			nameOrEmail: "alice", password: strings.Repeat("a", 100),
			wantErrs: Fields{
				"nameOrEmail": "nameOrEmail.incorrect",
				"password":    "password.incorrect",
			},
			wantUsername: true,
		},
		{
			name:     "first failing rule wins per field",
			password: "abc",
			wantErrs: Fields{
				"nameOrEmail": "nameOrEmail.required",
				"password":    "password.incorrect",
			},
			wantUsername: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateLogin(tt.nameOrEmail, tt.password)

			assert.Equal(t, tt.wantErrs, v.Errors)
			assert.Equal(t, tt.wantUsername, v.IsUsername)
			assert.Equal(t, len(tt.wantErrs) == 0, v.IsValid)
		})
	}
}

func TestValidateLogin_UsernameRule(t *testing.T) {
	valid := []string{"alice", "a1", "al-ice", "al_ice", "a-b-c", "42x"}
	for _, u := range valid {
		v := ValidateLogin(u, "secret1")
		assert.NotContains(t, v.Errors, "nameOrEmail", u)
		assert.True(t, v.IsUsername, u)
	}

	invalid := []string{"-alice", "alice-", "_alice", "al ice", "al@ice", "a"}
	for _, u := range invalid {
		v := ValidateLogin(u, "secret1")
		assert.Equal(t, "nameOrEmail.incorrect", v.Errors["nameOrEmail"], u)
	}
}

func TestValidateLogin_ClassifiesEmails(t *testing.T) {
	for _, e := range []string{"a@x.com", "first.last@sub.domain.org", "A@X.COM"} {
		v := ValidateLogin(e, "secret1")
		assert.False(t, v.IsUsername, e)
		assert.True(t, v.IsValid, e)
	}
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name                            string
		uname, email, password, confirm string
		wantErrs                        Fields
	}{
		{
			name:  "valid input",
			uname: "alice", email: "a@x.com", password: "secret1", confirm: "secret1",
			wantErrs: Fields{},
		},
		{
			name:     "everything missing",
			wantErrs: Fields{"name": "name.required", "email": "email.required", "password": "password.required", "password2": "password2.required"},
		},
		{
			name:  "name too long",
			uname: strings.Repeat("a", 41), email: "a@x.com", password: "secret1", confirm: "secret1",
			wantErrs: Fields{"name": "name.length"},
		},
		{
			name:  "name with invalid characters",
			uname: "-alice", email: "a@x.com", password: "secret1", confirm: "secret1",
			wantErrs: Fields{"name": "name.validChars"},
		},
		{
			name:  "bad email shape",
			uname: "alice", email: "a@x", password: "secret1", confirm: "secret1",
			wantErrs: Fields{"email": "email.isEmail"},
		},
		{
			name:  "short password",
			uname: "alice", email: "a@x.com", password: "abc", confirm: "abc",
			wantErrs: Fields{"password": "password.length"},
		},
		{
			name:  "mismatched confirmation",
			uname: "alice", email: "a@x.com", password: "secret1", confirm: "secret2",
			wantErrs: Fields{"password2": "password2.isMatch"},
		},
		{
			name:  "fields fail independently",
			uname: "-alice", email: "a@x", password: "abc", confirm: "xyz",
			wantErrs: Fields{
				"name":      "name.validChars",
				"email":     "email.isEmail",
				"password":  "password.length",
				"password2": "password2.isMatch",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateRegister(tt.uname, tt.email, tt.password, tt.confirm)

			assert.Equal(t, tt.wantErrs, v.Errors)
			assert.Equal(t, len(tt.wantErrs) == 0, v.IsValid)
		})
	}
}

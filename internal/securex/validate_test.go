package securex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple", "player@example.com", true},
		{"subdomain", "p1@mtg.planar.gg", true},
		{"missing at", "playerexample.com", false},
		{"missing tld dot", "player@example", false},
		{"two ats", "player@@example.com", false},
		{"space in local", "pla yer@example.com", false},
		{"empty", "", false},
		{"too long", strings.Repeat("a", 250) + "@x.io", false},
		{"max length ok", strings.Repeat("a", 244) + "@example.io", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("jace_beleren"))
	assert.True(t, IsValidUsername("abc"))
	assert.True(t, IsValidUsername("Liliana-13"))
	assert.True(t, IsValidUsername(strings.Repeat("x", 20)))

	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername(strings.Repeat("x", 21)))
	assert.False(t, IsValidUsername("nicol bolas"))
	assert.False(t, IsValidUsername("ugin!"))
	assert.False(t, IsValidUsername(""))
}

func TestIsValidPassword(t *testing.T) {
	assert.False(t, IsValidPassword("short"))
	assert.True(t, IsValidPassword("12345678"))
	assert.True(t, IsValidPassword(strings.Repeat("p", 128)))
	assert.False(t, IsValidPassword(strings.Repeat("p", 129)))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.True(t, IsValidUUID("123E4567-E89B-12D3-A456-426614174000"))

	// Alternate encodings uuid.Parse would accept must be rejected.
	assert.False(t, IsValidUUID("123e4567e89b12d3a456426614174000"))
	assert.False(t, IsValidUUID("urn:uuid:123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, IsValidUUID("{123e4567-e89b-12d3-a456-426614174000}"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidJWTFormat(t *testing.T) {
	assert.True(t, IsValidJWTFormat("aaa.bbb.ccc"))

	assert.False(t, IsValidJWTFormat("aaa.bbb"))
	assert.False(t, IsValidJWTFormat("aaa.bbb.ccc.ddd"))
	assert.False(t, IsValidJWTFormat("aaa..ccc"))
	assert.False(t, IsValidJWTFormat(".bbb.ccc"))
	assert.False(t, IsValidJWTFormat("aaa.bbb."))
	assert.False(t, IsValidJWTFormat(""))
	assert.False(t, IsValidJWTFormat("no dots at all"))
}

package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name    string `json:"name" validate:"required,max=5" msg:"name length must be between 1 and 5"`
	Login   string `json:"login" validate:"required,min=3,login" msg:"login is invalid"`
	Site    string `json:"websiteUrl" validate:"required,https_url" msg:"websiteUrl must be an https URL"`
	Comment string `json:"comment" validate:"notblank"`
}

func (s *sampleInput) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
}

func valid() *sampleInput {
	return &sampleInput{Name: "abc", Login: "bob_1", Site: "https://a.com", Comment: "hi"}
}

func TestCheck_Valid(t *testing.T) {
	assert.Empty(t, Check(valid()))
}

func TestCheck_NormalizesBeforeValidating(t *testing.T) {
	in := valid()
	in.Name = "   "
	errs := Check(in)
	require.Len(t, errs, 1)
	assert.Equal(t, FieldError{Field: "name", Message: "name length must be between 1 and 5"}, errs[0])
	assert.Equal(t, "", in.Name)
}

func TestCheck_UsesJSONNamesAndFieldOrder(t *testing.T) {
	errs := Check(&sampleInput{Name: "toolong", Login: "b!", Site: "http://a.com", Comment: "  "})
	require.Len(t, errs, 4)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "login", errs[1].Field)
	assert.Equal(t, "websiteUrl", errs[2].Field)
	assert.Equal(t, "comment", errs[3].Field)
	assert.Equal(t, "comment is required", errs[3].Message)
}

func TestCheck_HTTPSURL(t *testing.T) {
	tests := map[string]bool{
		"https://a.com":             true,
		"https://sub.example.io/x/": true,
		"http://a.com":              false,
		"https://localhost":         false,
		"a.com":                     false,
		"https://a.com/with space":  false,
	}
	for site, ok := range tests {
		in := valid()
		in.Site = site
		assert.Equal(t, ok, len(Check(in)) == 0, site)
	}
}

func TestDecodeError(t *testing.T) {
	var in struct {
		LoginOrEmail string `json:"loginOrEmail"`
	}
	err := json.Unmarshal([]byte(`{"loginOrEmail":{"$ne":null}}`), &in)
	require.Error(t, err)

	errs := DecodeError(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "loginOrEmail", errs[0].Field)
	assert.Equal(t, "loginOrEmail must be a string", errs[0].Message)

	err = json.Unmarshal([]byte(`{"loginOrEmail":`), &in)
	require.Error(t, err)
	assert.Equal(t, "body", DecodeError(err)[0].Field)
}

func TestErrors_Merge(t *testing.T) {
	a := Errors{{Field: "login", Message: "login must be a string"}}
	b := Errors{{Field: "login", Message: "login is required"}, {Field: "password", Message: "password is required"}}

	merged := a.Merge(b)
	require.Len(t, merged, 2)
	assert.Equal(t, "login must be a string", merged[0].Message)
	assert.Equal(t, "password", merged[1].Field)
	assert.Contains(t, merged.Error(), "password: password is required")
}

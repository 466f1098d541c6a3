package worktree

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBranchName_valid(t *testing.T) {
	for _, name := range []string{
		"042-valid-name",
		"main",
		"feature/042-login",
		"a",
	} {
		assert.NoError(t, ValidateBranchName(name), name)
	}
}

func TestValidateBranchName_rejections(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"", "must not be empty"},
		{"my feature", "whitespace"},
		{"tab\there", "whitespace"},
		{strings.Repeat("a", 201), "exceeds 200 characters"},
		{"what?now", "forbidden character"},
		{"a~b", "forbidden character"},
		{"a^b", "forbidden character"},
		{"a:b", "forbidden character"},
		{"a*b", "forbidden character"},
		{"a[b", "forbidden character"},
		{`a\b`, "forbidden character"},
		{"../etc", `contains ".."`},
		{"a..b", `contains ".."`},
		{".hidden", `starts or ends with "."`},
		{"trailing.", `starts or ends with "."`},
		{"/leading", `starts or ends with "/"`},
		{"trailing/", `starts or ends with "/"`},
		{"a//b", `contains "//"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBranchName(tc.name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidBranchName))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateBranchName_lengthBoundary(t *testing.T) {
	assert.NoError(t, ValidateBranchName(strings.Repeat("a", 200)))
	assert.Error(t, ValidateBranchName(strings.Repeat("a", 201)))
}

package services

import (
	"testing"

	"budget-assistant/internal/dto"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestContentRole(t *testing.T) {
	testCases := []struct {
		role     string
		expected genai.Role
	}{
		{dto.ChatRoleAssistant, genai.RoleModel},
		{dto.ChatRoleUser, genai.RoleUser},
		{"", genai.RoleUser},
		{"system", genai.RoleUser},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, contentRole(tc.role), "role %q", tc.role)
	}
}

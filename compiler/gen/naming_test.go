package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"USER_ACCOUNT", "userAccount"},
		{"user_account", "userAccount"},
		{"created_at", "createdAt"},
		{"ALLCAPS", "allcaps"},
		{"mixedCase", "mixedCase"},
		{"MixedCase", "mixedCase"},
		{"name", "name"},
		{"_leading", "leading"},
		{"double__under", "doubleUnder"},
		{"ID1", "iD1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PropertyName(tt.in))
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"USER_ACCOUNT", "UserAccount"},
		{"users", "Users"},
		{"ALLCAPS", "Allcaps"},
		{"mixedCase", "MixedCase"},
		{"Orders", "Orders"},
		{"order_line_items", "OrderLineItems"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeName(tt.in))
		})
	}
}

func TestWireNames(t *testing.T) {
	assert.Equal(t, "created_at", ColumnName("Created_AT"))
	assert.Equal(t, "users", TableName("USERS"))
	assert.Equal(t, "users.created_at", ConfigName("Users", "CREATED_AT"))
}

func TestEntityName(t *testing.T) {
	assert.Equal(t, "User", EntityName("users"))
	assert.Equal(t, "OrderItem", EntityName("order_items"))
	assert.Equal(t, "Category", EntityName("categories"))
}

func TestNamingIsDeterministic(t *testing.T) {
	for range 3 {
		assert.Equal(t, "userAccount", PropertyName("USER_ACCOUNT"))
		assert.Equal(t, "UserAccount", TypeName("USER_ACCOUNT"))
	}
}

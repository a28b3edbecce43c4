package shopdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "myshop.example.com", Normalize("  MyShop.Example.COM "))
	assert.Equal(t, "", Normalize("   "))
}

func TestValid(t *testing.T) {
	cases := []struct {
		shop string
		ok   bool
	}{
		{"myshop.example.com", true},
		{"ab.io", true},
		{"", false},
		{"http://myshop.example.com", false},
		{"https://myshop.example.com", false},
		{"noseparator", false},
		{"a.b", false}, // too short
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, Valid(c.shop), "shop=%q", c.shop)
	}
}

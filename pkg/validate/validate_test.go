package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"nullable,max=20"`
	Stock    int    `json:"stock" validate:"nullable,gte=0"`
	Role     string `json:"role" validate:"nullable,in=admin|staff"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(&signupForm{
		Name:     "Rosa",
		Email:    "rosa@example.com",
		Password: "buttercream",
	})
	assert.False(t, HasErrors(errs))
}

func TestStructRequired(t *testing.T) {
	errs := Struct(&signupForm{})

	assert.True(t, HasErrors(errs))
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.NotContains(t, errs, "phone", "nullable fields may be empty")
}

func TestStructEmail(t *testing.T) {
	errs := Struct(&signupForm{Name: "Rosa", Email: "not-an-email", Password: "buttercream"})
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestStructMinLength(t *testing.T) {
	errs := Struct(&signupForm{Name: "R", Email: "rosa@example.com", Password: "buttercream"})
	assert.Contains(t, errs["name"], "at least 2")
}

func TestStructNumericBounds(t *testing.T) {
	errs := Struct(&signupForm{Name: "Rosa", Email: "rosa@example.com", Password: "buttercream", Stock: -1})
	assert.Contains(t, errs, "stock")
}

func TestStructIn(t *testing.T) {
	ok := Struct(&signupForm{Name: "Rosa", Email: "r@example.com", Password: "buttercream", Role: "admin"})
	assert.False(t, HasErrors(ok))

	bad := Struct(&signupForm{Name: "Rosa", Email: "r@example.com", Password: "buttercream", Role: "intruder"})
	assert.Equal(t, "The selected role is invalid.", bad["role"])
}

type profileForm struct {
	Name    *string `json:"name" validate:"nullable,min=2,max=100"`
	Address *string `json:"address" validate:"nullable,max=10"`
	Avatar  *string `json:"avatar" validate:"required"`
}

func ptr(s string) *string { return &s }

func TestStructPointerFields(t *testing.T) {
	ok := Struct(&profileForm{Name: ptr("Rosa"), Avatar: ptr("a.jpg")})
	assert.False(t, HasErrors(ok))

	short := Struct(&profileForm{Name: ptr("R"), Avatar: ptr("a.jpg")})
	assert.Contains(t, short["name"], "at least 2")

	long := Struct(&profileForm{Address: ptr("12 Rue des Boulangers"), Avatar: ptr("a.jpg")})
	assert.Contains(t, long["address"], "not exceed 10")

	nilOK := Struct(&profileForm{Avatar: ptr("a.jpg")})
	assert.False(t, HasErrors(nilOK), "nil nullable pointers skip length rules")

	missing := Struct(&profileForm{})
	assert.Equal(t, "The avatar field is required.", missing["avatar"])
}

func TestFirstFailingRuleWins(t *testing.T) {
	errs := Struct(&signupForm{Name: "", Email: "r@example.com", Password: "buttercream"})
	assert.Equal(t, "The name field is required.", errs["name"])
}

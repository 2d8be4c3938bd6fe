package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/vastra/pkg/validate"
)

type signupInput struct {
	Name  string `json:"name" validate:"required,min=2,max=50"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"nullable,gte=13,lte=120"`
}

func TestStructValid(t *testing.T) {
	errs := validate.Struct(&signupInput{Name: "Kashvi", Email: "k@example.com", Age: 20})
	assert.False(t, validate.HasErrors(errs))
}

func TestStructRequired(t *testing.T) {
	errs := validate.Struct(&signupInput{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
}

func TestStructEmail(t *testing.T) {
	errs := validate.Struct(&signupInput{Name: "Kashvi", Email: "not-an-email"})
	assert.Contains(t, errs, "email")
}

func TestStructNullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(&signupInput{Name: "Kashvi", Email: "k@example.com"})
	assert.NotContains(t, errs, "age")
}

func TestStructRangeRules(t *testing.T) {
	errs := validate.Struct(&signupInput{Name: "Kashvi", Email: "k@example.com", Age: 5})
	assert.Contains(t, errs, "age")

	errs = validate.Struct(&signupInput{Name: "K", Email: "k@example.com"})
	assert.Contains(t, errs, "name") // below min length
}

func TestStructInRule(t *testing.T) {
	type input struct {
		Category string `json:"category" validate:"required,in=men,women,kid"`
	}

	assert.False(t, validate.HasErrors(validate.Struct(&input{Category: "women"})))
	assert.Contains(t, validate.Struct(&input{Category: "toys"}), "category")
}

func TestStructNonStructIsNoop(t *testing.T) {
	assert.Empty(t, validate.Struct("just a string"))
}

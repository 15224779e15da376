package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/validator"
)

func TestValidRUT(t *testing.T) {
	t.Run("valid ruts", func(t *testing.T) {
		validRUTs := []string{
			"24700909-4",
			"22.605.071-k",
			"22.605.071-K",
			"18300252K",
			"50.000.000-7",
			"  8.495.461-6 ",
		}

		for _, value := range validRUTs {
			err := validator.Apply(validator.ValidRUT("rut", value))
			assert.NoError(t, err, "RUT should be valid: %s", value)
		}
	})

	t.Run("invalid ruts", func(t *testing.T) {
		invalidRUTs := []string{
			"",
			"   ",
			"not-a-rut",
			"24700909-5", // wrong check digit
			"K",          // no body
			"1234K5678-9",
		}

		for _, value := range invalidRUTs {
			err := validator.Apply(validator.ValidRUT("rut", value))
			assert.Error(t, err, "RUT should be invalid: %s", value)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, "validation.rut", verrs[0].TranslationKey)
			assert.Equal(t, "rut", verrs[0].Field)
		}
	})
}

func TestStrictRUT(t *testing.T) {
	t.Run("strictly formatted ruts", func(t *testing.T) {
		for _, value := range []string{"18.300.252-K", "22.605.071-k", "8.495.461-6"} {
			assert.NoError(t, validator.Apply(validator.StrictRUT("rut", value)), value)
		}
	})

	t.Run("valid but loosely formatted ruts", func(t *testing.T) {
		for _, value := range []string{"18300252-K", "18300252K", "18.300.252K", " 18.300.252-K"} {
			err := validator.Apply(validator.StrictRUT("rut", value))
			require.Error(t, err, value)
			assert.Equal(t, "validation.rut_strict", validator.ExtractValidationErrors(err)[0].TranslationKey)
		}
	})

	t.Run("strictly formatted but wrong check digit", func(t *testing.T) {
		assert.Error(t, validator.Apply(validator.StrictRUT("rut", "18.300.252-1")))
	})
}

func TestPersonRUT(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.PersonRUT("rut", "24700909-4")))
	assert.NoError(t, validator.Apply(validator.PersonRUT("rut", "1.000.000-9")))

	err := validator.Apply(validator.PersonRUT("rut", "50000000-7"))
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, "validation.rut_person", verrs[0].TranslationKey)
	assert.Equal(t, 1_000_000, verrs[0].TranslationValues["min"])

	assert.Error(t, validator.Apply(validator.PersonRUT("rut", "24700909-5")), "invalid check digit")
	assert.Error(t, validator.Apply(validator.PersonRUT("rut", "999.999-K")), "below person range")
}

func TestCompanyRUT(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.CompanyRUT("rut", "50.000.000-7")))

	err := validator.Apply(validator.CompanyRUT("rut", "24700909-4"))
	require.Error(t, err)
	assert.Equal(t, "validation.rut_company", validator.ExtractValidationErrors(err)[0].TranslationKey)
}

func TestEqualRUT(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.EqualRUT("rut_confirmation", "2470!!!###0909-4", "24.700.909-4")))
	assert.NoError(t, validator.Apply(validator.EqualRUT("rut_confirmation", "22605071k", "22.605.071-K")))

	err := validator.Apply(validator.EqualRUT("rut_confirmation", "24700909-4", "22605071-K"))
	require.Error(t, err)
	assert.Equal(t, "validation.rut_equal", validator.ExtractValidationErrors(err)[0].TranslationKey)

	assert.Error(t, validator.Apply(validator.EqualRUT("rut_confirmation", "", "")), "empty values are never equal")
}

func TestCustomerFormValidation(t *testing.T) {
	type CustomerForm struct {
		RUT             string
		RUTConfirmation string
		CompanyRUT      string
	}

	t.Run("valid form", func(t *testing.T) {
		form := CustomerForm{
			RUT:             "18.300.252-K",
			RUTConfirmation: "18300252k",
			CompanyRUT:      "50.000.000-7",
		}

		err := validator.Apply(
			validator.StrictRUT("rut", form.RUT),
			validator.EqualRUT("rut_confirmation", form.RUTConfirmation, form.RUT),
			validator.CompanyRUT("company_rut", form.CompanyRUT),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		form := CustomerForm{
			RUT:             "18300252-K",
			RUTConfirmation: "18300252-1",
			CompanyRUT:      "18.300.252-K",
		}

		err := validator.Apply(
			validator.StrictRUT("rut", form.RUT),
			validator.EqualRUT("rut_confirmation", form.RUTConfirmation, form.RUT),
			validator.CompanyRUT("company_rut", form.CompanyRUT),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"rut", "rut_confirmation", "company_rut"}, verrs.Fields())
	})
}

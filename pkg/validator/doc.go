// Package validator provides declarative validation rules for RUT form fields.
//
// Every exported rule constructor returns a Rule value that pairs a boolean
// Check with translation-friendly error metadata. Rules are evaluated with
// Apply, which collects every failure into ValidationErrors. That slice
// implements error and matches ErrValidationFailed through errors.Is.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidRUT("rut", form.RUT),
//	    validator.PersonRUT("legal_representative", form.Representative),
//	    validator.EqualRUT("rut_confirmation", form.RUTConfirmation, form.RUT),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field) next to the input
//	    }
//	}
//
// Each ValidationError carries a TranslationKey ("validation.rut",
// "validation.rut_strict", ...) and TranslationValues. NewTranslator loads
// the bundled English and Spanish messages for those keys:
//
//	tr, _ := validator.NewTranslator(ctx, i18n.WithDefaultLanguage("es"))
//	messages := verrs.Localize(tr, "es") // map[field][]message
//
// The package holds no state and is safe for concurrent use.
package validator

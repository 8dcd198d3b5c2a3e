package validation

import (
	"testing"

	"github.com/kscout/credential-intake-api/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsFilledFields(t *testing.T) {
	v := NewCredentialValidator()

	errs := v.Validate(models.RegistrationRequest{User: "alice", Password: "secret"})
	assert.Empty(t, errs)
}

func TestValidateRejectsBlankFields(t *testing.T) {
	v := NewCredentialValidator()

	tests := []struct {
		name   string
		req    models.RegistrationRequest
		fields []string
	}{
		{"empty user", models.RegistrationRequest{User: "", Password: "x"}, []string{"user"}},
		{"blank password", models.RegistrationRequest{User: "bob", Password: " \t\n"}, []string{"password"}},
		{"both missing", models.RegistrationRequest{}, []string{"user", "password"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			errs := v.Validate(test.req)

			fields := []string{}
			for _, err := range errs {
				fields = append(fields, err.Field)
				assert.Equal(t, "must not be empty", err.Why)
			}

			assert.ElementsMatch(t, test.fields, fields)
		})
	}
}

func TestDescriber(t *testing.T) {
	v := NewCredentialValidator()

	assert.Equal(t, "Credential validator", v.Name())
	assert.Contains(t, v.Summary(), "not blank")
}

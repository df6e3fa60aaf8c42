package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-docauthor-be/internal/pkg/serverutils"
)

func TestSectionLengthIsFreeForm(t *testing.T) {
	// Finalized plans carry lengths like "2-3 paragraphs"; the manual
	// paths must accept the same free-form values.
	length := "As needed for comprehensive coverage"
	assert.NoError(t, serverutils.ValidateRequest(UpdateSectionRequest{Length: &length}))
	assert.NoError(t, serverutils.ValidateRequest(AddSectionRequest{
		Title:  "Closing",
		Length: "Two short paragraphs",
	}))
}

func TestSectionSourceOptionIsConstrained(t *testing.T) {
	bad := "everything"
	assert.Error(t, serverutils.ValidateRequest(UpdateSectionRequest{SourceOption: &bad}))

	good := "selected"
	assert.NoError(t, serverutils.ValidateRequest(UpdateSectionRequest{SourceOption: &good}))
}

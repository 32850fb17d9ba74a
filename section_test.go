package imap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectionPrefix(t *testing.T) {
	tests := []struct {
		pre      string
		wantPart []int
		wantRest string
	}{
		{"", nil, ""},
		{"1", []int{1}, ""},
		{"1.2.HEADER", []int{1, 2}, "HEADER"},
		{"HEADER.FIELDS", nil, "HEADER.FIELDS"},
		{"4.1", []int{4, 1}, ""},
	}
	for _, tc := range tests {
		part, rest, err := parseSectionPrefix(tc.pre)
		require.NoError(t, err)
		assert.Equal(t, tc.wantPart, part)
		assert.Equal(t, tc.wantRest, rest)
	}
}

func TestParseBodySectionText(t *testing.T) {
	tests := []struct {
		rest           string
		wantSpecifier  PartSpecifier
		wantNeedsField bool
		wantNot        bool
	}{
		{"", PartSpecifierNone, false, false},
		{"HEADER", PartSpecifierHeader, false, false},
		{"TEXT", PartSpecifierText, false, false},
		{"MIME", PartSpecifierMIME, false, false},
		{"HEADER.FIELDS", PartSpecifierHeader, true, false},
		{"HEADER.FIELDS.NOT", PartSpecifierHeader, true, true},
	}
	for _, tc := range tests {
		specifier, needsFieldList, not, err := parseBodySectionText(tc.rest)
		require.NoError(t, err)
		assert.Equal(t, tc.wantSpecifier, specifier)
		assert.Equal(t, tc.wantNeedsField, needsFieldList)
		assert.Equal(t, tc.wantNot, not)
	}
}

func TestParseBodySectionText_Invalid(t *testing.T) {
	_, _, _, err := parseBodySectionText("BOGUS")
	assert.Error(t, err)
}

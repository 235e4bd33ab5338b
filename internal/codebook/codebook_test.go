package codebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedCodeTablesAgree(t *testing.T) {
	for _, code := range SalesStatusCodes {
		assert.Contains(t, SalesStatus, code)
	}
	for _, code := range PropertyTypeCodes {
		assert.Contains(t, PropertyType, code)
	}
	for _, label := range DescriptionLabels {
		assert.Contains(t, mapValues(DescriptionType), label)
	}
}

func TestSubtypeLabel(t *testing.T) {
	assert.Equal(t, "Warehouse / Distribution", SubtypeLabel("2", "64"))
	// Subtypes are scoped to their type: 64 under Land means nothing.
	assert.Equal(t, "64", SubtypeLabel("3", "64"))
	// Upstream sentinel row.
	assert.Equal(t, "exc field from xml", SubtypeLabel("3", "n/a"))
	// Unknown values pass through.
	assert.Equal(t, "999", SubtypeLabel("1", "999"))
	assert.Equal(t, "", SubtypeLabel("1", ""))
}

func mapValues(m map[string]string) []string {
	vals := make([]string, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	return vals
}

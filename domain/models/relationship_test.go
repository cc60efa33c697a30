// domain/models/relationship_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePairOrderInvariant(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("99999999-9999-9999-9999-999999999999")

	low1, high1 := NormalizePair(a, b)
	low2, high2 := NormalizePair(b, a)

	assert.Equal(t, low1, low2)
	assert.Equal(t, high1, high2)
	assert.Equal(t, a, low1)
	assert.Equal(t, b, high1)
	assert.True(t, low1.String() < high1.String())
}

func TestRelationshipOtherAndInvolves(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	low, high := NormalizePair(a, b)
	rel := &Relationship{PairLow: low, PairHigh: high}

	assert.Equal(t, b, rel.Other(a))
	assert.Equal(t, a, rel.Other(b))
	assert.True(t, rel.Involves(a))
	assert.True(t, rel.Involves(b))
	assert.False(t, rel.Involves(uuid.New()))
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfidence_Clamping tests that confidence values are clamped to [0, 1]
func TestNewConfidence_Clamping(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected Confidence
	}{
		{"negative clamps to zero", -0.5, 0},
		{"zero stays zero", 0, 0},
		{"mid-range unchanged", 0.65, 0.65},
		{"one stays one", 1, 1},
		{"above one clamps to one", 1.7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfidence(tt.input)
			assert.Equal(t, tt.expected, c)
			assert.True(t, c.Valid())
		})
	}
}

// TestConfidence_Valid tests range validation
func TestConfidence_Valid(t *testing.T) {
	assert.True(t, Confidence(0).Valid())
	assert.True(t, Confidence(0.5).Valid())
	assert.True(t, Confidence(1).Valid())
	assert.False(t, Confidence(-0.1).Valid())
	assert.False(t, Confidence(1.1).Valid())
}

// TestCategory_Valid tests the closed category set
func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), "category %q should be valid", c)
	}
	assert.False(t, Category("marketing").Valid())
	assert.False(t, Category("").Valid())
}

// TestCategories_EvaluationOrder tests that the tie-break order is stable
func TestCategories_EvaluationOrder(t *testing.T) {
	require.Len(t, Categories, 6)
	assert.Equal(t, CategoryProduct, Categories[0])
	assert.Equal(t, CategoryService, Categories[1])
	assert.Equal(t, CategoryFAQ, Categories[2])
	assert.Equal(t, CategoryProcess, Categories[3])
	assert.Equal(t, CategoryPolicy, Categories[4])
	assert.Equal(t, CategoryTechnical, Categories[5])
}

// TestKnowledgeItem_Fields tests KnowledgeItem structure fields
func TestKnowledgeItem_Fields(t *testing.T) {
	now := time.Now()

	item := KnowledgeItem{
		ID:         "item-1",
		TenantID:   "tenant-1",
		DocumentID: "doc-1",
		Content:    "Our premium plan includes priority support.",
		Context:    "Document: Pricing Guide | Topics: Sales",
		Category:   CategoryProduct,
		Confidence: 0.7,
		Keywords:   []string{"premium", "plan"},
		CreatedAt:  now,
	}

	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "tenant-1", item.TenantID)
	assert.Equal(t, "doc-1", item.DocumentID)
	assert.Equal(t, CategoryProduct, item.Category)
	assert.Equal(t, Confidence(0.7), item.Confidence)
	assert.Nil(t, item.LastUsed)
	assert.Zero(t, item.UsageCount)
}

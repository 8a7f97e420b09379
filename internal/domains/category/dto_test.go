package category

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameLengthCountsCharacters(t *testing.T) {
	ok := strings.Repeat("ё", 200)
	assert.NoError(t, CreateCategoryRequest{Name: ok}.Validate())
	assert.NoError(t, UpdateCategoryRequest{Name: &ok}.Validate())

	long := strings.Repeat("ё", MaxNameLength+1)
	assert.Error(t, CreateCategoryRequest{Name: long}.Validate())
	assert.Error(t, UpdateCategoryRequest{Name: &long}.Validate())
}

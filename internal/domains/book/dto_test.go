package book

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTitleLengthCountsCharacters(t *testing.T) {
	year := 1925

	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"ascii at limit", strings.Repeat("a", MaxTitleLength), false},
		{"cyrillic under limit", strings.Repeat("Д", 200), false},
		{"cyrillic at limit", strings.Repeat("Д", MaxTitleLength), false},
		{"cyrillic over limit", strings.Repeat("Д", MaxTitleLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := CreateBookRequest{
				Title:         tt.title,
				PublishedYear: &year,
				AuthorID:      uuid.New(),
				CategoryID:    uuid.New(),
			}
			update := UpdateBookRequest{Title: &tt.title}

			if tt.wantErr {
				assert.Error(t, create.Validate())
				assert.Error(t, update.Validate())
			} else {
				assert.NoError(t, create.Validate())
				assert.NoError(t, update.Validate())
			}
		})
	}
}

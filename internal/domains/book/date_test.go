package book

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"1965-08-01T10:30:00Z"`, time.Date(1965, 8, 1, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", `"1965-08-01T10:30:00+02:00"`, time.Date(1965, 8, 1, 8, 30, 0, 0, time.UTC)},
		{"date only", `"1965-08-01"`, time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)},
		{"epoch millis", `1700000000000`, time.UnixMilli(1700000000000).UTC()},
		{"null", `null`, time.Time{}},
		{"empty string", `""`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.True(t, tt.want.Equal(d.Time), "got %v", d.Time)
		})
	}
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	for _, input := range []string{`"yesterday"`, `"01/08/1965"`, `true`, `{}`} {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(input), &d), input)
	}
}

func TestUpdateBookRequest_ApplyTo(t *testing.T) {
	owner := Owner{Email: "owner@example.com"}
	original := Book{
		Title:           "Dune",
		Author:          "Frank Herbert",
		Description:     "Spice",
		PublicationDate: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC),
		Owner:           owner,
	}

	title, author, description := "Emma", "Jane Austen", "Matchmaking"
	published := time.Date(1815, 12, 23, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  UpdateBookRequest
		want Book
	}{
		{"empty request", UpdateBookRequest{}, original},
		{
			"all four fields",
			UpdateBookRequest{Title: &title, Author: &author, Description: &description, PublicationDate: &Date{Time: published}},
			Book{Title: title, Author: author, Description: description, PublicationDate: published, Owner: owner},
		},
		{
			"zero date ignored",
			UpdateBookRequest{Author: &author, PublicationDate: &Date{}},
			Book{Title: "Dune", Author: author, Description: "Spice", PublicationDate: original.PublicationDate, Owner: owner},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := original
			tt.req.ApplyTo(&b)
			assert.Equal(t, tt.want, b)
		})
	}
}

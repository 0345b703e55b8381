package payload_test

import (
	"encoding/json"
	"testing"

	"post-receptor/feature/receptor/payload"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePost(t *testing.T) {
	body := `{
		"ID": "42",
		"title": "Olá Mundo",
		"content": "<p>Conteúdo</p>",
		"origin_language": "pt_BR",
		"status": "publish",
		"author": "maria",
		"author_data": {"user_login": "maria", "user_email": "maria@site.test", "first_name": "Maria"},
		"categories": [{"name": "Notícias"}, "Esportes", null],
		"tags": ["futebol"],
		"media": {
			"featured_image": {"url": "https://sender.test/a.jpg", "alt": "Bola"},
			"attachments": [{"url": "https://sender.test/b.jpg", "caption": "Legenda"}]
		},
		"yoast_metadesc": "desc",
		"focus_keyword": "kw",
		"elementor": [{"id": "abc"}]
	}`

	got, err := payload.DecodePost([]byte(body))
	require.NoError(t, err)

	want := &payload.Post{
		ID:             42,
		Title:          "Olá Mundo",
		Content:        "<p>Conteúdo</p>",
		OriginLanguage: "pt_BR",
		Status:         "publish",
		Author:         "maria",
		AuthorData:     &payload.Author{Login: "maria", Email: "maria@site.test", FirstName: "Maria"},
		Categories:     []payload.Term{{Name: "Notícias"}, {Name: "Esportes"}, {}},
		Tags:           []payload.Term{{Name: "futebol"}},
		Media: &payload.Media{
			FeaturedImage: &payload.Image{URL: "https://sender.test/a.jpg", Alt: "Bola"},
			Attachments:   []payload.Image{{URL: "https://sender.test/b.jpg", Caption: "Legenda"}},
		},
		YoastMetaDesc: "desc",
		FocusKeyword:  "kw",
		Elementor:     json.RawMessage(`[{"id": "abc"}]`),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodePost mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, `[{"id": "abc"}]`, got.LayoutData())
	assert.Equal(t, "https://sender.test/a.jpg", got.Media.FeaturedURL())
}

func TestDecodePost_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Empty", ""},
		{"Whitespace", "  \n"},
		{"Malformed", "{"},
		{"Missing ID", `{"title": "x"}`},
		{"Zero ID", `{"ID": 0}`},
		{"Blank ID", `{"ID": ""}`},
		{"Non numeric ID", `{"ID": "abc"}`},
		{"Fractional ID", `{"ID": 4.5}`},
		{"Term number", `{"ID": 1, "categories": [5]}`},
		{"Term list", `{"ID": 1, "tags": [["a"]]}`},
		{"Term name number", `{"ID": 1, "tags": [{"name": 5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := payload.DecodePost([]byte(tt.body))
			assert.ErrorIs(t, err, payload.ErrInvalidPayload)
		})
	}
}

func TestDecodePost_LargeNumericID(t *testing.T) {
	got, err := payload.DecodePost([]byte(`{"ID": 9007199254740993}`))
	require.NoError(t, err)
	assert.Equal(t, payload.ExternalID(9007199254740993), got.ID)
}

func TestLayoutData(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{``, ""},
		{`null`, ""},
		{`"[{\"id\":\"abc\"}]"`, `[{"id":"abc"}]`},
		{`{"a":1}`, `{"a":1}`},
	}
	for _, tt := range tests {
		p := payload.Post{Elementor: json.RawMessage(tt.raw)}
		assert.Equal(t, tt.want, p.LayoutData(), tt.raw)
	}
}

func TestDecodeStatus(t *testing.T) {
	got, err := payload.DecodeStatus([]byte(`{"ID": 99, "status": "draft"}`))
	require.NoError(t, err)
	assert.Equal(t, &payload.StatusRequest{ID: 99, Status: "draft"}, got)

	for _, body := range []string{"", `{"ID": 99}`, `{"status": "draft"}`, `{"ID": 99, "status": "  "}`} {
		_, err := payload.DecodeStatus([]byte(body))
		assert.ErrorIs(t, err, payload.ErrInvalidPayload, body)
	}
}

func TestDecodeDelete(t *testing.T) {
	got, err := payload.DecodeDelete([]byte(`{"ID": "42"}`))
	require.NoError(t, err)
	assert.Equal(t, payload.ExternalID(42), got.ID)

	_, err = payload.DecodeDelete([]byte(`{}`))
	assert.ErrorIs(t, err, payload.ErrMissingID)
}

func TestMediaHelpers(t *testing.T) {
	var m *payload.Media
	assert.True(t, m.Empty())
	assert.Equal(t, "", m.FeaturedURL())

	m = &payload.Media{Attachments: []payload.Image{{Alt: "x"}}}
	assert.False(t, m.Empty())
	assert.Equal(t, "", m.FeaturedURL())
}

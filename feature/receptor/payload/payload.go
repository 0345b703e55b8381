package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"post-receptor/core/utils"
)

var (
	// ErrInvalidPayload marks any request body that cannot be processed.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrMissingID is returned when the external id is absent or not positive.
	ErrMissingID = fmt.Errorf("%w: missing ID", ErrInvalidPayload)
)

// ExternalID is the sender's post id. It accepts a JSON number or a numeric
// string.
type ExternalID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ExternalID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		*id = 0
		return nil
	}
	n, ok := utils.ToInt64(raw)
	if !ok {
		return fmt.Errorf("ID must be an integer, got %q", utils.ToString(raw))
	}
	*id = ExternalID(n)
	return nil
}

// Valid reports whether the id was supplied.
func (id ExternalID) Valid() bool {
	return id > 0
}

// Term is a category or tag entry. Senders emit either {"name": "..."} or a
// bare string; both decode to the same value.
type Term struct {
	Name string `json:"name"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Term) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = Term{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*t = Term{Name: name}
		return nil
	case len(data) > 0 && data[0] == '{':
		var obj struct {
			Name *string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("term name must be a string: %w", err)
		}
		*t = Term{}
		if obj.Name != nil {
			t.Name = *obj.Name
		}
		return nil
	default:
		return fmt.Errorf("term must be an object or a string, got %s", string(data))
	}
}

// Author is the optional profile of the post author.
type Author struct {
	Login       string `json:"user_login"`
	Email       string `json:"user_email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Nickname    string `json:"nickname"`
	DisplayName string `json:"display_name"`
	URL         string `json:"user_url"`
	Description string `json:"description"`
}

// Image is a featured image or attachment with its textual metadata.
type Image struct {
	URL         string `json:"url,omitempty"`
	Alt         string `json:"alt,omitempty"`
	Title       string `json:"title,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Description string `json:"description,omitempty"`
}

// Media groups the featured image and the other attachments.
type Media struct {
	FeaturedImage *Image  `json:"featured_image,omitempty"`
	Attachments   []Image `json:"attachments,omitempty"`
}

// Empty reports whether there is nothing to process.
func (m *Media) Empty() bool {
	return m == nil || (m.FeaturedImage == nil && len(m.Attachments) == 0)
}

// FeaturedURL returns the featured image url, or "".
func (m *Media) FeaturedURL() string {
	if m == nil || m.FeaturedImage == nil {
		return ""
	}
	return strings.TrimSpace(m.FeaturedImage.URL)
}

// Post is the body of a receive request.
type Post struct {
	ID             ExternalID      `json:"ID"`
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	Excerpt        string          `json:"excerpt"`
	OriginLanguage string          `json:"origin_language"`
	Status         string          `json:"status"`
	Author         string          `json:"author"`
	AuthorData     *Author         `json:"author_data"`
	Categories     []Term          `json:"categories"`
	Tags           []Term          `json:"tags"`
	Media          *Media          `json:"media"`
	YoastMetaDesc  string          `json:"yoast_metadesc"`
	FocusKeyword   string          `json:"focus_keyword"`
	Elementor      json.RawMessage `json:"elementor"`
}

// LayoutData returns the layout blob for storage. A JSON string is stored
// unquoted, any other value verbatim, null as "".
func (p *Post) LayoutData() string {
	raw := bytes.TrimSpace(p.Elementor)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// StatusRequest is the body of an update-status request.
type StatusRequest struct {
	ID     ExternalID `json:"ID"`
	Status string     `json:"status"`
}

// DeleteRequest is the body of a delete request.
type DeleteRequest struct {
	ID ExternalID `json:"ID"`
}

// DecodePost parses and validates a receive body.
func DecodePost(body []byte) (*Post, error) {
	var p Post
	if err := decode(body, &p); err != nil {
		return nil, err
	}
	if !p.ID.Valid() {
		return nil, ErrMissingID
	}
	return &p, nil
}

// DecodeStatus parses and validates an update-status body.
func DecodeStatus(body []byte) (*StatusRequest, error) {
	var r StatusRequest
	if err := decode(body, &r); err != nil {
		return nil, err
	}
	r.Status = strings.TrimSpace(r.Status)
	if !r.ID.Valid() || r.Status == "" {
		return nil, fmt.Errorf("%w: ID and status are required", ErrInvalidPayload)
	}
	return &r, nil
}

// DecodeDelete parses and validates a delete body.
func DecodeDelete(body []byte) (*DeleteRequest, error) {
	var r DeleteRequest
	if err := decode(body, &r); err != nil {
		return nil, err
	}
	if !r.ID.Valid() {
		return nil, ErrMissingID
	}
	return &r, nil
}

func decode(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("%w: empty body", ErrInvalidPayload)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}

// Package form reconstructs structured post submissions from multipart form
// fields whose keys encode nested array structure, e.g.
// posts[0][content], posts[0][imageUrls][1], posts[1][location].
package form

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path"
	"regexp"
	"sort"
	"strconv"
)

// keyPattern captures the post index, the field name, and the optional
// sub-index of array-valued fields.
var keyPattern = regexp.MustCompile(`^posts\[(\d+)\]\[(\w+)\](?:\[(\d+)\])?$`)

// Submission is one decoded post entry of a composed thread.
type Submission struct {
	ID        string
	Content   string
	UserID    string
	Location  *[2]float64
	ImageURLs []string
	// Fields holds any remaining scalar fields as raw text.
	Fields map[string]string
}

type builder struct {
	sub    Submission
	images map[int]string
}

// Decode turns a parsed multipart form into an ordered sequence of post
// submissions, one per distinct post index, index order preserved. Image
// sub-indices may arrive in any order; each lands at its declared position.
// Uploaded file parts become uploads/<filename> references.
func Decode(mf *multipart.Form) ([]Submission, error) {
	builders := make(map[int]*builder)

	get := func(index int) *builder {
		b, ok := builders[index]
		if !ok {
			b = &builder{images: make(map[int]string)}
			builders[index] = b
		}
		return b
	}

	for key, values := range mf.Value {
		index, field, sub, ok := matchKey(key)
		if !ok || len(values) == 0 {
			continue
		}
		if err := get(index).assign(field, sub, values[0]); err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
	}

	for key, files := range mf.File {
		index, field, sub, ok := matchKey(key)
		if !ok || field != "imageUrls" || len(files) == 0 {
			continue
		}
		get(index).images[sub] = "uploads/" + path.Base(files[0].Filename)
	}

	indices := make([]int, 0, len(builders))
	for index := range builders {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	out := make([]Submission, 0, len(indices))
	for _, index := range indices {
		out = append(out, builders[index].build())
	}
	return out, nil
}

func matchKey(key string) (index int, field string, sub int, ok bool) {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return 0, "", 0, false
	}
	index, _ = strconv.Atoi(m[1])
	field = m[2]
	if m[3] != "" {
		sub, _ = strconv.Atoi(m[3])
	}
	return index, field, sub, true
}

func (b *builder) assign(field string, sub int, value string) error {
	switch field {
	case "id":
		b.sub.ID = value
	case "content":
		b.sub.Content = value
	case "userId":
		b.sub.UserID = value
	case "imageUrls":
		b.images[sub] = value
	case "location":
		loc, err := parseLocation(value)
		if err != nil {
			return err
		}
		b.sub.Location = loc
	default:
		if b.sub.Fields == nil {
			b.sub.Fields = make(map[string]string)
		}
		b.sub.Fields[field] = value
	}
	return nil
}

// build compacts the sparse image map into an ordered slice.
func (b *builder) build() Submission {
	if len(b.images) > 0 {
		subs := make([]int, 0, len(b.images))
		for i := range b.images {
			subs = append(subs, i)
		}
		sort.Ints(subs)
		b.sub.ImageURLs = make([]string, 0, len(subs))
		for _, i := range subs {
			b.sub.ImageURLs = append(b.sub.ImageURLs, b.images[i])
		}
	}
	return b.sub
}

// parseLocation decodes a JSON-encoded [latitude, longitude] pair. The
// client serializes an absent location as the literal "undefined".
func parseLocation(value string) (*[2]float64, error) {
	if value == "" || value == "undefined" || value == "null" {
		return nil, nil
	}
	var loc [2]float64
	if err := json.Unmarshal([]byte(value), &loc); err != nil {
		return nil, fmt.Errorf("invalid location: %w", err)
	}
	return &loc, nil
}

package form

import (
	"bytes"
	"mime/multipart"
	"testing"
)

// parseForm builds a multipart form from ordered key/value pairs and runs it
// through the stdlib reader, mirroring what the handler sees.
func parseForm(t *testing.T, fields [][2]string) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, kv := range fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r := multipart.NewReader(&buf, w.Boundary())
	mf, err := r.ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	return mf
}

func TestDecodeSinglePost(t *testing.T) {
	mf := parseForm(t, [][2]string{
		{"posts[0][id]", "1734567890123"},
		{"posts[0][content]", "hello world"},
		{"posts[0][userId]", "zerohch0"},
		{"posts[0][location]", "[37.5665,126.978]"},
	})

	subs, err := Decode(mf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(subs))
	}

	sub := subs[0]
	if sub.ID != "1734567890123" {
		t.Errorf("Expected id 1734567890123, got %s", sub.ID)
	}
	if sub.Content != "hello world" {
		t.Errorf("Expected content 'hello world', got '%s'", sub.Content)
	}
	if sub.UserID != "zerohch0" {
		t.Errorf("Expected userId zerohch0, got %s", sub.UserID)
	}
	if sub.Location == nil {
		t.Fatal("Expected location to be decoded")
	}
	if sub.Location[0] != 37.5665 || sub.Location[1] != 126.978 {
		t.Errorf("Unexpected location %v", *sub.Location)
	}
}

func TestDecodeImagesOutOfOrder(t *testing.T) {
	// Form-data iteration order is not guaranteed to match array order;
	// sub-index 1 arrives before sub-index 0.
	mf := parseForm(t, [][2]string{
		{"posts[0][content]", "pics"},
		{"posts[0][imageUrls][1]", "https://example.com/b.jpg"},
		{"posts[0][imageUrls][0]", "https://example.com/a.jpg"},
	})

	subs, err := Decode(mf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	images := subs[0].ImageURLs
	if len(images) != 2 {
		t.Fatalf("Expected 2 images, got %d", len(images))
	}
	if images[0] != "https://example.com/a.jpg" || images[1] != "https://example.com/b.jpg" {
		t.Errorf("Expected positional order [a, b], got %v", images)
	}
}

func TestDecodeMultiplePostsIndexOrder(t *testing.T) {
	mf := parseForm(t, [][2]string{
		{"posts[1][content]", "second"},
		{"posts[0][content]", "first"},
		{"posts[2][content]", "third"},
	})

	subs, err := Decode(mf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("Expected 3 submissions, got %d", len(subs))
	}

	want := []string{"first", "second", "third"}
	for i, content := range want {
		if subs[i].Content != content {
			t.Errorf("Position %d: expected %q, got %q", i, content, subs[i].Content)
		}
	}
}

func TestDecodeUndefinedLocation(t *testing.T) {
	mf := parseForm(t, [][2]string{
		{"posts[0][content]", "no location"},
		{"posts[0][location]", "undefined"},
	})

	subs, err := Decode(mf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if subs[0].Location != nil {
		t.Errorf("Expected nil location, got %v", *subs[0].Location)
	}
}

func TestDecodeInvalidLocation(t *testing.T) {
	mf := parseForm(t, [][2]string{
		{"posts[0][location]", "not json"},
	})

	if _, err := Decode(mf); err == nil {
		t.Error("Expected an error for malformed location")
	}
}

func TestDecodeContentOnlyPostIsValid(t *testing.T) {
	mf := parseForm(t, [][2]string{
		{"posts[0][id]", "123456"},
		{"posts[0][content]", "just text"},
	})

	subs, err := Decode(mf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(subs[0].ImageURLs) != 0 {
		t.Errorf("Expected no images, got %v", subs[0].ImageURLs)
	}
}

func TestDecodeExtraScalarField(t *testing.T) {
	mf := parseForm(t, [][2]string{
		{"posts[0][content]", "tagged"},
		{"posts[0][hashtag]", "golang"},
	})

	subs, err := Decode(mf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if subs[0].Fields["hashtag"] != "golang" {
		t.Errorf("Expected hashtag field to be kept, got %v", subs[0].Fields)
	}
}

func TestDecodeIgnoresUnrelatedKeys(t *testing.T) {
	mf := parseForm(t, [][2]string{
		{"posts[0][content]", "hello"},
		{"csrf_token", "abc"},
	})

	subs, err := Decode(mf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("Expected 1 submission, got %d", len(subs))
	}
}

func TestDecodeFileParts(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("posts[0][content]", "with upload"); err != nil {
		t.Fatal(err)
	}
	fw, err := w.CreateFormFile("posts[0][imageUrls][0]", "image_0_0.jpeg")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("jpeg-bytes"))
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	mf, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}

	subs, err := Decode(mf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(subs[0].ImageURLs) != 1 {
		t.Fatalf("Expected 1 image, got %d", len(subs[0].ImageURLs))
	}
	if subs[0].ImageURLs[0] != "uploads/image_0_0.jpeg" {
		t.Errorf("Expected uploads/image_0_0.jpeg, got %s", subs[0].ImageURLs[0])
	}
}

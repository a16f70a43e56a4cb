// Package fake generates the pseudo-random names, text, and URLs used to
// seed the fixture store. Values are intentionally non-deterministic in
// normal operation; tests pass a seeded rand.Rand to pin the output.
package fake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var firstNames = []string{
	"Alice", "Bruno", "Chloe", "Daniel", "Elena", "Felix", "Grace", "Hugo",
	"Iris", "Jonas", "Karen", "Liam", "Mina", "Noah", "Olivia", "Paulo",
	"Quinn", "Rosa", "Samuel", "Tara", "Victor", "Wendy", "Yuna", "Zane",
}

var lastNames = []string{
	"Anderson", "Baker", "Castillo", "Dubois", "Evans", "Fischer", "Garcia",
	"Hoffmann", "Ibrahim", "Jensen", "Kim", "Lee", "Moreau", "Nakamura",
	"Ortega", "Park", "Quintero", "Rossi", "Silva", "Tanaka", "Weber", "Yang",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
	"elit", "sed", "do", "eiusmod", "tempor", "incididunt", "labore",
	"dolore", "magna", "aliqua", "enim", "minim", "veniam", "quis",
	"nostrud", "exercitation", "ullamco", "laboris", "nisi", "aliquip",
	"commodo", "consequat", "duis", "aute", "irure", "voluptate", "velit",
}

// Faker produces fixture values from a rand source.
type Faker struct {
	r *rand.Rand
}

// New wraps the given source. A nil source gets a time-based seed.
func New(r *rand.Rand) *Faker {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Faker{r: r}
}

// FirstName returns a bare first name, used as a generated user handle.
func (f *Faker) FirstName() string {
	return firstNames[f.r.Intn(len(firstNames))]
}

// FullName returns a display name.
func (f *Faker) FullName() string {
	return f.FirstName() + " " + lastNames[f.r.Intn(len(lastNames))]
}

// Sentence returns a short lorem sentence.
func (f *Faker) Sentence() string {
	return f.words(4+f.r.Intn(6)) + "."
}

// Paragraph returns a few lorem sentences joined together.
func (f *Faker) Paragraph() string {
	n := 2 + f.r.Intn(3)
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = f.Sentence()
	}
	return strings.Join(sentences, " ")
}

// NumericID returns a string of n random digits. The first digit is never
// zero so ids keep a stable width when compared numerically.
func (f *Faker) NumericID(n int) string {
	var b strings.Builder
	b.WriteByte(byte('1' + f.r.Intn(9)))
	for i := 1; i < n; i++ {
		b.WriteByte(byte('0' + f.r.Intn(10)))
	}
	return b.String()
}

// AvatarURL returns a github-style avatar URL.
func (f *Faker) AvatarURL() string {
	return fmt.Sprintf("https://avatars.githubusercontent.com/u/%d?v=4", f.r.Intn(100_000))
}

// ImageURL returns a placeholder photo URL.
func (f *Faker) ImageURL() string {
	return fmt.Sprintf("https://loremflickr.com/640/480/nature?lock=%d", f.r.Intn(100_000))
}

// TimeAgo returns a short relative-time display hint such as "7h" or "3d".
func (f *Faker) TimeAgo() string {
	if f.r.Intn(2) == 0 {
		return fmt.Sprintf("%dh", 1+f.r.Intn(23))
	}
	return fmt.Sprintf("%dd", 1+f.r.Intn(13))
}

// IntN returns a value in [0, n).
func (f *Faker) IntN(n int) int {
	return f.r.Intn(n)
}

// Bool returns true half the time.
func (f *Faker) Bool() bool {
	return f.r.Intn(2) == 0
}

func (f *Faker) words(n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = loremWords[f.r.Intn(len(loremWords))]
	}
	out[0] = strings.ToUpper(out[0][:1]) + out[0][1:]
	return strings.Join(out, " ")
}

// Package roster holds the people shown on carousel cards and the links derived from them.
package roster

import (
	"net/url"
	"strings"
)

// ScreenshotService renders a preview of the site appended to it.
const ScreenshotService = "https://image.thum.io/get/maxAge/1/width/600/crop/800/"

type Student struct {
	Name    string `mapstructure:"name"`
	Surname string `mapstructure:"surname"`
	Website string `mapstructure:"website"`
}

// DisplayName is the card heading, "Name Surname".
func (s Student) DisplayName() string {
	return strings.TrimSpace(s.Name + " " + s.Surname)
}

// Href is the card link target.
func (s Student) Href() string {
	return s.Website
}

// ScreenshotURL is empty when the student has no website.
func (s Student) ScreenshotURL() string {
	if s.Website == "" {
		return ""
	}
	return ScreenshotService + s.Website
}

// Host is the website without scheme or path, used as the screenshot placeholder label.
func (s Student) Host() string {
	if s.Website == "" {
		return ""
	}
	u, err := url.Parse(s.Website)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(strings.TrimPrefix(s.Website, "//"), "/")
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// At returns the student bound to card index i, or the zero Student when the
// roster is shorter than the ring.
func At(students []Student, i int) Student {
	if i < 0 || i >= len(students) {
		return Student{}
	}
	return students[i]
}

package photostorage

import "testing"

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			"versioned delivery url",
			"https://res.cloudinary.com/demo/image/upload/v1712345678/dojang/students/student-7-1712345678.jpg",
			"dojang/students/student-7-1712345678",
		},
		{
			"unversioned delivery url",
			"https://res.cloudinary.com/demo/image/upload/dojang/students/student-7-1.png",
			"dojang/students/student-7-1",
		},
		{
			"folder starting with v but not a version",
			"https://res.cloudinary.com/demo/image/upload/videos/clip.jpg",
			"videos/clip",
		},
		{
			"not a cloudinary url",
			"https://example.com/photo.jpg",
			"",
		},
		{
			"empty",
			"",
			"",
		},
	}

	for _, tt := range tests {
		if got := PublicIDFromURL(tt.url); got != tt.want {
			t.Errorf("%s: PublicIDFromURL = %q, want %q", tt.name, got, tt.want)
		}
	}
}

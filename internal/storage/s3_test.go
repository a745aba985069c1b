package storage

import "testing"

func TestNewUnconfigured(t *testing.T) {
	// Missing endpoint or credentials disables storage without error.
	c, err := New("", "eu-central", "key", "secret", "bucket", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != nil {
		t.Error("expected nil client when endpoint is empty")
	}

	c, err = New("https://s3.example.com", "eu-central", "", "", "bucket", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != nil {
		t.Error("expected nil client when credentials are empty")
	}
}

func TestFileURL(t *testing.T) {
	tests := []struct {
		name      string
		endpoint  string
		publicURL string
		key       string
		want      string
	}{
		{
			name:     "path style from endpoint",
			endpoint: "https://s3.example.com",
			key:      "images/abc.png",
			want:     "https://s3.example.com/media/images/abc.png",
		},
		{
			name:      "public url preferred",
			endpoint:  "https://s3.example.com",
			publicURL: "https://cdn.example.com",
			key:       "images/abc.png",
			want:      "https://cdn.example.com/images/abc.png",
		},
		{
			name:      "trailing slashes trimmed",
			endpoint:  "https://s3.example.com/",
			publicURL: "https://cdn.example.com/",
			key:       "x.jpg",
			want:      "https://cdn.example.com/x.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.endpoint, "eu-central", "key", "secret", "media", tt.publicURL)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := c.FileURL(tt.key); got != tt.want {
				t.Errorf("FileURL: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractKey(t *testing.T) {
	c, err := New("https://s3.example.com", "eu-central", "key", "secret", "media", "https://cdn.example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		url     string
		wantKey string
		wantOK  bool
	}{
		{"https://cdn.example.com/images/a.png", "images/a.png", true},
		{"https://s3.example.com/media/images/b.png", "images/b.png", true},
		{"https://elsewhere.example.com/images/c.png", "", false},
	}

	for _, tt := range tests {
		key, ok := c.ExtractKey(tt.url)
		if key != tt.wantKey || ok != tt.wantOK {
			t.Errorf("ExtractKey(%q): got (%q, %v), want (%q, %v)", tt.url, key, ok, tt.wantKey, tt.wantOK)
		}
	}
}

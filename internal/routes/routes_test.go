package routes

import "testing"

func TestResolve(t *testing.T) {
	tc := []struct {
		path string
		want Route
	}{
		{path: "/home", want: Home},
		{path: "home", want: Home},
		{path: "/contact", want: Contact},
		{path: "/contact/", want: Contact},
		{path: "", want: Home},
		{path: "/", want: Home},
		{path: "/lyrics", want: Home},
		{path: "/Contact", want: Home},
		{path: "/home/extra", want: Home},
	}

	for _, tt := range tc {
		t.Run(tt.path, func(t *testing.T) {
			if got := Resolve(tt.path); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRedirects(t *testing.T) {
	tc := []struct {
		path string
		want bool
	}{
		{path: "/home", want: false},
		{path: "/contact", want: false},
		{path: "/", want: true},
		{path: "", want: true},
		{path: "/contact/", want: true},
		{path: "/unknown", want: true},
	}

	for _, tt := range tc {
		if got := Redirects(tt.path); got != tt.want {
			t.Errorf("Redirects(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestRoute(t *testing.T) {
	t.Run("Path", func(t *testing.T) {
		if Home.Path() != "/home" {
			t.Errorf("expected /home, got %s", Home.Path())
		}
		if Contact.Path() != "/contact" {
			t.Errorf("expected /contact, got %s", Contact.Path())
		}
	})

	t.Run("Next wraps around", func(t *testing.T) {
		if Next(Home) != Contact {
			t.Error("expected contact after home")
		}
		if Next(Contact) != Home {
			t.Error("expected home after contact")
		}
		if Next(Route(42)) != Default {
			t.Error("expected unknown route to fall back to default")
		}
	})
}

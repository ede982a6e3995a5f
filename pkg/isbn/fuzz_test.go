package isbn

import (
	"errors"
	"testing"
)

func FuzzClean(f *testing.F) {
	for _, s := range append(validISBNs, invalidISBNs...) {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		once := Clean(s)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent: %q -> %q -> %q", s, once, twice)
		}
	})
}

func FuzzValidate(f *testing.F) {
	for _, s := range append(validISBNs, invalidISBNs...) {
		f.Add(s)
	}
	f.Add("\xff\xfe\xfd\xfc\xfb\xfa\xf9\xf8\xf7\xf6")
	f.Add("ééééé")

	f.Fuzz(func(t *testing.T, s string) {
		err := Check(s)
		if Validate(s) != (err == nil) {
			t.Fatalf("Validate(%q) disagrees with Check: %v", s, err)
		}
		if err != nil {
			if !errors.Is(err, ErrInvalid) && !errors.Is(err, ErrEmpty) {
				t.Errorf("Check(%q) = %v, want ErrInvalid or ErrEmpty", s, err)
			}
			return
		}

		converted := Convert(s)
		if !Validate(converted) {
			t.Errorf("Convert(%q) = %q, not valid", s, converted)
		}
		if KindOf(s) == KindISBN10 {
			if back := Convert(converted); back != Clean(s) {
				t.Errorf("round trip %q -> %q -> %q", s, converted, back)
			}
		}
	})
}
